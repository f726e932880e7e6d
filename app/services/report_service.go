package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"path"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/shopadmin/app/repositories"
	"github.com/shashiranjanraj/shopadmin/config"
	"github.com/shashiranjanraj/shopadmin/pkg/cache"
	"github.com/shashiranjanraj/shopadmin/pkg/storage"
	"github.com/shashiranjanraj/shopadmin/pkg/workerpool"
)

// ReportCachePrefix namespaces every cached report key.
const ReportCachePrefix = "reports:"

// ReportService serves revenue reports through the Redis cache.
type ReportService struct {
	sales *repositories.SaleRepository
	ttl   time.Duration
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{
		sales: repositories.NewSaleRepository(db),
		ttl:   config.ReportCacheTTL(),
	}
}

// RevenueSummary parses rangeType and returns revenue per period.
func (s *ReportService) RevenueSummary(ctx context.Context, rangeType string) ([]repositories.RevenueBucket, error) {
	g, err := repositories.ParseGranularity(rangeType)
	if err != nil {
		return nil, err
	}

	key := ReportCachePrefix + "summary:" + string(g)
	var out []repositories.RevenueBucket
	err = cache.Remember(ctx, key, s.ttl, &out, func() (interface{}, error) {
		return s.sales.RevenueSummary(ctx, g)
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []repositories.RevenueBucket{}
	}
	return out, nil
}

// RevenueComparison parses groupBy and returns revenue per label between
// start and end inclusive.
func (s *ReportService) RevenueComparison(ctx context.Context, groupBy string, start, end time.Time) ([]repositories.RevenueGroup, error) {
	g, err := repositories.ParseGrouping(groupBy)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%scompare:%s:%d:%d", ReportCachePrefix, g, start.UnixNano(), end.UnixNano())
	var out []repositories.RevenueGroup
	err = cache.Remember(ctx, key, s.ttl, &out, func() (interface{}, error) {
		return s.sales.RevenueComparison(ctx, g, start, end)
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []repositories.RevenueGroup{}
	}
	return out, nil
}

// ExportSummary writes the revenue summary for rangeType as CSV
// (period,revenue) to path on disk and returns its URL.
func (s *ReportService) ExportSummary(ctx context.Context, rangeType string, disk storage.Disk, path string) (string, error) {
	buckets, err := s.RevenueSummary(ctx, rangeType)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"period", "revenue"})
	for _, b := range buckets {
		_ = w.Write([]string{b.Period, b.Revenue.StringFixed(2)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("reports: encode csv: %w", err)
	}

	if err := disk.Put(ctx, path, &buf, "text/csv"); err != nil {
		return "", fmt.Errorf("reports: store %s: %w", path, err)
	}
	return disk.URL(path), nil
}

// ExportSummaries exports one CSV per range type into dir concurrently and
// returns the URL of each file keyed by range type.
func (s *ReportService) ExportSummaries(ctx context.Context, rangeTypes []string, disk storage.Disk, dir string) (map[string]string, error) {
	var (
		mu   sync.Mutex
		urls = make(map[string]string, len(rangeTypes))
	)

	pool := workerpool.New(ctx, 4)
	for _, rangeType := range rangeTypes {
		err := pool.SubmitWait(func(ctx context.Context) error {
			url, err := s.ExportSummary(ctx, rangeType, disk, path.Join(dir, "revenue-"+rangeType+".csv"))
			if err != nil {
				return fmt.Errorf("%s: %w", rangeType, err)
			}
			mu.Lock()
			urls[rangeType] = url
			mu.Unlock()
			return nil
		})
		if err != nil {
			pool.Shutdown()
			return nil, err
		}
	}

	if err := pool.Shutdown(); err != nil {
		return urls, err
	}
	return urls, nil
}
