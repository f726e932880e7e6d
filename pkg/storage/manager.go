package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shashiranjanraj/shopadmin/config"
	"github.com/shashiranjanraj/shopadmin/pkg/logger"
)

var (
	mu          sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk = "local"
)

// Connect boots the configured disks. The local disk is always available;
// the s3 disk only when S3_BUCKET is set.
func Connect(ctx context.Context) error {
	local, err := NewLocal(config.StorageLocalRoot(), config.StorageURL())
	if err != nil {
		return err
	}
	Register("local", local)

	if config.StorageS3Bucket() != "" {
		s3Disk, err := NewS3(ctx, S3Config{
			Bucket:   config.StorageS3Bucket(),
			Region:   config.StorageS3Region(),
			Key:      config.StorageS3Key(),
			Secret:   config.StorageS3Secret(),
			Endpoint: config.StorageS3Endpoint(),
			URL:      config.StorageS3URL(),
		})
		if err != nil {
			logger.Warn("storage: s3 disk disabled", "error", err)
		} else {
			Register("s3", s3Disk)
		}
	}

	mu.Lock()
	defaultDisk = config.StorageDefault()
	mu.Unlock()
	return nil
}

// Register installs d under name, replacing any previous disk.
func Register(name string, d Disk) {
	mu.Lock()
	disks[name] = d
	mu.Unlock()
}

// Use returns the named disk. An empty name selects STORAGE_DISK.
func Use(name string) (Disk, error) {
	mu.RLock()
	defer mu.RUnlock()

	if name == "" {
		name = defaultDisk
	}
	d, ok := disks[name]
	if !ok {
		return nil, fmt.Errorf("storage: disk %q is not configured (have %v)", name, names())
	}
	return d, nil
}

func names() []string {
	out := make([]string, 0, len(disks))
	for n := range disks {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
