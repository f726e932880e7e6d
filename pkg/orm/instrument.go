package orm

import (
	"fmt"
	"time"

	"github.com/shashiranjanraj/shopadmin/pkg/metrics"
	"gorm.io/gorm"
)

const startedKey = "shopadmin:started_at"

// Instrument registers gorm callbacks that feed metrics.DBQueryDuration,
// labelled by operation.
func Instrument(db *gorm.DB) error {
	cb := db.Callback()

	hooks := []struct {
		op     string
		before func(string, func(*gorm.DB)) error
		after  func(string, func(*gorm.DB)) error
	}{
		{"create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
		{"raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
	}

	for _, h := range hooks {
		if err := h.before("metrics:before_"+h.op, start); err != nil {
			return fmt.Errorf("orm: instrument %s: %w", h.op, err)
		}
		if err := h.after("metrics:after_"+h.op, observe(h.op)); err != nil {
			return fmt.Errorf("orm: instrument %s: %w", h.op, err)
		}
	}
	return nil
}

func start(db *gorm.DB) {
	db.InstanceSet(startedKey, time.Now())
}

func observe(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		v, ok := db.InstanceGet(startedKey)
		if !ok {
			return
		}
		if t, ok := v.(time.Time); ok {
			metrics.ObserveDBQuery(op, t)
		}
	}
}
