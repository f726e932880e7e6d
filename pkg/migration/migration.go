// Package migration runs and tracks schema migrations.
//
// Usage (in database/migrations):
//
//	func init() {
//	    migration.Register("20250101000000_create_categories_table", &CreateCategoriesTable{})
//	}
//
//	type CreateCategoriesTable struct{}
//	func (m *CreateCategoriesTable) Up(db *gorm.DB) error {
//	    return db.AutoMigrate(&models.Category{})
//	}
//	func (m *CreateCategoriesTable) Down(db *gorm.DB) error {
//	    return db.Migrator().DropTable("categories")
//	}
//
// Run from CLI:
//
//	shopadmin migrate             // run all pending
//	shopadmin migrate:rollback    // rollback last batch
//	shopadmin migrate:status      // list ran / pending
package migration

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shashiranjanraj/shopadmin/pkg/logger"
	"gorm.io/gorm"
)

// Migration is the interface every migration must implement.
type Migration interface {
	Up(db *gorm.DB) error
	Down(db *gorm.DB) error
}

// record is the row stored in the tracking table.
type record struct {
	ID    uint      `gorm:"primaryKey;autoIncrement"`
	Name  string    `gorm:"uniqueIndex;size:255;not null"`
	Batch int       `gorm:"not null"`
	RunAt time.Time `gorm:"autoCreateTime"`
}

func (record) TableName() string { return "shopadmin_migrations" }

type entry struct {
	name string
	m    Migration
}

var (
	mu       sync.Mutex
	registry []entry
)

// Register adds a migration to the global registry. name should be
// timestamp-prefixed; pending migrations run in name order.
func Register(name string, m Migration) {
	mu.Lock()
	defer mu.Unlock()
	registry = append(registry, entry{name: name, m: m})
}

func registered() []entry {
	mu.Lock()
	defer mu.Unlock()
	list := make([]entry, len(registry))
	copy(list, registry)
	sort.Slice(list, func(i, j int) bool { return list[i].name < list[j].name })
	return list
}

// Runner executes and tracks migrations.
type Runner struct {
	db  *gorm.DB
	out io.Writer
}

// New creates a Runner that reports progress to stdout.
func New(db *gorm.DB) *Runner {
	return &Runner{db: db, out: os.Stdout}
}

// WithOutput redirects progress lines to w.
func (r *Runner) WithOutput(w io.Writer) *Runner {
	r.out = w
	return r
}

// EnsureTable creates the tracking table if it does not exist.
func (r *Runner) EnsureTable() error {
	return r.db.AutoMigrate(&record{})
}

// Ran returns the names of applied migrations in apply order.
func (r *Runner) Ran() ([]string, error) {
	if err := r.EnsureTable(); err != nil {
		return nil, err
	}
	var rows []record
	if err := r.db.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.Name
	}
	return names, nil
}

func (r *Runner) pending() ([]entry, error) {
	ran, err := r.Ran()
	if err != nil {
		return nil, err
	}
	done := make(map[string]bool, len(ran))
	for _, name := range ran {
		done[name] = true
	}

	var out []entry
	for _, e := range registered() {
		if !done[e.name] {
			out = append(out, e)
		}
	}
	return out, nil
}

// Run executes all pending migrations as one batch. Each migration and its
// tracking row commit together.
func (r *Runner) Run() error {
	pending, err := r.pending()
	if err != nil {
		return fmt.Errorf("migration: fetch pending: %w", err)
	}
	if len(pending) == 0 {
		fmt.Fprintln(r.out, "Nothing to migrate.")
		return nil
	}

	batch, err := r.lastBatch()
	if err != nil {
		return err
	}
	batch++

	for _, e := range pending {
		fmt.Fprintf(r.out, "  ▶ Migrating: %s\n", e.name)

		err := r.db.Transaction(func(tx *gorm.DB) error {
			if err := e.m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&record{Name: e.name, Batch: batch}).Error
		})
		if err != nil {
			return fmt.Errorf("migration: %s up: %w", e.name, err)
		}

		fmt.Fprintf(r.out, "  ✅ Migrated:  %s\n", e.name)
	}

	logger.Info("migration: done", "ran", len(pending), "batch", batch)
	return nil
}

// Rollback reverses every migration of the most recent batch, newest first.
func (r *Runner) Rollback() error {
	if err := r.EnsureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	batch, err := r.lastBatch()
	if err != nil {
		return err
	}
	if batch == 0 {
		fmt.Fprintln(r.out, "Nothing to roll back.")
		return nil
	}

	var rows []record
	if err := r.db.Where("batch = ?", batch).Order("id desc").Find(&rows).Error; err != nil {
		return err
	}

	known := make(map[string]Migration)
	for _, e := range registered() {
		known[e.name] = e.m
	}

	for _, row := range rows {
		m, ok := known[row.Name]
		if !ok {
			return fmt.Errorf("migration: cannot roll back %s: not registered", row.Name)
		}

		fmt.Fprintf(r.out, "  ◀ Rolling back: %s\n", row.Name)

		row := row
		err := r.db.Transaction(func(tx *gorm.DB) error {
			if err := m.Down(tx); err != nil {
				return err
			}
			return tx.Delete(&row).Error
		})
		if err != nil {
			return fmt.Errorf("migration: %s down: %w", row.Name, err)
		}

		fmt.Fprintf(r.out, "  ✅ Rolled back: %s\n", row.Name)
	}

	logger.Info("migration: rolled back", "batch", batch, "count", len(rows))
	return nil
}

// Status prints every registered migration and whether it has run.
func (r *Runner) Status() error {
	if err := r.EnsureTable(); err != nil {
		return err
	}

	var rows []record
	if err := r.db.Find(&rows).Error; err != nil {
		return err
	}
	batches := make(map[string]int, len(rows))
	for _, row := range rows {
		batches[row.Name] = row.Batch
	}

	fmt.Fprintf(r.out, "%-60s  %-8s  %s\n", "Migration", "Status", "Batch")
	fmt.Fprintln(r.out, strings.Repeat("─", 78))
	for _, e := range registered() {
		if b, ok := batches[e.name]; ok {
			fmt.Fprintf(r.out, "%-60s  %-8s  %d\n", e.name, "Ran", b)
		} else {
			fmt.Fprintf(r.out, "%-60s  %-8s  -\n", e.name, "Pending")
		}
	}
	return nil
}

func (r *Runner) lastBatch() (int, error) {
	var last struct{ Max int }
	err := r.db.Model(&record{}).Select("COALESCE(MAX(batch), 0) AS max").Scan(&last).Error
	if err != nil {
		return 0, fmt.Errorf("migration: last batch: %w", err)
	}
	return last.Max, nil
}
