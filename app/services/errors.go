package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/shopadmin/app/repositories"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrCategoryNotFound = errors.New("category not found")

	// ErrDuplicate is a unique-key violation (category name, product SKU).
	ErrDuplicate = errors.New("duplicate record")

	ErrInvalidGranularity = repositories.ErrInvalidGranularity
	ErrInvalidGrouping    = repositories.ErrInvalidGrouping
)

// NotFoundError names the missing row. errors.Is matches its Kind.
type NotFoundError struct {
	Kind error
	ID   uint
}

func (e *NotFoundError) Error() string {
	var entity string
	switch e.Kind {
	case ErrProductNotFound:
		entity = "Product"
	case ErrOrderNotFound:
		entity = "Order"
	case ErrCategoryNotFound:
		entity = "Category"
	default:
		entity = "Record"
	}
	return fmt.Sprintf("%s %d not found", entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return e.Kind }

func notFound(kind error, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Kind: kind, ID: id}
	}
	return err
}

// translate maps driver errors onto the service taxonomy.
func translate(err error, what string) error {
	if err == nil {
		return nil
	}
	if isDuplicate(err) {
		return fmt.Errorf("%w: %s already exists", ErrDuplicate, what)
	}
	return err
}

// isDuplicate recognises unique violations whether or not the dialector
// translated them into gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
