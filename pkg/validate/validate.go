// Package validate runs struct-tag validation and reports failures as a
// field → message map keyed by JSON field names:
//
//	type orderLine struct {
//	    ProductID uint `json:"product_id" validate:"required"`
//	    Quantity  int  `json:"quantity"   validate:"required,gt=0"`
//	}
//
//	errs := validate.Struct(input)
//	// map["sales[0].quantity":"The sales[0].quantity must be greater than 0."]
//
// Rules are those of github.com/go-playground/validator/v10. decimal.Decimal
// fields are compared as numbers, so `validate:"gte=0"` works on prices.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	})
	return v
}

// Struct validates v and returns a map of field → message. An empty map
// means the value is valid.
func Struct(s interface{}) map[string]string {
	errs := make(map[string]string)

	err := instance().Struct(s)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs["_"] = err.Error()
		return errs
	}

	for _, fe := range fieldErrs {
		name := fieldPath(fe.Namespace())
		if _, seen := errs[name]; seen {
			continue
		}
		errs[name] = message(name, fe)
	}
	return errs
}

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func message(field string, fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "gt":
		return fmt.Sprintf("The %s must be greater than %s.", field, param)
	case "gte":
		return fmt.Sprintf("The %s must be greater than or equal to %s.", field, param)
	case "lt":
		return fmt.Sprintf("The %s must be less than %s.", field, param)
	case "lte":
		return fmt.Sprintf("The %s must be less than or equal to %s.", field, param)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("The %s must be at least %s characters.", field, param)
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("The %s must have at least %s items.", field, param)
		default:
			return fmt.Sprintf("The %s must be at least %s.", field, param)
		}
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("The %s must not exceed %s characters.", field, param)
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("The %s must not have more than %s items.", field, param)
		default:
			return fmt.Sprintf("The %s must not be greater than %s.", field, param)
		}
	}
	return fmt.Sprintf("The %s field is invalid.", field)
}

// fieldPath drops the root struct name from a validator namespace:
// "orderRequest.sales[0].quantity" → "sales[0].quantity".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(f.Name)
	}
	return name
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return nil
}
