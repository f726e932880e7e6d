package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/shopadmin/app/services"
	"github.com/shashiranjanraj/shopadmin/pkg/ctx"
)

// fail maps a service error onto the response status.
func fail(c *ctx.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCategoryNotFound):
		c.BadRequest("Category not found")
	case errors.Is(err, services.ErrProductNotFound), errors.Is(err, services.ErrOrderNotFound):
		c.NotFound(err.Error())
	case errors.Is(err, services.ErrInvalidGranularity), errors.Is(err, services.ErrInvalidGrouping):
		c.BadRequest(err.Error())
	case errors.Is(err, services.ErrDuplicate):
		c.Conflict(err.Error())
	default:
		c.Log().Error("request failed", "method", c.R.Method, "path", c.R.URL.Path, "error", err)
		c.Error(http.StatusInternalServerError, "Internal server error")
	}
}

// queryFailed answers 422 when any query parameter failed to parse.
func queryFailed(c *ctx.Context, errs map[string]string) bool {
	if len(errs) == 0 {
		return false
	}
	c.ValidationError(errs)
	return true
}
