package controllers

import (
	"context"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/shopadmin/pkg/ctx"
)

type HomeController struct {
	db *gorm.DB
}

func NewHomeController(db *gorm.DB) *HomeController {
	return &HomeController{db: db}
}

// Index GET /
func (ctl *HomeController) Index(c *ctx.Context) {
	c.Success(map[string]string{"message": "E-commerce Admin API is live"})
}

// Health GET /healthz
func (ctl *HomeController) Health(c *ctx.Context) {
	pingCtx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := ctl.db.DB()
	if err == nil {
		err = sqlDB.PingContext(pingCtx)
	}
	if err != nil {
		c.Log().Warn("health: database ping failed", "error", err)
		c.Error(http.StatusServiceUnavailable, "database unavailable")
		return
	}
	c.Success(map[string]string{"database": "ok"})
}
