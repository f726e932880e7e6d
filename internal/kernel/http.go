// Package kernel assembles the HTTP handler: global middleware, the metrics
// endpoint, domain event listeners and the API routes.
package kernel

import (
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/shopadmin/app/routes"
	"github.com/shashiranjanraj/shopadmin/app/services"
	"github.com/shashiranjanraj/shopadmin/config"
	"github.com/shashiranjanraj/shopadmin/pkg/metrics"
	"github.com/shashiranjanraj/shopadmin/pkg/middleware"
	"github.com/shashiranjanraj/shopadmin/pkg/reqid"
	"github.com/shashiranjanraj/shopadmin/pkg/router"
)

type HTTPKernel struct {
	router *router.Router
}

func NewHTTPKernel(db *gorm.DB) (*HTTPKernel, error) {
	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics, for accurate total latency
	//  2. Recovery
	//  3. Request ID, before anything logs
	//  4. Logger
	//  5. CORS
	//  6. Rate limiter
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(config.RateLimitPerMinute(), time.Minute))

	r.HandleFunc("/metrics", metrics.Handler())

	services.RegisterListeners()
	if err := routes.RegisterAPI(r, db); err != nil {
		return nil, err
	}
	return &HTTPKernel{router: r}, nil
}

func (k *HTTPKernel) Handler() http.Handler { return k.router.Handler() }

func (k *HTTPKernel) Routes() []router.RouteInfo { return k.router.Routes() }
