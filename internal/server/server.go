// Package server exposes the equation service over HTTP.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zephyrtronium/equations/internal/service"
)

// Options configures the router.
type Options struct {
	// RateLimit is the sustained number of requests per second allowed across
	// all clients. Zero or less disables limiting.
	RateLimit float64
	// RateBurst is the number of requests allowed at once.
	RateBurst int
}

// New creates the router for svc.
func New(svc *service.Service, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.CustomRecovery(recovery), RateLimit(opts.RateLimit, opts.RateBurst))
	h := handlers{svc: svc}
	g := r.Group("/equations")
	g.GET("", h.list)
	g.POST("/store", h.store)
	g.POST("/:id/evaluate", h.evaluate)
	return r
}

// Run serves h on addr until ctx is canceled, then shuts down, waiting up to
// grace for requests in flight.
func Run(ctx context.Context, addr string, h http.Handler, grace time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errs := make(chan error, 1)
	go func() {
		errs <- srv.ListenAndServe()
	}()
	log.Printf("listening on %s", addr)
	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}
	log.Println("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
