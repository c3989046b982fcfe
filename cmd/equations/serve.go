package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/equations/internal/config"
	"github.com/zephyrtronium/equations/internal/server"
	"github.com/zephyrtronium/equations/internal/service"
	"github.com/zephyrtronium/equations/internal/store"
)

func serveCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the equation API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), file)
			if err != nil {
				return err
			}
			gin.SetMode(cfg.Mode)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			st, done, err := open(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer done()
			h := server.New(service.New(st), server.Options{RateLimit: cfg.RateLimit, RateBurst: cfg.RateBurst})
			return server.Run(ctx, cfg.Addr, h, 10*time.Second)
		},
	}
	cmd.Flags().StringVar(&file, "config", "", "config file (default equations.yaml in . or $HOME)")
	config.Flags(cmd.Flags())
	return cmd
}

// open selects the store for url. The returned function releases it.
func open(ctx context.Context, url string) (store.Store, func(), error) {
	if url == "" {
		log.Println("storing equations in memory")
		return store.NewMemory(), func() {}, nil
	}
	pool, err := store.Connect(ctx, url)
	if err != nil {
		return nil, nil, err
	}
	pg := store.NewPostgres(pool)
	if err := pg.Migrate(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	log.Println("storing equations in postgres")
	return pg, pool.Close, nil
}
