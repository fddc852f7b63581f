// cmd/siteinfo-dev/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"dealersite/internal/devupstream"
	"dealersite/pkg/config"
	"dealersite/pkg/logger"
	"dealersite/pkg/middleware"
	"dealersite/pkg/tenants"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)

	dir := tenants.NewMemoryDirectory(cfg.TenantSeedJSON, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(middleware.Recover(log))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("ok")) })
	devupstream.RegisterRoutes(r, dir, log)

	srv := &http.Server{Addr: cfg.DevUpstreamAddr, Handler: r}
	go func() {
		log.Infow("siteinfo-dev listening", "addr", cfg.DevUpstreamAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("ListenAndServe", "err", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	fmt.Println("siteinfo-dev stopped")
}
