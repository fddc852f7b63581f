// cmd/dealer-site/main.go
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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dealersite/internal/site"
	"dealersite/pkg/config"
	"dealersite/pkg/logger"
	"dealersite/pkg/middleware"
	"dealersite/pkg/siteinfo"
	"dealersite/pkg/tenants"
)

func main() {
	// 1. Load configuration & initialize structured logger.
	cfg := config.Load()
	log := logger.New(cfg.Env)

	// 2. Tenant resolution policy and the fallback served when upstream is down.
	resolver := tenants.Resolver{RootDomain: cfg.RootDomain, ReferenceSlug: cfg.ReferenceSlug}
	fallback, err := tenants.LoadFallback(cfg.FallbackFile)
	if err != nil {
		log.Warnw("fallback config file ignored", "file", cfg.FallbackFile, "err", err)
	}

	// 3. Upstream site-info client, shared by the fetcher and the gate.
	client := siteinfo.NewClient(siteinfo.Options{BaseURL: cfg.UpstreamURL, Timeout: cfg.UpstreamTimeout})
	fetcher := siteinfo.NewFetcher(client, resolver, fallback, log)

	// 4. Router and middlewares. The gate runs before any page renders.
	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(middleware.Recover(log))
	r.Use(middleware.Metrics())
	r.Use(middleware.Tracing("dealer-site", log))

	// 5. Operational endpoints stay outside the tenant gate.
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("ok")) })
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("pong")) })
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Group(func(gr chi.Router) {
		gr.Use(middleware.TenantGate(resolver, client, log))

		// 6. Backend paths pass through unchanged.
		if cfg.ProxyBackend {
			proxy, err := site.NewBackendProxy(cfg.BackendURL, log)
			if err != nil {
				log.Fatalw("backend proxy", "err", err)
			}
			site.MountBackend(gr, proxy)
		}

		// 7. Tenant pages.
		site.RegisterRoutes(gr, fetcher, log)
	})

	// 8. Configure and start HTTP server asynchronously.
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		log.Infow("dealer-site listening", "addr", cfg.HTTPAddr, "upstream", cfg.UpstreamURL, "root_domain", cfg.RootDomain)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("ListenAndServe", "err", err)
		}
	}()

	// 9. Wait for termination signal, then shut down gracefully.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	_ = log.Sync()
	fmt.Println("dealer-site stopped")
}
