package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fengcheng-bakery/cake-orders/internal/config"
	"github.com/fengcheng-bakery/cake-orders/internal/healthcheck"
	"github.com/fengcheng-bakery/cake-orders/internal/jobs"
	"github.com/fengcheng-bakery/cake-orders/internal/notify"
	ord "github.com/fengcheng-bakery/cake-orders/internal/order"
	prod "github.com/fengcheng-bakery/cake-orders/internal/product"
	"github.com/fengcheng-bakery/cake-orders/internal/store"
)

// @title        Cake Orders API
// @version      1.0
// @description  Order and catalog management for the bakery counter.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("[config] %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := store.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[db] %v", err)
	}
	defer pool.Close()
	if err := store.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("[db] %v", err)
	}

	products := prod.NewPGRepo(pool)
	orders := ord.NewPGRepo(pool)

	var cache prod.Cache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("[catalog] redis unavailable, serving catalog uncached: %v", err)
		} else {
			cache = prod.NewRedisCache(rdb, cfg.CatalogCacheTTL)
		}
	}
	catalog := prod.NewLoader(products, cache)

	if cfg.CatalogSeedFile != "" {
		n, err := prod.SeedIfEmpty(ctx, products, cfg.CatalogSeedFile)
		if err != nil {
			log.Fatalf("[catalog] seed: %v", err)
		}
		if n > 0 {
			catalog.Invalidate(ctx)
		}
	}

	var publisher notify.Publisher = notify.Noop{}
	if cfg.RabbitMQURL != "" {
		p, err := notify.DialAMQP(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("[notify] status events disabled: %v", err)
		} else {
			publisher = p
		}
	}
	defer publisher.Close()

	sched, err := jobs.StartScheduler(jobs.NewTriageReport(orders, cfg.Location), cfg.ReportHour)
	if err != nil {
		log.Fatalf("[report] %v", err)
	}
	defer func() { _ = sched.Shutdown() }()

	health := healthcheck.New(pool, 15*time.Second)
	go func() {
		if err := health.Serve(ctx, cfg.GRPCHealthAddr); err != nil {
			log.Printf("[health] %v", err)
		}
	}()

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: newRouter(server{
			orders:    orders,
			products:  products,
			catalog:   catalog,
			publisher: publisher,
			loc:       cfg.Location,
			shop:      cfg.ShopName,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("bakery-server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[http] %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http] shutdown: %v", err)
	}
}
