package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ariefcatur/go-shop-sim.git/internal/collector"
	"github.com/ariefcatur/go-shop-sim.git/internal/config"
	"github.com/ariefcatur/go-shop-sim.git/internal/httpx"
	kafkax "github.com/ariefcatur/go-shop-sim.git/internal/kafka"
	"github.com/ariefcatur/go-shop-sim.git/internal/postgres"
	"github.com/ariefcatur/go-shop-sim.git/internal/redisx"
	"github.com/ariefcatur/go-shop-sim.git/internal/report"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("db schema: %v", err)
	}

	// Redis (batch dedup)
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	repo := &collector.Repo{DB: db}
	svc := &collector.Service{
		Repo:        repo,
		Redis:       rdb,
		ServiceName: cfg.ServiceName + "-collector",
	}

	// stats endpoint
	router := httpx.NewRouter()
	(&httpx.StatsHandler{Repo: repo}).Register(router)
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	// shutdown on signal
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("shutting down...")
		ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel2()
		_ = srv.Shutdown(ctx2)
		cancel()
	}()

	cons := kafkax.NewConsumer(cfg.KafkaBrokers, "shop-sim-collector", report.TopicCycleReport, 4)
	log.Printf("collector consuming %s", report.TopicCycleReport)
	if err := cons.Start(ctx, svc.HandleBatch); err != nil {
		log.Fatalf("consumer: %v", err)
	}
}
