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

	"github.com/ariefcatur/go-shop-sim.git/internal/catalog"
	"github.com/ariefcatur/go-shop-sim.git/internal/config"
	"github.com/ariefcatur/go-shop-sim.git/internal/flow"
	"github.com/ariefcatur/go-shop-sim.git/internal/httpx"
	kafkax "github.com/ariefcatur/go-shop-sim.git/internal/kafka"
	"github.com/ariefcatur/go-shop-sim.git/internal/publish"
	"github.com/ariefcatur/go-shop-sim.git/internal/redisx"
	"github.com/ariefcatur/go-shop-sim.git/internal/report"
	"github.com/ariefcatur/go-shop-sim.git/internal/sim"
	"github.com/ariefcatur/go-shop-sim.git/internal/sink"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	graph := flow.Default()
	if err := graph.Validate(); err != nil {
		log.Fatalf("flow graph: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis (best-effort cycle summary)
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer for the report batches; its context outlives the
	// simulation so the last cycle's batch still flushes
	prodCtx, prodCancel := context.WithCancel(context.Background())
	defer prodCancel()
	prod := kafkax.NewProducer(cfg.KafkaBrokers, report.TopicCycleReport, 256)
	prod.Start(prodCtx)

	pub, err := publish.New(cfg.DataDir, cfg.ServiceName, prod, rdb)
	if err != nil {
		log.Fatalf("publisher: %v", err)
	}
	if err := pub.Reset(); err != nil {
		log.Fatalf("publisher reset: %v", err)
	}

	var growth sim.GrowthPolicy = sim.DefaultBernoulli()
	if cfg.GrowthMode == "fixed" {
		growth = sim.FixedGrowth{UsersPerCycle: cfg.UsersPerCycle, ProductsPerCycle: cfg.ProductsPerCycle}
	}
	var fault sim.FaultInjector = sim.NoFault{}
	if cfg.FaultEvery > 0 {
		fault = sim.PeriodicFault{Every: cfg.FaultEvery}
	}

	status := &sim.Status{}
	sched := &sim.Scheduler{
		Store:         catalog.NewStore(),
		Graph:         graph,
		Gen:           catalog.NewGenerator(0),
		Sink:          sink.New(),
		Pub:           pub,
		Growth:        growth,
		Stock:         sim.StockPolicy{Min: cfg.StockMin, Max: cfg.StockMax},
		Fault:         fault,
		MaxConcurrent: cfg.MaxConcurrent,
		CycleDuration: cfg.CycleDuration,
		StepDelayMax:  cfg.StepDelayMax,
		Status:        status,
	}
	sched.SeedCatalog(cfg.InitialUsers, cfg.InitialProducts, cfg.InitialStock)

	// status endpoint
	router := httpx.NewRouter()
	(&httpx.StatusHandler{Status: status}).Register(router)
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	done := make(chan struct{})
	go func() {
		log.Printf("simulation started: %d users, %d products, cycle %s",
			cfg.InitialUsers, cfg.InitialProducts, cfg.CycleDuration)
		sched.Run(ctx)
		close(done)
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	cancel()
	<-done // let the in-flight cycle drain

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close() // flush remaining batches
	prodCancel()
	prod.WaitClosed()
}
