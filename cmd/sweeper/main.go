package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"comphub/internal/activity"
	"comphub/internal/competition"
	"comphub/internal/config"
	"comphub/internal/metrics"
	"comphub/internal/queue"
	"comphub/internal/store"
)

// Sweeper runs the daily competition lifecycle sweep and drains
// activity events published by the API. Run exactly one instance per
// deployment; concurrent sweepers would race on status updates.
func main() {
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("shutdown signal received")
		cancel()
	}()

	db, err := store.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer db.Close()
	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema apply failed: %v", err)
	}

	redisClient := store.NewRedis(cfg.RedisAddr)

	var q queue.Queue
	if cfg.QueueBackend == "memory" {
		q = queue.NewInMemory(64)
	} else {
		q = queue.NewRedisQueue(redisClient.Client, "comphub:events")
	}

	metrics.Register()

	compRepo := competition.NewRepository(db.Client)
	sweeper := competition.NewSweeper(compRepo, nil)
	activityRepo := activity.NewRepository(db.Client)

	hour, minute := cfg.SweepTime()
	log.Printf("lifecycle sweep scheduled daily at %02d:%02d", hour, minute)

	// Run one sweep at startup so a long-stopped deployment catches up
	// without waiting for the next scheduled tick.
	sweeper.Run(ctx)

	go runDailySweep(ctx, sweeper, hour, minute)

	messages, err := q.Consume(ctx)
	if err != nil {
		log.Fatalf("queue consume init failed: %v", err)
	}

	log.Println("sweeper started, draining activity events...")
	for msg := range messages {
		evt, err := activity.Decode(msg.Body)
		if err != nil {
			log.Printf("bad event payload: %v", err)
			continue
		}
		if err := activityRepo.Insert(ctx, evt); err != nil {
			log.Printf("record activity %s failed: %v", evt.Kind, err)
			continue
		}
		metrics.EventsConsumed.Inc()
	}

	log.Println("sweeper stopped")
}

// runDailySweep waits until the next hh:mm, runs a sweep, then repeats
// every 24 hours.
func runDailySweep(ctx context.Context, sweeper *competition.Sweeper, hour, minute int) {
	now := time.Now()
	nextRun := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !nextRun.After(now) {
		nextRun = nextRun.Add(24 * time.Hour)
	}

	select {
	case <-time.After(time.Until(nextRun)):
		sweeper.Run(ctx)
	case <-ctx.Done():
		return
	}

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			sweeper.Run(ctx)
		case <-ctx.Done():
			return
		}
	}
}
