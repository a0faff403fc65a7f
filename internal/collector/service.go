package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/ariefcatur/go-shop-sim.git/internal/redisx"
	"github.com/ariefcatur/go-shop-sim.git/internal/report"
)

// Service is the dev collector: it consumes one report batch per simulation
// cycle and persists the lines for the analytics dashboard.
type Service struct {
	Repo        *Repo
	Redis       *redis.Client
	ServiceName string
}

// HandleBatch is wired as the Kafka consumer handler. The producer side is
// fire-and-forget and may redeliver; batches are deduped by batch id.
func (s *Service) HandleBatch(ctx context.Context, m kafkago.Message) error {
	var b report.CycleBatch
	if err := json.Unmarshal(m.Value, &b); err != nil {
		return fmt.Errorf("decode batch: %w", err)
	}

	dkey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, b.BatchID)
	if exists, _ := redisx.Exists(ctx, s.Redis, dkey); exists {
		return nil
	}
	_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()

	if err := s.Repo.InsertBatch(ctx, b); err != nil {
		return err
	}
	log.Printf("collector: cycle %d from %s, %d lines", b.Cycle, b.Producer, len(b.Lines))
	return nil
}
