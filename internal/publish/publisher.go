package publish

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/ariefcatur/go-shop-sim.git/internal/kafka"
	"github.com/ariefcatur/go-shop-sim.git/internal/redisx"
	"github.com/ariefcatur/go-shop-sim.git/internal/report"
	"github.com/ariefcatur/go-shop-sim.git/internal/sim"
	"github.com/ariefcatur/go-shop-sim.git/internal/sink"
)

const (
	fileUsers    = "users.csv"
	fileProducts = "products.csv"
	fileOrders   = "purchase_orders.csv"
	fileStock    = "stock.csv"
	dirLogs      = "logs"
	dirReports   = "reports"

	birthDateLayout = "2006-01-02"
)

// Reporter ships one batched report message; *kafka.Producer satisfies it.
type Reporter interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// Publisher persists each cycle's artifacts under Dir and forwards the report
// buffer to the collector. File errors are fatal for the cycle and returned;
// the Kafka forward is fire-and-forget and the Redis summary is best-effort.
type Publisher struct {
	Dir      string
	Service  string
	Reporter Reporter      // nil disables forwarding
	Redis    *redis.Client // nil disables the live summary
}

// New prepares the artifact directory tree.
func New(dir, service string, rep Reporter, rdb *redis.Client) (*Publisher, error) {
	for _, d := range []string{dir, filepath.Join(dir, dirLogs), filepath.Join(dir, dirReports)} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("publish: mkdir %s: %w", d, err)
		}
	}
	return &Publisher{Dir: dir, Service: service, Reporter: rep, Redis: rdb}, nil
}

// Reset removes the persistent tables from a previous run. Called once at
// startup, before the first cycle.
func (p *Publisher) Reset() error {
	for _, f := range []string{fileUsers, fileProducts, fileOrders, fileStock} {
		if err := os.Remove(filepath.Join(p.Dir, f)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("publish: reset %s: %w", f, err)
		}
	}
	return nil
}

func (p *Publisher) Publish(ctx context.Context, c *sim.Cycle) error {
	if err := p.writeTables(c); err != nil {
		return err
	}
	if err := p.writeCycleArtifacts(c); err != nil {
		return err
	}
	p.forward(c)
	p.summarize(ctx, c)
	return nil
}

func (p *Publisher) writeTables(c *sim.Cycle) error {
	userRows := make([][]string, 0, len(c.NewUsers))
	for _, u := range c.NewUsers {
		userRows = append(userRows, []string{
			u.ID, u.Name, u.Email, u.Address,
			u.RegisteredAt.Format(time.RFC3339Nano),
			u.BirthDate.Format(birthDateLayout),
		})
	}
	if err := appendRows(filepath.Join(p.Dir, fileUsers),
		[]string{"id", "name", "email", "address", "registration_date", "birth_date"}, userRows); err != nil {
		return err
	}

	productRows := make([][]string, 0, len(c.NewProducts))
	for _, pr := range c.NewProducts {
		productRows = append(productRows, []string{
			pr.ID, pr.Name, pr.Image, pr.Description, strconv.Itoa(pr.PriceCents),
		})
	}
	if err := appendRows(filepath.Join(p.Dir, fileProducts),
		[]string{"id", "name", "image", "description", "price_cents"}, productRows); err != nil {
		return err
	}

	orderRows := make([][]string, 0, len(c.Orders))
	for _, o := range c.Orders {
		orderRows = append(orderRows, []string{
			o.ID, o.UserID, o.ProductID, strconv.Itoa(o.Qty),
			o.CreatedAt.Format(time.RFC3339Nano),
			o.PaidAt.Format(time.RFC3339Nano),
			o.DeliveredAt.Format(time.RFC3339Nano),
		})
	}
	if err := appendRows(filepath.Join(p.Dir, fileOrders),
		[]string{"id", "user_id", "product_id", "quantity", "creation_date", "payment_date", "delivery_date"}, orderRows); err != nil {
		return err
	}

	// stock is a full snapshot every cycle, not a delta log
	stockRows := make([][]string, 0, len(c.Stock))
	for _, s := range c.Stock {
		stockRows = append(stockRows, []string{s.ProductID, strconv.Itoa(s.Quantity)})
	}
	return overwriteRows(filepath.Join(p.Dir, fileStock), []string{"product_id", "quantity"}, stockRows)
}

func (p *Publisher) writeCycleArtifacts(c *sim.Cycle) error {
	if err := writeLines(filepath.Join(p.Dir, dirLogs, cycleFile(c.Seq)), lines(c.Audit)); err != nil {
		return err
	}
	return writeLines(filepath.Join(p.Dir, dirReports, cycleFile(c.Seq)), lines(c.Report))
}

// forward ships the report buffer as one batched message. No retry: the
// collector is best-effort by design.
func (p *Publisher) forward(c *sim.Cycle) {
	if p.Reporter == nil {
		return
	}
	batch := report.CycleBatch{
		BatchID:   uuid.NewString(),
		Cycle:     c.Seq,
		Timestamp: time.Now().UnixMilli(),
		Producer:  p.Service,
		Lines:     lines(c.Report),
	}
	p.Reporter.Publish(report.PartitionKey(p.Service), kafkax.MustMarshal(batch),
		kafkago.Header{Key: "x-batch-cycle", Value: []byte(strconv.Itoa(c.Seq))},
	)
}

// summarize mirrors a small cycle summary into Redis for live dashboards.
// Errors are deliberately ignored.
func (p *Publisher) summarize(ctx context.Context, c *sim.Cycle) {
	if p.Redis == nil {
		return
	}
	key := fmt.Sprintf(redisx.KeyCycleSummary, p.Service)
	val := kafkax.MustMarshal(map[string]any{
		"cycle":         c.Seq,
		"new_users":     len(c.NewUsers),
		"new_products":  len(c.NewProducts),
		"orders":        len(c.Orders),
		"report_events": len(c.Report),
		"published_at":  time.Now().UTC(),
	})
	_ = p.Redis.Set(ctx, key, val, redisx.TTLCycleSummary).Err()
}

func cycleFile(seq int) string { return fmt.Sprintf("cycle_%05d.log", seq) }

func lines(events []sink.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Line())
	}
	return out
}
