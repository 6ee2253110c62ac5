package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/mkravets/shop-analytics/internal/config"
)

// OrderEvent is what the checkout service publishes when an order is created
// or changes state. The dashboard only cares that something changed: any
// order event makes the order-derived report caches stale.
type OrderEvent struct {
	EventID string `json:"eventId"`
	Type    string `json:"type"`
	OrderID string `json:"orderId"`
}

// Invalidator is the slice of the reporting service the consumer drives.
type Invalidator interface {
	InvalidateReports(key string) error
}

type Reader interface {
	Config() kafkago.ReaderConfig
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Reports recomputed on order events. Inventory is left to its TTL: stock
// moves constantly and the inventory report tolerates staleness better than
// the money numbers do.
var staleOnOrder = []string{"overview", "sales", "users"}

type Consumer struct {
	reader      Reader
	invalidator Invalidator
	logger      *zap.Logger
}

func NewReader(cfg config.Kafka) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		GroupID:  cfg.Group,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}

func NewConsumer(reader Reader, invalidator Invalidator, logger *zap.Logger) *Consumer {
	return &Consumer{
		reader:      reader,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Start runs the fetch-handle-commit loop until the context is canceled.
// A malformed message is logged and committed anyway: replaying it cannot
// make it parse, and the TTL bounds the staleness we might have missed.
func (c *Consumer) Start(ctx context.Context) {
	rc := c.reader.Config()
	c.logger.Info("starting order-events consumer",
		zap.Strings("brokers", rc.Brokers),
		zap.String("group", rc.GroupID),
		zap.String("topic", rc.Topic),
	)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			if isBenignFetchTimeout(err) {
				c.logger.Debug("fetch timeout (idle), backing off", zap.Error(err))
				sleepWithContext(ctx, 10*time.Second)
				continue
			}
			c.logger.Warn("FetchMessage error, backing off", zap.Error(err))
			sleepWithContext(ctx, 500*time.Millisecond)
			continue
		}

		c.handle(msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Warn("commit failed",
				zap.Error(err),
				zap.String("topic", msg.Topic),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
			)
			sleepWithContext(ctx, 200*time.Millisecond)
		}
	}
}

func (c *Consumer) handle(msg kafkago.Message) {
	var ev OrderEvent
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		c.logger.Warn("undecodable order event, skipping",
			zap.Error(err),
			zap.Int64("offset", msg.Offset),
		)
		return
	}
	if _, err := uuid.Parse(ev.EventID); err != nil {
		c.logger.Warn("order event without a valid event id, skipping",
			zap.String("eventId", ev.EventID),
			zap.Int64("offset", msg.Offset),
		)
		return
	}
	if !strings.HasPrefix(ev.Type, "order.") {
		c.logger.Debug("ignoring non-order event", zap.String("type", ev.Type))
		return
	}

	for _, report := range staleOnOrder {
		// Only an unknown report name errors, and these are fixed.
		_ = c.invalidator.InvalidateReports(report)
	}
	c.logger.Info("report caches invalidated by order event",
		zap.String("type", ev.Type),
		zap.String("orderId", ev.OrderID),
	)
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func isBenignFetchTimeout(err error) bool {
	s := err.Error()
	return strings.Contains(s, "Request Timed Out") ||
		strings.Contains(s, "no messages received from kafka within the allocated time")
}
