package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mohamedkhairy/stock-analyzer/internal/models"
	"github.com/mohamedkhairy/stock-analyzer/pkg/logger"
)

// SnapshotMessage is the wire format for published indicator snapshots
type SnapshotMessage struct {
	ID          string                  `json:"id"`
	Symbol      string                  `json:"symbol"`
	Date        string                  `json:"date"`
	Values      map[string]models.Value `json:"values"`
	PublishedAt time.Time               `json:"published_at"`
}

// SnapshotPublisher publishes indicator snapshots to a Redis stream
type SnapshotPublisher struct {
	publisher StreamPublisher
	stream    string
}

// NewSnapshotPublisher creates a publisher targeting the given stream
func NewSnapshotPublisher(publisher StreamPublisher, stream string) *SnapshotPublisher {
	return &SnapshotPublisher{
		publisher: publisher,
		stream:    stream,
	}
}

// Publish serializes a snapshot and appends it to the stream
func (p *SnapshotPublisher) Publish(ctx context.Context, symbol string, snap models.Snapshot) error {
	msg := SnapshotMessage{
		ID:          uuid.NewString(),
		Symbol:      symbol,
		Date:        snap.Date.Format("2006-01-02"),
		Values:      snap.Values,
		PublishedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot for %s: %w", symbol, err)
	}

	if err := p.publisher.PublishToStream(ctx, p.stream, map[string]interface{}{
		"snapshot": string(data),
	}); err != nil {
		return fmt.Errorf("failed to publish snapshot for %s: %w", symbol, err)
	}

	logger.Debug("Published snapshot",
		logger.String("symbol", symbol),
		logger.String("stream", p.stream),
		logger.String("message_id", msg.ID),
	)

	return nil
}
