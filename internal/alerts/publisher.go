package alerts

import (
	"context"
	"fmt"

	gpubsub "cloud.google.com/go/pubsub/v2"

	pkgerrors "github.com/lucasferrer/freshkeep-backend/pkg/errors"
)

// TopicPublisher adapts a Pub/Sub publisher handle to the Publisher surface.
type TopicPublisher struct {
	pub *gpubsub.Publisher
}

// NewTopicPublisher wraps the alert topic handle.
func NewTopicPublisher(pub *gpubsub.Publisher) (*TopicPublisher, error) {
	if pub == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "alert publisher required")
	}
	return &TopicPublisher{pub: pub}, nil
}

// Publish sends one message and waits for the server ack.
func (t *TopicPublisher) Publish(ctx context.Context, data []byte, attrs map[string]string) error {
	result := t.pub.Publish(ctx, &gpubsub.Message{Data: data, Attributes: attrs})
	if _, err := result.Get(ctx); err != nil {
		return fmt.Errorf("publish alert message: %w", err)
	}
	return nil
}
