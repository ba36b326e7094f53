package speech

import (
	"context"
	"encoding/json"
	"fmt"

	gpubsub "cloud.google.com/go/pubsub/v2"

	pkgerrors "github.com/lucasferrer/freshkeep-backend/pkg/errors"
)

// Publisher abstracts the topic handle so tests can capture payloads.
type Publisher interface {
	Publish(ctx context.Context, data []byte, attrs map[string]string) error
}

// TopicPublisher adapts a Pub/Sub publisher handle to the Publisher surface.
type TopicPublisher struct {
	pub *gpubsub.Publisher
}

// NewTopicPublisher wraps the speech topic handle.
func NewTopicPublisher(pub *gpubsub.Publisher) (*TopicPublisher, error) {
	if pub == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "speech publisher required")
	}
	return &TopicPublisher{pub: pub}, nil
}

// Publish sends one message and waits for the server ack.
func (t *TopicPublisher) Publish(ctx context.Context, data []byte, attrs map[string]string) error {
	result := t.pub.Publish(ctx, &gpubsub.Message{Data: data, Attributes: attrs})
	if _, err := result.Get(ctx); err != nil {
		return fmt.Errorf("publish speech message: %w", err)
	}
	return nil
}

type pubsubEngine struct {
	publisher Publisher
}

// NewEngine returns an Engine that hands utterances to the speech topic for
// an out-of-process synthesizer to play.
func NewEngine(publisher Publisher) (Engine, error) {
	if publisher == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "speech publisher required")
	}
	return &pubsubEngine{publisher: publisher}, nil
}

func (e *pubsubEngine) Speak(ctx context.Context, req Request) error {
	if req.Text == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "speech text required")
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal speech request")
	}
	if err := e.publisher.Publish(ctx, payload, map[string]string{"action": "speak"}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "publish speech request")
	}
	return nil
}

func (e *pubsubEngine) Stop(ctx context.Context) error {
	if err := e.publisher.Publish(ctx, []byte("{}"), map[string]string{"action": "stop"}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "publish speech stop")
	}
	return nil
}
