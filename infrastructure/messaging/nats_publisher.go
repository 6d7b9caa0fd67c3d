package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"tasktracker/domain/ports"
	"tasktracker/pkg/logger"
)

// NATSTaskEventPublisher implements ports.TaskEventPublisher over plain NATS
// subjects (tasks.created / tasks.updated / tasks.deleted).
type NATSTaskEventPublisher struct {
	conn *nats.Conn
}

func NewNATSTaskEventPublisher(url string) (*NATSTaskEventPublisher, error) {
	conn, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("NATS connected", "url", url)

	return &NATSTaskEventPublisher{conn: conn}, nil
}

func (p *NATSTaskEventPublisher) PublishTaskEvent(_ context.Context, event *ports.TaskEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode task event: %w", err)
	}
	return p.conn.Publish(event.Type, data)
}

func (p *NATSTaskEventPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
