package events

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

const (
	DirectoryTopic = "performx.directory"

	TypeEmployeeUpserted = "employee.upserted"
	TypeBackupRestored   = "backup.restored"
)

type EmployeeUpserted struct {
	EventType  string    `json:"eventType"`
	RequestID  string    `json:"requestId,omitempty"`
	EmployeeID string    `json:"employeeId"`
	Revision   int64     `json:"revision"`
	OccurredAt time.Time `json:"occurredAt"`
}

type BackupRestored struct {
	EventType  string    `json:"eventType"`
	RequestID  string    `json:"requestId,omitempty"`
	Employees  int       `json:"employees"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher is the broker-facing contract. A nil Publisher disables events.
type Publisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
}

const publishTimeout = 5 * time.Second

// PublishAsync fires an event without blocking the caller. Failures are
// logged and swallowed: events are a best-effort side channel, never part of
// the write path.
func PublishAsync(pub Publisher, logger *zap.Logger, key string, event any) {
	if pub == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Warn("event marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := pub.Publish(ctx, key, payload); err != nil {
			logger.Warn("event publish failed", zap.String("key", key), zap.Error(err))
		}
	}()
}
