package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shelterops/campledger/pkg/db"
)

const changeChannel = "campledger_changes"

// changePayload mirrors the JSON emitted by the notify_row_change trigger
type changePayload struct {
	Table string        `json:"table"`
	Kind  db.ChangeKind `json:"kind"`
	RowID string        `json:"row_id"`
}

// Subscribe registers a handler for change events on the named table.
// Events flow only while Listen is running.
func (d *DB) Subscribe(table string, handler db.ChangeHandler) {
	d.subMu.Lock()
	defer d.subMu.Unlock()
	d.subscribers[table] = append(d.subscribers[table], handler)
}

// Listen blocks consuming LISTEN/NOTIFY events from the store and
// dispatching them to subscribers until ctx is cancelled. The connection
// is re-established after transient failures; notifications raised while
// disconnected are lost, which is why observers re-fetch state instead of
// applying payloads (at-least-once only from the observer's side).
func (d *DB) Listen(ctx context.Context, logger *zap.Logger) error {
	for {
		if err := d.listenOnce(ctx, logger); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Warn("Change listener disconnected, retrying", zap.Error(err))
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// listenOnce holds a dedicated connection and dispatches notifications
// until the connection or context fails
func (d *DB) listenOnce(ctx context.Context, logger *zap.Logger) error {
	conn, err := d.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire listener connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+changeChannel); err != nil {
		return fmt.Errorf("failed to LISTEN on %s: %w", changeChannel, err)
	}

	logger.Debug("Change listener connected", zap.String("channel", changeChannel))

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("failed waiting for notification: %w", err)
		}

		var payload changePayload
		if err := json.Unmarshal([]byte(notification.Payload), &payload); err != nil {
			logger.Warn("Dropping malformed change notification",
				zap.String("payload", notification.Payload),
				zap.Error(err))
			continue
		}

		d.dispatch(db.ChangeEvent{
			Table: payload.Table,
			Kind:  payload.Kind,
			RowID: payload.RowID,
		})
	}
}

func (d *DB) dispatch(event db.ChangeEvent) {
	d.subMu.Lock()
	handlers := append([]db.ChangeHandler(nil), d.subscribers[event.Table]...)
	d.subMu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}
