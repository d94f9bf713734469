package service

import (
	"context"
	"fmt"
	"shells-ledger/internal/model"

	"github.com/rs/zerolog"
)

// notifyBestEffort runs after commit. A failed alert is logged and never reported to the caller.
func notifyBestEffort(ctx context.Context, notifier Notifier, logger zerolog.Logger, msg model.Notification) {
	if notifier == nil {
		return
	}
	if err := notifier.Notify(ctx, msg); err != nil {
		logger.Warn().
			Err(fmt.Errorf("%w: %v", model.ErrNotifierUnavailable, err)).
			Str("topic", msg.Topic).
			Int64("user_id", msg.UserID.Int64()).
			Msg("admin notification failed")
	}
}
