package notifier

import (
	"context"
	"shells-ledger/internal/model"

	"github.com/rs/zerolog"
)

// LogNotifier writes admin alerts to the log. Message delivery to Telegram happens elsewhere.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With().Str("component", "notifier").Logger()}
}

func (n *LogNotifier) Notify(ctx context.Context, msg model.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.logger.Info().
		Str("topic", msg.Topic).
		Int64("user_id", msg.UserID.Int64()).
		Str("subject", msg.Subject).
		Msg(msg.Message)
	return nil
}
