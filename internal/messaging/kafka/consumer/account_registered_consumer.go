package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-booking/internal/events"
	"go-booking/internal/mailer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type AccountRegisteredConsumer struct {
	reader *kafkago.Reader
	mail   mailer.Dispatcher
	logger *zap.Logger
}

func NewAccountRegisteredConsumer(
	broker string,
	groupID string,
	mail mailer.Dispatcher,
	logger ...*zap.Logger,
) *AccountRegisteredConsumer {
	l := zap.L().Named("account.consumer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("account.consumer")
	}

	return &AccountRegisteredConsumer{
		reader: kafkago.NewReader(kafkago.ReaderConfig{
			Brokers:        []string{broker},
			Topic:          events.AccountRegisteredTopic,
			GroupID:        groupID,
			CommitInterval: time.Second,
			StartOffset:    kafkago.FirstOffset,
		}),
		mail:   mail,
		logger: l,
	}
}

// Run memproses event account_registered dan mengirim email sambutan.
// Pesan yang gagal dikirim tidak di-commit supaya dicoba lagi.
func (c *AccountRegisteredConsumer) Run(ctx context.Context) {
	c.logger.Info("account registered consumer started")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("account registered consumer stopped")
				return
			}
			c.logger.Error("fetch account lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.AccountRegisteredEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.logger.Error("decode account_registered event failed", zap.Error(err))
			// Payload rusak tidak akan pernah valid, langsung commit.
			if commitErr := c.reader.CommitMessages(ctx, msg); commitErr != nil {
				c.logger.Error("commit invalid account_registered event failed", zap.Error(commitErr))
			}
			continue
		}

		if err := c.mail.SendWelcome(ctx, event.Email, event.FullName); err != nil {
			c.logger.Error("send welcome mail failed",
				zap.String("account_id", event.AccountID),
				zap.String("email", event.Email),
				zap.Error(err),
			)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("commit account_registered event failed", zap.Error(err))
			continue
		}

		c.logger.Info("welcome mail sent from account_registered event",
			zap.String("account_id", event.AccountID),
			zap.String("email", event.Email),
		)
	}
}

func (c *AccountRegisteredConsumer) Close() error {
	return c.reader.Close()
}
