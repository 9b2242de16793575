package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/GantalaAvinash/mobile-store/internal/checkout"
	"github.com/GantalaAvinash/mobile-store/internal/notification/email"
	"github.com/GantalaAvinash/mobile-store/pkg/applog"
	"github.com/GantalaAvinash/mobile-store/pkg/kafka"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// Consumer listens for order-placed events and sends confirmation
// emails. Send failures are logged and the event is not retried.
type Consumer struct {
	sender email.Sender
	topic  string
	logger *zap.Logger
}

func NewConsumer(sender email.Sender, topic string, logger *zap.Logger) *Consumer {
	return &Consumer{
		sender: sender,
		topic:  topic,
		logger: logger,
	}
}

func (c *Consumer) Start(ctx context.Context, brokers []string) {
	group := kafka.NewConsumerGroup(
		brokers,
		"notification-service",
		[]string{c.topic},
		c.handleMessage,
		c.logger,
	)

	group.Run(ctx)
}

func (c *Consumer) handleMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event checkout.OrderPlacedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		applog.Warn(ctx, c.logger, "Skipping undecodable order event", zap.Error(err))
		return nil
	}

	applog.Info(
		ctx,
		c.logger,
		"Processing order placed event",
		zap.String("invoice_id", event.InvoiceID),
	)

	if err := c.sender.SendOrderConfirmation(ctx, event.Email, event.Name, event.InvoiceID, event.Total); err != nil {
		return fmt.Errorf("failed to send order confirmation: %w", err)
	}

	return nil
}
