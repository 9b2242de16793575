package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/GantalaAvinash/mobile-store/internal/checkout"
	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) SendOrderConfirmation(_ context.Context, to, _, invoiceID string, _ int64) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to+":"+invoiceID)
	return nil
}

func orderMessage(t *testing.T, event checkout.OrderPlacedEvent) *sarama.ConsumerMessage {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	return &sarama.ConsumerMessage{Topic: "order_events", Value: data}
}

func TestHandleMessage_SendsConfirmation(t *testing.T) {
	sender := &fakeSender{}
	c := NewConsumer(sender, "order_events", zap.NewNop())

	event := checkout.OrderPlacedEvent{
		InvoiceID:     "INV-123",
		Email:         "buyer@example.com",
		Name:          "Buyer",
		Total:         118000,
		PaymentMethod: "Cash on Delivery",
		OrderDate:     time.Now(),
	}

	err := c.handleMessage(context.Background(), orderMessage(t, event))
	require.NoError(t, err)
	require.Equal(t, []string{"buyer@example.com:INV-123"}, sender.sent)
}

func TestHandleMessage_SkipsUndecodableEvent(t *testing.T) {
	sender := &fakeSender{}
	c := NewConsumer(sender, "order_events", zap.NewNop())

	msg := &sarama.ConsumerMessage{Topic: "order_events", Value: []byte("{garbage")}

	err := c.handleMessage(context.Background(), msg)
	require.NoError(t, err)
	require.Empty(t, sender.sent)
}

func TestHandleMessage_SendFailurePropagates(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp down")}
	c := NewConsumer(sender, "order_events", zap.NewNop())

	err := c.handleMessage(context.Background(), orderMessage(t, checkout.OrderPlacedEvent{
		InvoiceID: "INV-1",
		Email:     "a@b.com",
	}))
	require.Error(t, err)
}
