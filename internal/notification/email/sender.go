package email

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/GantalaAvinash/mobile-store/pkg/applog"
	"github.com/GantalaAvinash/mobile-store/pkg/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type Sender interface {
	SendOrderConfirmation(ctx context.Context, to, name, invoiceID string, total int64) error
}

type smtpSender struct {
	from     string
	password string
	host     string
	port     string
	logger   *zap.Logger
	tracer   trace.Tracer
}

func NewSMTPSender(cfg config.SMTP, logger *zap.Logger) Sender {
	return &smtpSender{
		from:     cfg.User,
		password: cfg.Pass,
		host:     cfg.Host,
		port:     cfg.Port,
		logger:   logger,
		tracer:   otel.Tracer("notification/email"),
	}
}

func (s *smtpSender) SendOrderConfirmation(ctx context.Context, to, name, invoiceID string, total int64) error {
	ctx, span := s.tracer.Start(ctx, "smtp.SendOrderConfirmation")
	defer span.End()

	span.SetAttributes(
		attribute.String("to.email", to),
		attribute.String("invoice_id", invoiceID),
	)

	subject := "Subject: Your order is confirmed!\n"
	mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	body := fmt.Sprintf(`
		<h1>Thank you for your purchase, %s!</h1>
		<p>Your order <b>%s</b> has been placed successfully.</p>
		<p>Order total: ₹%.2f (incl. GST)</p>
	`, name, invoiceID, float64(total)/100)

	msg := []byte(subject + mime + body)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	auth := smtp.PlainAuth("", s.from, s.password, s.host)

	applog.Info(
		ctx,
		s.logger,
		"Sending order confirmation email",
		zap.String("to", to),
		zap.String("invoice_id", invoiceID),
	)

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, msg); err != nil {
		span.RecordError(err)

		applog.Error(
			ctx,
			s.logger,
			"Error sending order confirmation email",
			zap.String("to", to),
			zap.String("invoice_id", invoiceID),
			zap.Error(err),
		)

		return fmt.Errorf("failed to send mail: %v", err)
	}

	return nil
}
