package mail

import (
	"context"
	"errors"
	"strings"

	"github.com/seeeye/area710-booking/internal/domain"
	"github.com/seeeye/area710-booking/pkg/config"
	"github.com/seeeye/area710-booking/pkg/logger"
)

// Notifier sends the two booking mails: the internal notification to the
// venue and the confirmation to the customer.
type Notifier struct {
	sender Sender
	cfg    config.EmailConfig
}

func NewNotifier(sender Sender, cfg config.EmailConfig) *Notifier {
	return &Notifier{sender: sender, cfg: cfg}
}

// NotifyBooking attempts both sends regardless of whether the first one
// failed. There is no retry; a failure is reported once and the booking data
// is gone with the request.
func (n *Notifier) NotifyBooking(ctx context.Context, b *domain.Booking) error {
	var failed bool

	owner, err := RenderOwnerNotification(b)
	if err != nil {
		return err
	}
	ownerMsg := &Message{
		To:          n.cfg.RecipientEmail,
		ToName:      n.cfg.RecipientName,
		Subject:     owner.Subject,
		HTML:        owner.HTML,
		Text:        owner.Text,
		From:        n.cfg.SenderEmail,
		FromName:    n.cfg.SenderName,
		ReplyTo:     b.Email,
		ReplyToName: b.FullName(),
		BCC:         n.cfg.BCC,
	}
	if err := n.sender.Send(ctx, ownerMsg); err != nil {
		logger.ErrorContext(ctx, "Failed to send owner notification", "error", err)
		failed = true
	}

	customer, err := RenderCustomerConfirmation(b)
	if err != nil {
		return err
	}
	customerMsg := &Message{
		To:          b.Email,
		ToName:      b.FullName(),
		Subject:     customer.Subject,
		HTML:        customer.HTML,
		Text:        customer.Text,
		From:        n.cfg.RecipientEmail,
		FromName:    n.cfg.RecipientName,
		ReplyTo:     n.cfg.RecipientEmail,
		ReplyToName: n.cfg.RecipientName,
	}
	if err := n.sender.Send(ctx, customerMsg); err != nil {
		logger.ErrorContext(ctx, "Failed to send customer confirmation", "error", err)
		failed = true
	}

	logger.InfoContext(ctx, "Booking request processed",
		"email", b.Email,
		"event_date", b.EventDate,
		"rooms", strings.Join(b.Rooms, ", "),
	)

	if failed {
		return errors.New("email delivery failed")
	}
	return nil
}
