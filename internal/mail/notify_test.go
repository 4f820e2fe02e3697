package mail

import (
	"context"
	"errors"
	"testing"

	"github.com/seeeye/area710-booking/pkg/config"
)

type recordingSender struct {
	messages []*Message
	failFor  map[string]error // keyed by recipient
}

func (s *recordingSender) Send(_ context.Context, msg *Message) error {
	s.messages = append(s.messages, msg)
	return s.failFor[msg.To]
}

func testEmailConfig() config.EmailConfig {
	return config.EmailConfig{
		RecipientEmail: "info@area710.de",
		RecipientName:  "area710 Eventbüro",
		SenderEmail:    "noreply@area710.de",
		SenderName:     "area710 Buchungssystem",
		BCC:            "archiv@area710.de",
	}
}

func TestNotifyBookingSendsBothMails(t *testing.T) {
	sender := &recordingSender{}
	n := NewNotifier(sender, testEmailConfig())

	if err := n.NotifyBooking(context.Background(), sampleBooking()); err != nil {
		t.Fatal(err)
	}

	if len(sender.messages) != 2 {
		t.Fatalf("expected 2 mails, got %d", len(sender.messages))
	}

	owner := sender.messages[0]
	if owner.To != "info@area710.de" {
		t.Errorf("owner mail to %q", owner.To)
	}
	if owner.ReplyTo != "anna@example.com" {
		t.Errorf("owner mail must reply to the customer, got %q", owner.ReplyTo)
	}
	if owner.BCC != "archiv@area710.de" {
		t.Errorf("owner mail BCC %q", owner.BCC)
	}

	customer := sender.messages[1]
	if customer.To != "anna@example.com" {
		t.Errorf("customer mail to %q", customer.To)
	}
	if customer.From != "info@area710.de" || customer.ReplyTo != "info@area710.de" {
		t.Errorf("customer mail must come from the venue, got from=%q replyTo=%q", customer.From, customer.ReplyTo)
	}
	if customer.BCC != "" {
		t.Errorf("customer mail must not carry the BCC, got %q", customer.BCC)
	}
}

func TestNotifyBookingAttemptsSecondAfterFirstFails(t *testing.T) {
	sender := &recordingSender{
		failFor: map[string]error{"info@area710.de": errors.New("mailbox full")},
	}
	n := NewNotifier(sender, testEmailConfig())

	err := n.NotifyBooking(context.Background(), sampleBooking())
	if err == nil {
		t.Fatal("expected error when a send fails")
	}
	if len(sender.messages) != 2 {
		t.Fatalf("customer mail must still be attempted, got %d sends", len(sender.messages))
	}
	// The error is generic; which attempt failed stays in the logs.
	if err.Error() != "email delivery failed" {
		t.Errorf("unexpected error: %v", err)
	}
}
