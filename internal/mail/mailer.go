// Package mail sends the booking notification emails. Three Sender
// implementations are provided: MailerSend for production, plain SMTP for
// staging setups and Mailpit, and a dev sender that only logs.
package mail

import "context"

// Message is one outbound email. BCC is optional; everything else is set by
// the notifier.
type Message struct {
	To          string
	ToName      string
	Subject     string
	HTML        string
	Text        string
	From        string
	FromName    string
	ReplyTo     string
	ReplyToName string
	BCC         string
}

type Sender interface {
	Send(ctx context.Context, msg *Message) error
}
