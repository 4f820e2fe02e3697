package mail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
)

// MailerSendSender delivers through the MailerSend API.
type MailerSendSender struct {
	client *mailersend.Mailersend
}

func NewMailerSendSender(apiKey string) (*MailerSendSender, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("missing MAILERSEND_API_KEY")
	}
	return &MailerSendSender{client: mailersend.NewMailersend(apiKey)}, nil
}

func (s *MailerSendSender) Send(ctx context.Context, msg *Message) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	m := s.client.Email.NewMessage()
	m.SetFrom(mailersend.From{Name: msg.FromName, Email: msg.From})
	m.SetRecipients([]mailersend.Recipient{{Name: msg.ToName, Email: msg.To}})
	m.SetSubject(msg.Subject)
	if msg.ReplyTo != "" {
		m.SetReplyTo(mailersend.ReplyTo{Name: msg.ReplyToName, Email: msg.ReplyTo})
	}
	if msg.BCC != "" {
		m.SetBcc([]mailersend.Recipient{{Email: msg.BCC}})
	}
	if strings.TrimSpace(msg.Text) != "" {
		m.SetText(msg.Text)
	}
	if strings.TrimSpace(msg.HTML) != "" {
		m.SetHTML(msg.HTML)
	}

	res, err := s.client.Email.Send(ctx, m)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("mailersend error: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
