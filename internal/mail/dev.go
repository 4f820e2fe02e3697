package mail

import (
	"context"

	"github.com/seeeye/area710-booking/pkg/logger"
)

// DevSender logs mails instead of sending them.
type DevSender struct{}

func NewDevSender() *DevSender {
	return &DevSender{}
}

func (d *DevSender) Send(ctx context.Context, msg *Message) error {
	logger.InfoContext(ctx, "📧 [DEV MAIL]",
		"to", msg.To,
		"to_name", msg.ToName,
		"subject", msg.Subject,
		"from", msg.From,
		"reply_to", msg.ReplyTo,
		"bcc", msg.BCC,
		"html_bytes", len(msg.HTML),
	)
	return nil
}
