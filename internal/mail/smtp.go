package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPSender delivers over plain SMTP. With UseTLS false and no user it
// speaks to an unauthenticated relay such as Mailpit on 1025.
type SMTPSender struct {
	Host   string
	Port   int
	User   string
	Pass   string
	UseTLS bool
}

func NewSMTPSender(host string, port int, user, pass string, useTLS bool) *SMTPSender {
	return &SMTPSender{
		Host:   strings.TrimSpace(host),
		Port:   port,
		User:   strings.TrimSpace(user),
		Pass:   pass,
		UseTLS: useTLS,
	}
}

func (s *SMTPSender) Send(_ context.Context, msg *Message) error {
	to := strings.TrimSpace(msg.To)
	if to == "" {
		return fmt.Errorf("empty recipient email")
	}

	recipients := []string{to}
	if msg.BCC != "" {
		recipients = append(recipients, msg.BCC)
	}

	var buf bytes.Buffer
	boundary := "mixed-boundary"
	fmt.Fprintf(&buf, "From: %s <%s>\r\n", msg.FromName, msg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&buf, "Reply-To: %s <%s>\r\n", msg.ReplyToName, msg.ReplyTo)
	}
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary)

	// text part
	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	fmt.Fprintf(&buf, "Content-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n\r\n", msg.Text)

	// html part
	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	fmt.Fprintf(&buf, "Content-Type: text/html; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n\r\n", msg.HTML)

	fmt.Fprintf(&buf, "--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)

	// Mailpit on 1025: no auth, no TLS
	if !s.UseTLS && s.User == "" {
		return smtp.SendMail(addr, nil, msg.From, recipients, buf.Bytes())
	}

	var auth smtp.Auth
	if s.User != "" {
		auth = smtp.PlainAuth("", s.User, s.Pass, s.Host)
	}

	// Plain SendMail first; it upgrades via STARTTLS when advertised.
	if err := smtp.SendMail(addr, auth, msg.From, recipients, buf.Bytes()); err == nil {
		return nil
	}

	// Fallback to implicit TLS (e.g., port 465) if requested
	if s.UseTLS {
		tlsCfg := &tls.Config{ServerName: s.Host}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		if auth != nil {
			if err := c.Auth(auth); err != nil {
				return err
			}
		}
		if err := c.Mail(msg.From); err != nil {
			return err
		}
		for _, rcpt := range recipients {
			if err := c.Rcpt(rcpt); err != nil {
				return err
			}
		}
		w, err := c.Data()
		if err != nil {
			return err
		}
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
		return w.Close()
	}

	return fmt.Errorf("smtp send failed")
}
