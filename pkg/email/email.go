package email

import (
	"fmt"
	"net/smtp"
)

// Notifier sends plain text notification emails using SMTP. A notifier
// without a host is disabled and silently drops messages, so callers can
// always fire-and-forget.
type Notifier struct {
	Host     string
	Port     string
	Sender   string
	Password string
}

func NewNotifier(host, port, sender, password string) *Notifier {
	return &Notifier{
		Host:     host,
		Port:     port,
		Sender:   sender,
		Password: password,
	}
}

func (n *Notifier) Enabled() bool {
	return n != nil && n.Host != ""
}

// Send delivers a plain text email to a single recipient.
func (n *Notifier) Send(to, subject, body string) error {
	if !n.Enabled() {
		return nil
	}

	auth := smtp.PlainAuth("", n.Sender, n.Password, n.Host)

	msg := []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body + "\r\n")

	address := n.Host + ":" + n.Port

	if err := smtp.SendMail(address, auth, n.Sender, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}
