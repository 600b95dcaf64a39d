// Package mailer sends transactional notifications. Delivery is best effort:
// callers log failures and move on, a lost email never fails a request.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"showbench/internal/logging"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Sender interface {
	Send(msg Message) error
}

// SMTPSender delivers through a plain SMTP relay.
type SMTPSender struct {
	Addr     string
	From     string
	Username string
	Password string
}

func (s *SMTPSender) Send(msg Message) error {
	if s.Addr == "" || s.From == "" {
		return fmt.Errorf("smtp sender is not configured")
	}
	var auth smtp.Auth
	if s.Username != "" {
		host, _, _ := strings.Cut(s.Addr, ":")
		auth = smtp.PlainAuth("", s.Username, s.Password, host)
	}
	payload := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		s.From, msg.To, msg.Subject, msg.Body)
	return smtp.SendMail(s.Addr, auth, s.From, []string{msg.To}, []byte(payload))
}

// LogSender records the message instead of delivering it. Used in dev and
// whenever SMTP is unconfigured.
type LogSender struct{}

func (LogSender) Send(msg Message) error {
	logging.Log.Infof("mail (not sent) to=%s subject=%q", msg.To, msg.Subject)
	return nil
}

// FromConfig picks SMTP when an address is configured, the log sender
// otherwise.
func FromConfig(addr, from, username, password string) Sender {
	if addr == "" {
		return LogSender{}
	}
	return &SMTPSender{Addr: addr, From: from, Username: username, Password: password}
}
