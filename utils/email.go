package utils

import (
	"gopkg.in/gomail.v2"
)

// SendEmail sends a plain-text mail through the configured SMTP relay.
func SendEmail(host string, port int, user, password, from, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(host, port, user, password)

	return d.DialAndSend(m)
}
