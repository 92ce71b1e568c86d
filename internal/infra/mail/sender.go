package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendAssignment tells the lead which rep will be in touch. Called from
// the queue worker only, never from the routing path.
func (s *EmailSender) SendAssignment(to, repName string, leadID int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("%s from our team will be in touch 🚀", repName))
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi!\n\nThanks for reaching out. %s will follow up with you shortly.\n\nRef: lead #%d\n",
		repName, leadID,
	))

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send SMTP email: %w", err)
	}

	return nil
}
