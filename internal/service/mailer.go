package service

import (
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer dispatches transactional email. Sends are fire-and-forget: the
// survey flow never waits on, or fails because of, mail delivery.
type Mailer interface {
	Send(to, subject, body string)
}

type sendgridMailer struct {
	key  string
	from *sgmail.Email
}

func NewSendgridMailer(key, fromName, fromAddress string) Mailer {
	return &sendgridMailer{
		key:  key,
		from: sgmail.NewEmail(fromName, fromAddress),
	}
}

func (m *sendgridMailer) Send(to, subject, body string) {
	if m.key == "" || to == "" {
		return
	}

	go func() {
		message := sgmail.NewSingleEmail(m.from, subject, sgmail.NewEmail("", to), body, "")
		client := sendgrid.NewSendClient(m.key)
		if _, err := client.Send(message); err != nil {
			log.Printf("failed to send email to %s: %v", to, err)
		}
	}()
}
