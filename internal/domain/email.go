package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// ContactMessage holds one submission from the public contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService forwards contact form submissions to the society inbox.
type ContactService interface {
	Submit(ctx context.Context, msg *ContactMessage) error
}
