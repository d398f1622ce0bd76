package services

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	"munsociety/internal/domain"
)

type contactService struct {
	mailer    domain.Mailer
	recipient string
	logger    *slog.Logger
	timeout   time.Duration
}

// NewContactService creates a ContactService that forwards contact form
// submissions to the society inbox.
func NewContactService(mailer domain.Mailer, recipient string, logger *slog.Logger, timeout time.Duration) domain.ContactService {
	return &contactService{
		mailer:    mailer,
		recipient: recipient,
		logger:    logger,
		timeout:   timeout,
	}
}

func (s *contactService) Submit(ctx context.Context, msg *domain.ContactMessage) error {
	_, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	subject := fmt.Sprintf("Contact form: %s", msg.Subject)
	text := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)
	htmlBody := fmt.Sprintf(
		"<p>From: %s &lt;%s&gt;</p><p>%s</p>",
		html.EscapeString(msg.Name), html.EscapeString(msg.Email), html.EscapeString(msg.Message),
	)
	if err := s.mailer.Send(s.recipient, subject, htmlBody, text); err != nil {
		return fmt.Errorf("send contact message: %w", err)
	}
	s.logger.InfoContext(ctx, "contact message forwarded", "from", msg.Email)
	return nil
}
