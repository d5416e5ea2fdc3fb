// Package mailer sends transactional e-mail over SMTP.
package mailer

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"tour-catalog/internal/models"

	"gopkg.in/gomail.v2"
)

//go:generate mockgen -destination=mocks/mock_mailer.go -package=mocks tour-catalog/internal/mailer Mailer

// Mailer delivers the messages the API sends on behalf of users.
type Mailer interface {
	// SendOTP e-mails a password reset code to the given address.
	SendOTP(ctx context.Context, to, otp string, validFor time.Duration) error
	// SendEnquiryNotification forwards a new enquiry to the site inbox.
	SendEnquiryNotification(ctx context.Context, enquiry *models.Enquiry) error
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Config holds SMTP settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Inbox    string
}

// SMTPMailer implements Mailer with gomail.
type SMTPMailer struct {
	dialer dialer
	from   string
	inbox  string
}

// NewSMTPMailer creates a mailer that dials the configured SMTP server per message.
func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		inbox:  cfg.Inbox,
	}
}

// SendOTP sends the reset code.
func (m *SMTPMailer) SendOTP(ctx context.Context, to, otp string, validFor time.Duration) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your password reset code")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your one-time password is %s.\n\nIt expires in %d minutes. If you did not request a password reset you can ignore this e-mail.\n",
		otp, int(validFor.Minutes()),
	))
	msg.AddAlternative("text/html", fmt.Sprintf(
		"<p>Your one-time password is <strong>%s</strong>.</p><p>It expires in %d minutes.</p>",
		html.EscapeString(otp), int(validFor.Minutes()),
	))

	return m.send(ctx, msg)
}

// SendEnquiryNotification sends the enquiry to the configured inbox with
// Reply-To set to the visitor.
func (m *SMTPMailer) SendEnquiryNotification(ctx context.Context, enquiry *models.Enquiry) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.inbox)
	msg.SetAddressHeader("Reply-To", enquiry.Email, enquiry.Name)
	msg.SetHeader("Subject", fmt.Sprintf("New %s from %s", enquiry.Source, enquiry.Name))

	var body strings.Builder
	fmt.Fprintf(&body, "Name: %s\n", enquiry.Name)
	fmt.Fprintf(&body, "Email: %s\n", enquiry.Email)
	if enquiry.Phone != "" {
		fmt.Fprintf(&body, "Phone: %s\n", enquiry.Phone)
	}
	if enquiry.SubPackageID != nil {
		fmt.Fprintf(&body, "Tour: %s\n", enquiry.SubPackageID.Hex())
	}
	fmt.Fprintf(&body, "\n%s\n", enquiry.Message)
	msg.SetBody("text/plain", body.String())

	return m.send(ctx, msg)
}

func (m *SMTPMailer) send(ctx context.Context, msg *gomail.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// Ensure SMTPMailer implements Mailer
var _ Mailer = (*SMTPMailer)(nil)
