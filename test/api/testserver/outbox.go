//go:build api

package testserver

import (
	"context"
	"sync"
	"time"

	"tour-catalog/internal/mailer"
	"tour-catalog/internal/models"
)

var _ mailer.Mailer = (*Outbox)(nil)

// Outbox is a Mailer that keeps messages in memory instead of sending them.
type Outbox struct {
	mu        sync.Mutex
	otps      map[string]string
	enquiries []models.Enquiry
}

// NewOutbox creates an empty outbox.
func NewOutbox() *Outbox {
	return &Outbox{otps: make(map[string]string)}
}

// SendOTP records the latest code sent to an address.
func (o *Outbox) SendOTP(_ context.Context, to, otp string, _ time.Duration) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.otps[to] = otp
	return nil
}

// SendEnquiryNotification records the forwarded enquiry.
func (o *Outbox) SendEnquiryNotification(_ context.Context, enquiry *models.Enquiry) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.enquiries = append(o.enquiries, *enquiry)
	return nil
}

// OTP returns the last code sent to an address.
func (o *Outbox) OTP(to string) (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	otp, ok := o.otps[to]
	return otp, ok
}

// Enquiries returns the notifications sent so far.
func (o *Outbox) Enquiries() []models.Enquiry {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]models.Enquiry(nil), o.enquiries...)
}

// Reset forgets every recorded message.
func (o *Outbox) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.otps = make(map[string]string)
	o.enquiries = nil
}
