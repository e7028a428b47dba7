// Package notify dispatches challenge codes through the external
// delivery channels. Channels are best-effort and independent: one
// failing does not stop the other, and the combined error is reported
// to the caller to log and swallow.
package notify

import (
	"context"
	"errors"
)

// CodeSender is one delivery channel for a challenge code.
type CodeSender interface {
	SendCode(ctx context.Context, to, code string) error
}

// Dispatcher fans a code out to email and WhatsApp. Either sender may
// be nil when the channel is not configured.
type Dispatcher struct {
	email    CodeSender
	whatsapp CodeSender
}

func NewDispatcher(email, whatsapp CodeSender) *Dispatcher {
	return &Dispatcher{email: email, whatsapp: whatsapp}
}

func (d *Dispatcher) SendOTP(ctx context.Context, email, phone, code string) error {
	var errs []error

	if d.email != nil && email != "" {
		if err := d.email.SendCode(ctx, email, code); err != nil {
			errs = append(errs, err)
		}
	}

	if d.whatsapp != nil && phone != "" {
		if err := d.whatsapp.SendCode(ctx, phone, code); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
