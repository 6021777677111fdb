// Package notify emails candidates their screening outcome. Send failures
// are the caller's to tolerate; scoring is valid without a delivered mail.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
)

// Notification carries everything the outcome mail needs.
type Notification struct {
	CandidateName  string
	CandidateEmail string
	JobRole        string
	FinalScore     float64
	ATSScore       int
	Recommendation string
	Reasons        []string
}

// Notifier sends a screening outcome to the candidate.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Selected reports whether the candidate advances to the next round.
func (n Notification) Selected() bool {
	return n.FinalScore >= 0.50 && n.ATSScore >= 50
}

// Mailer sends outcome mails over SMTP.
type Mailer struct {
	client  *mail.Client
	sender  string
	company string
}

// NewMailer constructs a Mailer with a bounded dial/send timeout.
func NewMailer(host string, port int, sender, password, company string, timeout time.Duration) (*Mailer, error) {
	if strings.TrimSpace(sender) == "" || strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("SENDER_EMAIL and SENDER_PASSWORD are required")
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(sender),
		mail.WithPassword(password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &Mailer{client: client, sender: sender, company: company}, nil
}

// Notify renders the selection or rejection mail and sends it.
func (m *Mailer) Notify(ctx context.Context, n Notification) error {
	subject, body, err := buildOutcomeMail(n, m.company)
	if err != nil {
		return fmt.Errorf("render mail: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.From(m.sender); err != nil {
		return err
	}
	if err := msg.To(n.CandidateEmail); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	return m.client.DialAndSendWithContext(ctx, msg)
}

// NopNotifier is used when SMTP is unconfigured; every send fails softly.
type NopNotifier struct{}

// Notify reports the sender as unconfigured.
func (NopNotifier) Notify(ctx context.Context, n Notification) error {
	_ = ctx
	_ = n
	return fmt.Errorf("notification sender not configured")
}

var (
	_ Notifier = (*Mailer)(nil)
	_ Notifier = NopNotifier{}
)
