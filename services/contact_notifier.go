package services

import (
	"context"
	"fmt"
	"html"

	"golang.org/x/sync/errgroup"
)

// ContactNotifier fans out the two emails triggered by a contact-form
// submission: an alert to the site owner and an acknowledgment to the
// sender. Both sends run concurrently; either may fail independently.
type ContactNotifier struct {
	mailer     Mailer
	adminEmail string
	siteOwner  string
}

func NewContactNotifier(mailer Mailer, adminEmail, siteOwner string) *ContactNotifier {
	return &ContactNotifier{
		mailer:     mailer,
		adminEmail: adminEmail,
		siteOwner:  siteOwner,
	}
}

// Notify sends the admin alert and the user acknowledgment. The returned
// error aggregates delivery failures; callers log it and move on since the
// message is already committed to the database. The two sends share no
// cancelation: one failing must not abort the other in flight.
func (n *ContactNotifier) Notify(ctx context.Context, name, email, message string) error {
	var g errgroup.Group

	g.Go(func() error {
		subject := fmt.Sprintf("New Contact Form Submission from %s", name)
		return n.mailer.Send(ctx, subject, n.adminAlertBody(name, email, message), []string{n.adminEmail})
	})

	g.Go(func() error {
		subject := fmt.Sprintf("Thank you for contacting %s", n.siteOwner)
		return n.mailer.Send(ctx, subject, n.acknowledgmentBody(name), []string{email})
	})

	return g.Wait()
}

func (n *ContactNotifier) adminAlertBody(name, email, message string) string {
	return fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <h1 style="color: #333;">New Contact Form Submission</h1>
      <div style="background-color: #f5f5f5; padding: 20px; border-radius: 5px;">
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Message:</strong></p>
        <p style="white-space: pre-wrap;">%s</p>
      </div>
    </div>`,
		html.EscapeString(name), html.EscapeString(email), html.EscapeString(message))
}

func (n *ContactNotifier) acknowledgmentBody(name string) string {
	return fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <h1 style="color: #333;">Thank you for your message, %s!</h1>
      <div style="background-color: #f5f5f5; padding: 20px; border-radius: 5px;">
        <p>I have received your inquiry and will get back to you as soon as possible.</p>
        <p>Best regards,</p>
        <p><strong>%s</strong></p>
      </div>
    </div>`,
		html.EscapeString(name), html.EscapeString(n.siteOwner))
}
