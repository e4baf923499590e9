package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	mu            sync.Mutex
	sent          map[string]string // recipient -> subject
	sendErr       error
	failRecipient string // fail only sends addressed to this recipient
}

func (m *recordingMailer) Send(ctx context.Context, subject, html string, recipients []string) error {
	// A canceled context aborts the delivery, like the real HTTP client.
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	for _, r := range recipients {
		if r == m.failRecipient {
			return errors.New("delivery rejected")
		}
	}
	if m.sent == nil {
		m.sent = map[string]string{}
	}
	for _, r := range recipients {
		m.sent[r] = subject
	}
	return nil
}

func TestContactNotifier(t *testing.T) {
	t.Run("sends the alert and the acknowledgment", func(t *testing.T) {
		mailer := &recordingMailer{}
		notifier := NewContactNotifier(mailer, "admin@example.test", "Site Owner")

		err := notifier.Notify(context.Background(), "Sam", "sam@example.test", "hello there")
		require.NoError(t, err)

		require.Len(t, mailer.sent, 2)
		assert.Contains(t, mailer.sent["admin@example.test"], "Sam")
		assert.Contains(t, mailer.sent["sam@example.test"], "Site Owner")
	})

	t.Run("aggregates delivery failures", func(t *testing.T) {
		mailer := &recordingMailer{sendErr: errors.New("relay down")}
		notifier := NewContactNotifier(mailer, "admin@example.test", "Site Owner")

		err := notifier.Notify(context.Background(), "Sam", "sam@example.test", "hello")
		assert.Error(t, err)
	})

	t.Run("one failed delivery does not abort the other", func(t *testing.T) {
		mailer := &recordingMailer{failRecipient: "admin@example.test"}
		notifier := NewContactNotifier(mailer, "admin@example.test", "Site Owner")

		err := notifier.Notify(context.Background(), "Sam", "sam@example.test", "hello")
		assert.Error(t, err, "admin alert failure is reported")

		mailer.mu.Lock()
		defer mailer.mu.Unlock()
		assert.Contains(t, mailer.sent, "sam@example.test", "acknowledgment delivered despite the failed alert")
	})

	t.Run("escapes HTML in user-supplied fields", func(t *testing.T) {
		notifier := NewContactNotifier(&recordingMailer{}, "admin@example.test", "Site Owner")

		body := notifier.adminAlertBody("<script>alert(1)</script>", "sam@example.test", "a <b> tag")
		assert.NotContains(t, body, "<script>")
		assert.Contains(t, body, "&lt;script&gt;")
		assert.Contains(t, body, "a &lt;b&gt; tag")
	})
}
