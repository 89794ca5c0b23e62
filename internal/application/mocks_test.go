package application

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/ericfisherdev/deploydrop/internal/domain/model"
)

// --- Mock implementations ---

type mockSubmissionStore struct {
	mu        sync.Mutex
	subs      []model.Submission
	appendErr error
	listErr   error
	pingErr   error
}

func (m *mockSubmissionStore) Append(_ context.Context, sub model.Submission) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sub.Seq = int64(len(m.subs) + 1)
	m.subs = append(m.subs, sub)
	return nil
}

func (m *mockSubmissionStore) List(_ context.Context) ([]model.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Submission(nil), m.subs...), m.listErr
}

func (m *mockSubmissionStore) Count(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subs), m.listErr
}

func (m *mockSubmissionStore) Ping(_ context.Context) error { return m.pingErr }

// prefixSealer is a reversible stand-in for the AES sealer.
type prefixSealer struct {
	sealErr error
}

func (s prefixSealer) Seal(plaintext string) (string, error) {
	if s.sealErr != nil {
		return "", s.sealErr
	}
	return "sealed:" + plaintext, nil
}

func (s prefixSealer) Open(sealed string) (string, error) {
	if !strings.HasPrefix(sealed, "sealed:") {
		return "", errors.New("not sealed")
	}
	return strings.TrimPrefix(sealed, "sealed:"), nil
}

type mockNotificationSource struct {
	message string
	present bool
	readErr error
	cleared bool
}

func (m *mockNotificationSource) Read(_ context.Context) (string, bool, error) {
	return m.message, m.present, m.readErr
}

func (m *mockNotificationSource) Write(_ context.Context, message string) error {
	m.message = message
	m.present = true
	return nil
}

func (m *mockNotificationSource) Clear(_ context.Context) error {
	m.message = ""
	m.present = false
	m.cleared = true
	return nil
}
