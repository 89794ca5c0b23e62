package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ericfisherdev/deploydrop/internal/domain/model"
	"github.com/ericfisherdev/deploydrop/internal/domain/port/driven"
)

// SubmissionService records deployment requests. It seals the database
// password before anything reaches the store.
type SubmissionService struct {
	store  driven.SubmissionStore
	sealer driven.SecretSealer
	now    func() time.Time
	newID  func() string
}

// NewSubmissionService creates a new SubmissionService with the required dependencies.
func NewSubmissionService(store driven.SubmissionStore, sealer driven.SecretSealer) *SubmissionService {
	return &SubmissionService{
		store:  store,
		sealer: sealer,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.NewString() },
	}
}

// Submit seals the password and appends one record. The returned
// submission carries the sealed password.
func (s *SubmissionService) Submit(ctx context.Context, in model.SubmissionInput) (*model.Submission, error) {
	sealed, err := s.sealer.Seal(in.DBPassword)
	if err != nil {
		return nil, fmt.Errorf("seal password: %w", err)
	}

	sub := model.Submission{
		ID:          s.newID(),
		GitHubLink:  in.GitHubLink,
		DBUser:      in.DBUser,
		DBPassword:  sealed,
		DBName:      in.DBName,
		Domain:      in.Domain,
		SubmittedAt: s.now(),
	}

	if err := s.store.Append(ctx, sub); err != nil {
		return nil, err
	}

	return &sub, nil
}

// Ledger returns every stored submission as a ledger entry, in store order.
// Passwords are masked unless reveal is set, in which case they are opened.
func (s *SubmissionService) Ledger(ctx context.Context, reveal bool) ([]model.LedgerEntry, error) {
	subs, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]model.LedgerEntry, 0, len(subs))
	for _, sub := range subs {
		password := model.MaskedPassword
		if reveal {
			password, err = s.sealer.Open(sub.DBPassword)
			if err != nil {
				return nil, fmt.Errorf("open password of submission %s: %w", sub.ID, err)
			}
		}

		entries = append(entries, model.LedgerEntry{
			GitHubLink: sub.GitHubLink,
			DBUser:     sub.DBUser,
			Password:   password,
			DBName:     sub.DBName,
			Domain:     sub.Domain,
		})
	}

	return entries, nil
}

// Count returns the number of stored submissions.
func (s *SubmissionService) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

// Ping reports whether the store is reachable.
func (s *SubmissionService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
