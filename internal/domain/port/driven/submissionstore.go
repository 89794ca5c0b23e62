package driven

import (
	"context"

	"github.com/ericfisherdev/deploydrop/internal/domain/model"
)

// SubmissionStore defines the driven port for the append-only submission store.
// Append must persist the whole record atomically; List returns records in
// the order they were appended.
type SubmissionStore interface {
	Append(ctx context.Context, sub model.Submission) error
	List(ctx context.Context) ([]model.Submission, error)
	Count(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}
