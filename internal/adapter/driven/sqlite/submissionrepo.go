package sqlite

import (
	"context"
	"fmt"

	"github.com/ericfisherdev/deploydrop/internal/domain/model"
	"github.com/ericfisherdev/deploydrop/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SubmissionStore = (*SubmissionRepo)(nil)

// SubmissionRepo is the SQLite implementation of the SubmissionStore port interface.
// It stores values as given; sealing the password is the caller's job.
type SubmissionRepo struct {
	db *DB
}

// NewSubmissionRepo creates a new SubmissionRepo.
func NewSubmissionRepo(db *DB) *SubmissionRepo {
	return &SubmissionRepo{db: db}
}

// Append inserts one submission in its own transaction.
func (r *SubmissionRepo) Append(ctx context.Context, sub model.Submission) error {
	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin append submission: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const query = `
		INSERT INTO submissions (id, github_link, db_user, db_password, db_name, domain, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = tx.ExecContext(ctx, query,
		sub.ID,
		sub.GitHubLink,
		sub.DBUser,
		sub.DBPassword,
		sub.DBName,
		sub.Domain,
		formatTime(sub.SubmittedAt),
	)
	if err != nil {
		return fmt.Errorf("append submission %s: %w", sub.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit submission %s: %w", sub.ID, err)
	}
	return nil
}

// List returns all submissions in append order.
func (r *SubmissionRepo) List(ctx context.Context) ([]model.Submission, error) {
	const query = `
		SELECT seq, id, github_link, db_user, db_password, db_name, domain, submitted_at
		FROM submissions
		ORDER BY seq ASC`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var subs []model.Submission
	for rows.Next() {
		var sub model.Submission
		var submittedAt string
		if err := rows.Scan(
			&sub.Seq,
			&sub.ID,
			&sub.GitHubLink,
			&sub.DBUser,
			&sub.DBPassword,
			&sub.DBName,
			&sub.Domain,
			&submittedAt,
		); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}

		sub.SubmittedAt, err = parseTime(submittedAt)
		if err != nil {
			return nil, fmt.Errorf("parse submitted_at for submission %s: %w", sub.ID, err)
		}

		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}

	return subs, nil
}

// Count returns the number of stored submissions.
func (r *SubmissionRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.Reader.QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return n, nil
}

// Ping checks that the reader connection is usable.
func (r *SubmissionRepo) Ping(ctx context.Context) error {
	if err := r.db.Reader.PingContext(ctx); err != nil {
		return fmt.Errorf("ping store: %w", err)
	}
	return nil
}
