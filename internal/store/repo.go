package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/plantcheck/internal/questionbank"
	"github.com/abhisek/plantcheck/internal/scoring"
)

// ErrNotFound is returned when a submission ID does not exist.
var ErrNotFound = errors.New("submission not found")

// QueryOpts configures submission queries with filtering and pagination.
type QueryOpts struct {
	Limit int                    // max results (0 = unlimited)
	Kind  scoring.EvaluationKind // empty = all kinds
	From  time.Time              // created_at >= From
	To    time.Time              // created_at <= To
}

// Submission is a scored evaluation together with the raw answers it was
// computed from. It doubles as the payload handed to the reporting backend.
type Submission struct {
	ID        string                     `json:"id"`
	Sequence  int64                      `json:"sequence"`
	CreatedAt time.Time                  `json:"created_at"`
	Kind      scoring.EvaluationKind     `json:"evaluation_kind"`
	Role      string                     `json:"role"`
	Result    scoring.EvaluationResult   `json:"result"`
	Answers   []questionbank.AnswerEntry `json:"answers"`
}

// SubmissionRepo manages stored submissions.
type SubmissionRepo interface {
	// Save stores a new submission, assigning ID, Sequence and CreatedAt
	// when they are unset.
	Save(ctx context.Context, sub *Submission) error

	// Get returns the submission with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Submission, error)

	// List returns submissions newest first.
	List(ctx context.Context, opts QueryOpts) ([]*Submission, error)

	// Prune deletes all but the N most recent submissions and returns how
	// many were removed. keep = 0 deletes everything.
	Prune(ctx context.Context, keep int) (int64, error)
}
