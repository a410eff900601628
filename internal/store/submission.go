package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/plantcheck/ent"
	"github.com/abhisek/plantcheck/ent/predicate"
	"github.com/abhisek/plantcheck/ent/submission"
	"github.com/abhisek/plantcheck/internal/scoring"
)

// submissionRepo implements SubmissionRepo using ent.
type submissionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *submissionRepo) Save(ctx context.Context, sub *Submission) error {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}
	sub.CreatedAt = sub.CreatedAt.UTC()

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.Submission.Create().
		SetID(sub.ID).
		SetSequence(seqNum).
		SetCreatedAt(sub.CreatedAt).
		SetKind(string(sub.Kind)).
		SetRole(sub.Role).
		SetOverallScore(sub.Result.OverallScore).
		SetPassed(sub.Result.Passed).
		SetStatus(string(sub.Result.Status)).
		SetResult(sub.Result)

	if len(sub.Answers) > 0 {
		builder = builder.SetAnswers(sub.Answers)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save submission: %w", err)
	}
	sub.Sequence = seqNum
	return nil
}

func (r *submissionRepo) Get(ctx context.Context, id string) (*Submission, error) {
	row, err := r.client.Submission.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query submission %s: %w", id, err)
	}
	return entToSubmission(row), nil
}

func (r *submissionRepo) List(ctx context.Context, opts QueryOpts) ([]*Submission, error) {
	var preds []predicate.Submission
	if opts.Kind != "" {
		preds = append(preds, submission.Kind(string(opts.Kind)))
	}
	if !opts.From.IsZero() {
		preds = append(preds, submission.CreatedAtGTE(opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, submission.CreatedAtLTE(opts.To.UTC()))
	}

	q := r.client.Submission.Query().
		Where(preds...).
		Order(ent.Desc(submission.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	out := make([]*Submission, len(rows))
	for i, row := range rows {
		out[i] = entToSubmission(row)
	}
	return out, nil
}

func (r *submissionRepo) Prune(ctx context.Context, keep int) (int64, error) {
	del := r.client.Submission.Delete()
	if keep > 0 {
		kept, err := r.client.Submission.Query().
			Order(ent.Desc(submission.FieldSequence)).
			Limit(keep).
			IDs(ctx)
		if err != nil {
			return 0, fmt.Errorf("select kept submissions: %w", err)
		}
		del = del.Where(submission.IDNotIn(kept...))
	}

	n, err := del.Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("prune submissions: %w", err)
	}
	return int64(n), nil
}

func entToSubmission(row *ent.Submission) *Submission {
	return &Submission{
		ID:        row.ID,
		Sequence:  row.Sequence,
		CreatedAt: row.CreatedAt.UTC(),
		Kind:      scoring.EvaluationKind(row.Kind),
		Role:      row.Role,
		Result:    row.Result,
		Answers:   row.Answers,
	}
}
