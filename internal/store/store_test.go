package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/plantcheck/ent/submission"
	"github.com/abhisek/plantcheck/internal/questionbank"
	"github.com/abhisek/plantcheck/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleSubmission(kind scoring.EvaluationKind, score int) *Submission {
	return &Submission{
		Kind: kind,
		Role: "operador",
		Result: scoring.EvaluationResult{
			Kind:         kind,
			OverallScore: score,
			Passed:       score >= 70,
			SectionScores: []scoring.SectionScore{
				{Name: "Seguridad", Percentage: float64(score), CorrectCount: 1, TotalCount: 1, Weight: 100},
			},
		},
		Answers: []questionbank.AnswerEntry{
			{Rol: "operador", Seccion: 0, Pregunta: 0, Respuesta: "yes"},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSubmissionSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubmissionRepo()
	ctx := context.Background()

	sub := sampleSubmission(scoring.KindPersonnel, 85)
	require.NoError(t, repo.Save(ctx, sub))

	assert.NotEmpty(t, sub.ID)
	assert.False(t, sub.CreatedAt.IsZero())
	assert.Equal(t, int64(1), sub.Sequence)

	got, err := repo.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, got.ID)
	assert.Equal(t, scoring.KindPersonnel, got.Kind)
	assert.Equal(t, 85, got.Result.OverallScore)
	assert.True(t, got.Result.Passed)
	assert.Equal(t, sub.Answers, got.Answers)
	assert.True(t, sub.CreatedAt.Equal(got.CreatedAt))
}

func TestSubmissionGetNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.SubmissionRepo().Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSubmissionKeepsGivenID(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubmissionRepo()
	ctx := context.Background()

	sub := sampleSubmission(scoring.KindEquipment, 50)
	sub.ID = "fixed-id"
	require.NoError(t, repo.Save(ctx, sub))

	got, err := repo.Get(ctx, "fixed-id")
	require.NoError(t, err)
	assert.Equal(t, 50, got.Result.OverallScore)

	// Same ID twice violates the primary key.
	dup := sampleSubmission(scoring.KindEquipment, 60)
	dup.ID = "fixed-id"
	assert.Error(t, repo.Save(ctx, dup))
}

func TestSubmissionRejectsEmptyKind(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sub := sampleSubmission("", 50)
	err := s.SubmissionRepo().Save(ctx, sub)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kind")

	subs, err := s.SubmissionRepo().List(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestSubmissionWithoutAnswers(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubmissionRepo()
	ctx := context.Background()

	sub := sampleSubmission(scoring.KindOperation, 90)
	sub.Answers = nil
	sub.Result.Passed = false
	sub.Result.Status = scoring.StatusExcellent
	require.NoError(t, repo.Save(ctx, sub))

	got, err := repo.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Answers)
	assert.Equal(t, scoring.StatusExcellent, got.Result.Status)

	n, err := s.Client().Submission.Query().Where(submission.Status(string(scoring.StatusExcellent))).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSubmissionListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubmissionRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Save(ctx, sampleSubmission(scoring.KindPersonnel, 50+i)))
	}

	subs, err := repo.List(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, 52, subs[0].Result.OverallScore)
	assert.Equal(t, 50, subs[2].Result.OverallScore)

	limited, err := repo.List(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSubmissionListFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubmissionRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	kinds := []scoring.EvaluationKind{scoring.KindPersonnel, scoring.KindEquipment, scoring.KindOperation, scoring.KindEquipment}
	for i, k := range kinds {
		sub := sampleSubmission(k, 70)
		sub.CreatedAt = base.Add(time.Duration(i) * 24 * time.Hour)
		require.NoError(t, repo.Save(ctx, sub))
	}

	equipment, err := repo.List(ctx, QueryOpts{Kind: scoring.KindEquipment})
	require.NoError(t, err)
	assert.Len(t, equipment, 2)

	window, err := repo.List(ctx, QueryOpts{
		From: base.Add(24 * time.Hour),
		To:   base.Add(2 * 24 * time.Hour),
	})
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, scoring.KindOperation, window[0].Kind)
	assert.Equal(t, scoring.KindEquipment, window[1].Kind)
}

func TestSubmissionPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubmissionRepo()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Save(ctx, sampleSubmission(scoring.KindPersonnel, i)))
	}

	removed, err := repo.Prune(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	subs, err := repo.List(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, subs, 5)
	assert.Equal(t, 6, subs[0].Result.OverallScore)

	// Fewer than keep is a no-op.
	removed, err = repo.Prune(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)

	removed, err = repo.Prune(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), removed)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.seq.Next(ctx)
	require.NoError(t, err)
	second, err := s.seq.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, first+1, second)
}

func TestSequenceCounterConcurrent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	const n = 20
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[int64]bool)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := s.seq.Next(ctx)
			if err != nil {
				t.Errorf("next: %v", err)
				return
			}
			mu.Lock()
			seen[v] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, n)
}

func TestSequenceSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.SubmissionRepo().Save(ctx, sampleSubmission(scoring.KindPersonnel, 10)))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	sub := sampleSubmission(scoring.KindPersonnel, 20)
	require.NoError(t, s2.SubmissionRepo().Save(ctx, sub))
	assert.Equal(t, int64(2), sub.Sequence)
}

func TestDefaultDBPath(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "sub", "x.db")
		t.Setenv("PLANTCHECK_DB", p)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, p, got)
		assert.DirExists(t, filepath.Dir(p))
	})

	t.Run("xdg data home", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("PLANTCHECK_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "plantcheck", "plantcheck.db"), got)
	})
}
