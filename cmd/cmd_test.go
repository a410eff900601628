package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/plantcheck/internal/store"
)

const (
	bankFile    = "../internal/questionbank/testdata/operador.json"
	answersFile = "../internal/questionbank/testdata/operador_respuestas.json"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default between executions, since
// cobra commands are package-level singletons.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("PLANTCHECK_DB", "")
	t.Setenv("PLANTCHECK_DATABASE_PATH", "")
	return filepath.Join(dir, "test.db")
}

func TestScoreJSON(t *testing.T) {
	db := isolate(t)

	out, err := run(t, "score", "--bank", bankFile, "--answers", answersFile, "--json", "--db", db)
	require.NoError(t, err)

	var sub store.Submission
	require.NoError(t, json.Unmarshal([]byte(out), &sub))
	assert.Empty(t, sub.ID, "unsaved submissions have no ID")
	assert.Equal(t, "operador", sub.Role)
	assert.Equal(t, 100, sub.Result.OverallScore)
	assert.Equal(t, 1, sub.Result.TotalWrongTraps)
	assert.True(t, sub.Result.Passed)
	assert.Len(t, sub.Result.Skipped, 1)
}

func TestScoreSaveThenShowAndHistory(t *testing.T) {
	db := isolate(t)

	out, err := run(t, "score", "--bank", bankFile, "--answers", answersFile, "--json", "--save", "--db", db)
	require.NoError(t, err)

	var saved store.Submission
	require.NoError(t, json.Unmarshal([]byte(out), &saved))
	require.NotEmpty(t, saved.ID)
	assert.Equal(t, int64(1), saved.Sequence)

	out, err = run(t, "show", saved.ID, "--json", "--db", db)
	require.NoError(t, err)
	var shown store.Submission
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, saved.ID, shown.ID)
	assert.Equal(t, saved.Result.OverallScore, shown.Result.OverallScore)
	assert.Equal(t, saved.Answers, shown.Answers)

	out, err = run(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, saved.ID)
	assert.Contains(t, out, "operador")

	out, err = run(t, "history", "--kind", "equipo", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No evaluations found.")
}

func TestScoreText(t *testing.T) {
	db := isolate(t)

	out, err := run(t, "score", "--bank", bankFile, "--answers", answersFile, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "PASSED")
	assert.Contains(t, out, "Seguridad")
}

func TestScoreLive(t *testing.T) {
	db := isolate(t)

	out, err := run(t, "score", "--bank", bankFile, "--answers", answersFile, "--live", "--db", db)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Answered "))
	assert.Contains(t, out, "Dosificación")
}

func TestScoreMissingBank(t *testing.T) {
	db := isolate(t)

	_, err := run(t, "score", "--bank", "does-not-exist.json", "--answers", answersFile, "--db", db)
	assert.Error(t, err)
}

func TestShowNotFound(t *testing.T) {
	db := isolate(t)

	_, err := run(t, "show", "nope", "--db", db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no evaluation with ID nope")
}

func TestHistoryUnknownKind(t *testing.T) {
	db := isolate(t)

	_, err := run(t, "history", "--kind", "tractor", "--db", db)
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	db := isolate(t)

	for i := 0; i < 3; i++ {
		_, err := run(t, "score", "--bank", bankFile, "--answers", answersFile, "--save", "--json", "--db", db)
		require.NoError(t, err)
	}

	_, err := run(t, "reset", "--db", db)
	require.Error(t, err, "reset without --yes must refuse")

	out, err := run(t, "reset", "--keep", "1", "--yes", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 2 evaluation(s).")

	out, err = run(t, "reset", "--yes", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 1 evaluation(s).")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "plantcheck "+version+"\n", out)
}
