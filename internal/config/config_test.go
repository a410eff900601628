package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/plantcheck/internal/scoring"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps Load from picking up a developer's real config.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 70, cfg.Scoring.PassThreshold)
	assert.Equal(t, 2, cfg.Scoring.TrapFailureLimit)
	assert.Equal(t, "auto", cfg.Scoring.Weighting)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Database.Path)

	sc, err := cfg.ScoringConfig()
	require.NoError(t, err)
	assert.Equal(t, scoring.NAExclude, sc.NotApplicableFor(scoring.KindPersonnel))
	assert.Equal(t, scoring.NACorrect, sc.NotApplicableFor(scoring.KindEquipment))
	assert.Equal(t, scoring.NACorrect, sc.NotApplicableFor(scoring.KindOperation))
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	p := writeFile(t, "plantcheck.yaml", `
scoring:
  pass_threshold: 80
  trap_failure_limit: 3
  weighting: question-count
  not_applicable:
    equipment: exclude
database:
  path: /tmp/evals.db
log:
  level: debug
  file: /tmp/plantcheck.log
`)

	cfg, err := Load(p, nil)
	require.NoError(t, err)

	sc, err := cfg.ScoringConfig()
	require.NoError(t, err)
	assert.Equal(t, 80, sc.PassThreshold)
	assert.Equal(t, 3, sc.TrapFailureLimit)
	assert.Equal(t, scoring.WeightQuestionCount, sc.Weighting)
	assert.Equal(t, scoring.NAExclude, sc.NotApplicableFor(scoring.KindEquipment))
	// Untouched kinds keep their defaults.
	assert.Equal(t, scoring.NAExclude, sc.NotApplicableFor(scoring.KindPersonnel))
	assert.Equal(t, scoring.NACorrect, sc.NotApplicableFor(scoring.KindOperation))

	assert.Equal(t, "/tmp/evals.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/plantcheck.log", cfg.Log.File)
}

func TestLoad_DiscoveredInConfigHome(t *testing.T) {
	isolate(t)
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, "plantcheck"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "plantcheck", "plantcheck.yaml"),
		[]byte("scoring:\n  pass_threshold: 75\n"), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 75, cfg.Scoring.PassThreshold)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	p := writeFile(t, "plantcheck.yaml", "scoring:\n  pass_threshold: 80\n")
	t.Setenv("PLANTCHECK_SCORING_PASS_THRESHOLD", "65")
	t.Setenv("PLANTCHECK_SCORING_NOT_APPLICABLE_PERSONNEL", "correct")

	cfg, err := Load(p, nil)
	require.NoError(t, err)
	assert.Equal(t, 65, cfg.Scoring.PassThreshold)

	sc, err := cfg.ScoringConfig()
	require.NoError(t, err)
	assert.Equal(t, scoring.NACorrect, sc.NotApplicableFor(scoring.KindPersonnel))
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PLANTCHECK_LOG_LEVEL", "warn")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("db", "", "")
	fs.String("log-level", "", "")
	require.NoError(t, fs.Parse([]string{"--log-level", "debug", "--db", "/tmp/x.db"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/x.db", cfg.Database.Path)
}

func TestLoad_UnchangedFlagsDoNotOverride(t *testing.T) {
	isolate(t)
	t.Setenv("PLANTCHECK_LOG_LEVEL", "warn")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", "", "")
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	isolate(t)

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "none.yaml"), nil)
		assert.Error(t, err)
	})

	t.Run("bad threshold", func(t *testing.T) {
		p := writeFile(t, "bad.yaml", "scoring:\n  pass_threshold: 150\n")
		_, err := Load(p, nil)
		assert.Error(t, err)
	})

	t.Run("zero threshold", func(t *testing.T) {
		p := writeFile(t, "zero.yaml", "scoring:\n  pass_threshold: 0\n")
		_, err := Load(p, nil)
		assert.ErrorContains(t, err, "out of range 1-100")
	})

	t.Run("unknown kind", func(t *testing.T) {
		p := writeFile(t, "bad.yaml", "scoring:\n  not_applicable:\n    vehicle: correct\n")
		_, err := Load(p, nil)
		assert.ErrorContains(t, err, "unknown evaluation kind")
	})

	t.Run("unknown policy", func(t *testing.T) {
		p := writeFile(t, "bad.yaml", "scoring:\n  not_applicable:\n    equipment: maybe\n")
		_, err := Load(p, nil)
		assert.Error(t, err)
	})

	t.Run("unknown weighting", func(t *testing.T) {
		p := writeFile(t, "bad.yaml", "scoring:\n  weighting: median\n")
		_, err := Load(p, nil)
		assert.Error(t, err)
	})
}
