package application

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-revsent/internal/ports"
)

func TestDefaultRunConfig(t *testing.T) {
	cfg := DefaultRunConfig()

	assert.Equal(t, ModeCompare, cfg.Mode)
	assert.Equal(t, "app_store_music_reviews.csv", cfg.InputPath)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, "cleanSentiment.csv", cfg.Resources.LexiconPath)
	assert.Equal(t, "positiveAdjectives.txt", cfg.Resources.PositiveAdjectivesPath)
	assert.Equal(t, "negativeAdjectives.txt", cfg.Resources.NegativeAdjectivesPath)
	assert.Equal(t, "Spotify", cfg.Groups.First)
	assert.Equal(t, "Apple Music", cfg.Groups.Second)
	assert.NoError(t, cfg.Validate())
}

// TestLoadRunConfig tests YAML decoding on top of the defaults together
// with struct and semantic validation.
func TestLoadRunConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
		verify  func(t *testing.T, cfg RunConfig)
	}{
		{
			name: "empty document yields defaults",
			yaml: "",
			verify: func(t *testing.T, cfg RunConfig) {
				assert.Equal(t, DefaultRunConfig(), cfg)
			},
		},
		{
			name: "partial override keeps other defaults",
			yaml: `
mode: lines
input: reviews.txt
groups:
  second: YouTube Music
`,
			verify: func(t *testing.T, cfg RunConfig) {
				assert.Equal(t, ModeLines, cfg.Mode)
				assert.Equal(t, "reviews.txt", cfg.InputPath)
				assert.Equal(t, "Spotify", cfg.Groups.First)
				assert.Equal(t, "YouTube Music", cfg.Groups.Second)
				assert.Equal(t, DefaultLexiconPath, cfg.Resources.LexiconPath)
			},
		},
		{
			name: "full config",
			yaml: `
mode: template
input: template.txt
format: json
log_level: debug
resources:
  lexicon: data/lexicon.csv
  positive_adjectives: data/pos.txt
  negative_adjectives: data/neg.txt
template:
  tone: negative
  seed: 42
metrics:
  textfile: out/revsent.prom
`,
			verify: func(t *testing.T, cfg RunConfig) {
				assert.Equal(t, ModeTemplate, cfg.Mode)
				assert.Equal(t, FormatJSON, cfg.Format)
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "data/lexicon.csv", cfg.Resources.LexiconPath)
				assert.Equal(t, "negative", cfg.Template.Tone)
				require.NotNil(t, cfg.Template.Seed)
				assert.Equal(t, uint64(42), *cfg.Template.Seed)
				assert.Equal(t, "out/revsent.prom", cfg.Metrics.TextfilePath)
			},
		},
		{
			name:    "unknown field rejected",
			yaml:    "mood: happy\n",
			wantErr: "YAML decode failed",
		},
		{
			name:    "invalid mode",
			yaml:    "mode: stream\n",
			wantErr: "struct validation failed",
		},
		{
			name:    "invalid format",
			yaml:    "format: xml\n",
			wantErr: "struct validation failed",
		},
		{
			name:    "blank input",
			yaml:    "input: '   '\n",
			wantErr: "nonblank",
		},
		{
			name:    "invalid tone",
			yaml:    "template:\n  tone: sarcastic\n",
			wantErr: "struct validation failed",
		},
		{
			name:    "groups equal ignoring case",
			yaml:    "groups:\n  first: Spotify\n  second: SPOTIFY\n",
			wantErr: "distinctgroup",
		},
		{
			name:    "blank group",
			yaml:    "groups:\n  second: '  '\n",
			wantErr: "nonblank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadRunConfig(strings.NewReader(tt.yaml))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadRunConfig_ValidationErrorsAreInspectable(t *testing.T) {
	_, err := LoadRunConfig(strings.NewReader("mode: nope\n"))
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "Mode", verrs[0].Field())
	assert.Equal(t, "oneof", verrs[0].Tag())
}

func TestLoadRunConfigFile(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.yaml")
		require.NoError(t, os.WriteFile(path, []byte("mode: file\ninput: review.txt\n"), 0o600))

		cfg, err := LoadRunConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, ModeFile, cfg.Mode)
		assert.Equal(t, "review.txt", cfg.InputPath)
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.yaml")
		_, err := LoadRunConfigFile(path)

		var cerr *ports.ConfigError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, path, cerr.ConfigKey)
		assert.ErrorIs(t, err, ports.ErrConfigNotFound)
	})

	t.Run("invalid contents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("format: pdf\n"), 0o600))

		_, err := LoadRunConfigFile(path)
		var cerr *ports.ConfigError
		require.ErrorAs(t, err, &cerr)
	})
}
