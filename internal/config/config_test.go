package config

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Format:   FormatTable,
		MaxSpace: 1_000_000,
		Span:     4,
		Strings:  4,
		Size:     6,
		Length:   2,
	}, cfg)
}

func TestLoad_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variations.toml")
	require.NoError(t, os.WriteFile(path, []byte("format = \"yaml\"\nspan = 5\nstrings = 3\nmax_space = 500\n"), 0o600))
	t.Setenv("VARIATIONS_STRINGS", "2")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("span", 4, "")
	flags.Int64("max-space", 1_000_000, "")
	require.NoError(t, flags.Parse([]string{"--span", "3"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Format, "file over default")
	assert.Equal(t, 2, cfg.Strings, "env over file")
	assert.Equal(t, 3, cfg.Span, "flag over file")
	assert.Equal(t, int64(500), cfg.MaxSpace, "unchanged flag does not mask the file")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Format: "xml", MaxSpace: 1}
	err := cfg.Validate()
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))

	cfg = &Config{Format: FormatTable, Limit: -1, MaxSpace: 1}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Format: FormatTable}
	assert.Error(t, cfg.Validate())
}

func TestCheckSpace(t *testing.T) {
	cfg := &Config{MaxSpace: 100}
	assert.NoError(t, cfg.CheckSpace(big.NewInt(100)))

	err := cfg.CheckSpace(big.NewInt(101))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds max_space 100")
	assert.NotEmpty(t, errors.GetAllHints(err))
}
