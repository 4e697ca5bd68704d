package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	// Empty project dir: no config file, defaults apply.
	Init(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultSmallModel, cfg.SmallModel)
	assert.Equal(t, DefaultSchema, cfg.Schema)
	assert.Equal(t, DefaultInstructions, cfg.Instructions)
}

func TestLoadProjectOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := t.TempDir()
	content := "model: opencode/custom-main\nsmall_model: opencode/custom-fast\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, AppName+".yaml"), []byte(content), 0o644))

	Init(root)
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "opencode/custom-main", cfg.Model)
	assert.Equal(t, "opencode/custom-fast", cfg.SmallModel)
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultSchema, cfg.Schema)
}

func TestLoadInvalidFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, AppName+".yaml"), []byte(":\tnot yaml"), 0o644))

	Init(root)
	_, err := Load()
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultSmallModel, cfg.SmallModel)
	assert.Equal(t, DefaultSchema, cfg.Schema)
	assert.Equal(t, DefaultInstructions, cfg.Instructions)

	// Mutating the copy must not leak into the package defaults.
	cfg.Instructions[0] = "changed"
	assert.Equal(t, ".opencode/rules/**/*.md", DefaultInstructions[0])
}
