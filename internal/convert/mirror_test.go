package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirror(t *testing.T) {
	t.Run("missing source contributes nothing", func(t *testing.T) {
		dir := t.TempDir()
		count, err := Mirror(filepath.Join(dir, "absent"), filepath.Join(dir, "out"))
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("copies tree byte for byte and counts bundles", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "skills")
		require.NoError(t, os.MkdirAll(filepath.Join(src, "pdf", "scripts"), 0o755))
		require.NoError(t, os.MkdirAll(filepath.Join(src, "search"), 0o755))

		skill := []byte("---\nname: pdf\n---\nExtract text from PDFs.\n")
		script := []byte("#!/bin/sh\necho extract\n")
		require.NoError(t, os.WriteFile(filepath.Join(src, "pdf", "SKILL.md"), skill, 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(src, "pdf", "scripts", "run.sh"), script, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(src, "search", "SKILL.md"), []byte("search\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(src, "README.md"), []byte("loose file\n"), 0o644))

		dst := filepath.Join(dir, "out")
		count, err := Mirror(src, dst)
		require.NoError(t, err)

		// Two bundles; the loose file is copied but not counted.
		assert.Equal(t, 2, count)

		got, err := os.ReadFile(filepath.Join(dst, "pdf", "SKILL.md"))
		require.NoError(t, err)
		assert.Equal(t, skill, got)

		got, err = os.ReadFile(filepath.Join(dst, "pdf", "scripts", "run.sh"))
		require.NoError(t, err)
		assert.Equal(t, script, got)

		assert.FileExists(t, filepath.Join(dst, "search", "SKILL.md"))
		assert.FileExists(t, filepath.Join(dst, "README.md"))
	})

	t.Run("empty source creates no output", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "rules")
		require.NoError(t, os.MkdirAll(src, 0o755))

		count, err := Mirror(src, filepath.Join(dir, "out"))
		require.NoError(t, err)
		assert.Zero(t, count)
		assert.NoDirExists(t, filepath.Join(dir, "out"))
	})
}
