package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/watchseed/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureDirs_CreatesDirectories verifies all required
// directories are created.
func TestEnsureDirs_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	configDir := filepath.Join(tmpDir, ".config", "watchseed")
	info, err := os.Stat(configDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(),
		"Config directory should exist")

	logDir := filepath.Join(tmpDir, ".local", "share", "watchseed",
		"logs")
	info, err = os.Stat(logDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(),
		"Log directory should exist")
}

// TestEnsureDirs_Idempotent verifies multiple calls work.
func TestEnsureDirs_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	for range 3 {
		err := EnsureDirs(tmpDir)
		require.NoError(t, err)
	}
}

// TestTouchDir_ExistingDirectory verifies existing directory
// is not modified.
func TestTouchDir_ExistingDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	existingDir := filepath.Join(tmpDir, "existing")

	err := os.MkdirAll(existingDir, 0755)
	require.NoError(t, err)

	originalInfo, err := os.Stat(existingDir)
	require.NoError(t, err)

	err = touchDir(existingDir)
	require.NoError(t, err)

	newInfo, err := os.Stat(existingDir)
	require.NoError(t, err)
	assert.True(t, newInfo.IsDir())
	assert.Equal(t, originalInfo.Mode(), newInfo.Mode())
}

// TestEnsureConfigFile_ContentCorrect verifies config file
// content matches embedded template.
func TestEnsureConfigFile_ContentCorrect(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	err = EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, ".config", "watchseed",
		"config.yaml")
	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, ConfigYAML, string(content),
		"Config file content should match embedded template")
}

// TestEnsureConfigFile_Idempotent verifies existing file
// is not overwritten.
func TestEnsureConfigFile_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	err = EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, ".config", "watchseed",
		"config.yaml")

	customContent := "# Custom config\napi:\n  timeout_sec: 3"
	err = os.WriteFile(configPath, []byte(customContent),
		0644)
	require.NoError(t, err)

	err = EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, customContent, string(content),
		"Existing config file should not be overwritten")
}

// TestConfigYAML_Embedded verifies embedded config is
// not empty.
func TestConfigYAML_Embedded(t *testing.T) {
	for _, section := range []string{
		"paths:", "api:", "database:", "storage:", "log:",
	} {
		assert.Contains(t, ConfigYAML, section)
	}
}

func TestWriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "data", "nested", "seed.json")

	err := WriteFile(path, []byte(`{"version":"1.0"}`))
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"version":"1.0"}`, string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	t.Run("overwrites and leaves no temp files", func(t *testing.T) {
		err := WriteFile(path, []byte(`{}`))
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(content))

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestCopySeed(t *testing.T) {
	t.Run("missing seed", func(t *testing.T) {
		tmpDir := t.TempDir()
		_, err := CopySeed(
			filepath.Join(tmpDir, "seed.json"),
			filepath.Join(tmpDir, "public", "seed.json"),
			filepath.Join(tmpDir, "dist", "seed.json"),
		)
		require.Error(t, err)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.SeedNotFoundError, gnErr.Code)
	})

	t.Run("dist missing is skipped", func(t *testing.T) {
		tmpDir := t.TempDir()
		src := filepath.Join(tmpDir, "seed.json")
		require.NoError(t, os.WriteFile(src, []byte("{}"), 0644))
		public := filepath.Join(tmpDir, "app", "public", "seed.json")
		dist := filepath.Join(tmpDir, "app", "dist", "seed.json")

		res, err := CopySeed(src, public, dist)
		require.NoError(t, err)
		assert.Equal(t, []string{public}, res.Copied)
		assert.Equal(t, []string{dist}, res.Skipped)
		assert.True(t, FileExists(public))
		assert.False(t, FileExists(dist))
	})

	t.Run("dist present", func(t *testing.T) {
		tmpDir := t.TempDir()
		src := filepath.Join(tmpDir, "seed.json")
		require.NoError(t, os.WriteFile(src, []byte(`{"a":1}`), 0644))
		public := filepath.Join(tmpDir, "app", "public", "seed.json")
		dist := filepath.Join(tmpDir, "app", "dist", "seed.json")
		require.NoError(t, os.MkdirAll(filepath.Dir(dist), 0755))

		res, err := CopySeed(src, public, dist)
		require.NoError(t, err)
		assert.Equal(t, []string{public, dist}, res.Copied)
		assert.Empty(t, res.Skipped)

		content, err := os.ReadFile(dist)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(content))
	})
}
