package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// chdirTemp moves the test into a fresh directory, where init writes its file.
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return dir
}

type writtenConfig struct {
	Version int    `yaml:"version"`
	Output  string `yaml:"output"`
	NoCache bool   `yaml:"no-cache"`
	Solve   struct {
		Parallel int `yaml:"parallel"`
	} `yaml:"solve"`
	Cache struct {
		TTLSeconds int `yaml:"ttl_seconds"`
	} `yaml:"cache"`
	Log struct {
		MaxSize    int  `yaml:"max_size"`
		MaxBackups int  `yaml:"max_backups"`
		Compress   bool `yaml:"compress"`
	} `yaml:"log"`
}

func TestInitCmd_WritesDefaults(t *testing.T) {
	dir := chdirTemp(t)

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	// A fresh solve command rebinds solve.parallel to an untouched flag.
	cmd.AddCommand(newInitCmd(), newSolveCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Wrote "+configFileName)
	assert.Contains(t, out.String(), defaultReportsDir)

	contents, err := os.ReadFile(filepath.Join(dir, configFileName))
	require.NoError(t, err)

	var cfg writtenConfig
	require.NoError(t, yaml.Unmarshal(contents, &cfg))

	assert.Equal(t, currentConfigVersion, cfg.Version)
	assert.Equal(t, ".advent-reports", cfg.Output)
	assert.False(t, cfg.NoCache)
	assert.Equal(t, 1, cfg.Solve.Parallel)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
	assert.Equal(t, defaultLogMaxSize, cfg.Log.MaxSize)
	assert.Equal(t, defaultLogMaxBackups, cfg.Log.MaxBackups)
	assert.True(t, cfg.Log.Compress)
}

func TestInitCmd_KeepsExistingFile(t *testing.T) {
	dir := chdirTemp(t)

	targetPath := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("solve:\n  parallel: 8\n"), 0o644))

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})

	require.Error(t, cmd.Execute())

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "solve:\n  parallel: 8\n", string(contents), "an existing config is left untouched")
}
