package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	config, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, int64(0), config.TimeQuantum)
	assert.Equal(t, DefaultAlgorithms, config.Algorithms)
	assert.Empty(t, config.Args)
	assert.True(t, config.NeedsQuantum())
}

func TestLoadFlags(t *testing.T) {
	chdir(t, t.TempDir())

	config, err := Load([]string{"-q", "4", "--algorithms", "FCFS,rr", "processes.csv"})
	require.NoError(t, err)

	assert.Equal(t, int64(4), config.TimeQuantum)
	assert.Equal(t, []string{FCFS, RoundRobin}, config.Algorithms)
	assert.Equal(t, []string{"processes.csv"}, config.Args)
	assert.False(t, config.NeedsQuantum())
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	yaml := "scheduler:\n  round_robin:\n    time_quantum: 3\n  algorithms: [sjf, rr]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	config, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), config.TimeQuantum)
	assert.Equal(t, []string{SJF, RoundRobin}, config.Algorithms)

	config, err = Load([]string{"--quantum=7"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), config.TimeQuantum)
}

func TestLoadExplicitConfigFileMissing(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load([]string{"--config", "nope.yaml"})
	assert.Error(t, err)
}

func TestLoadUnknownAlgorithm(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load([]string{"-a", "priority,lottery"})
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestNeedsQuantumWithoutRoundRobin(t *testing.T) {
	config := &SchedulerConfig{Algorithms: []string{Priority, SJF}}
	assert.False(t, config.NeedsQuantum())
}
