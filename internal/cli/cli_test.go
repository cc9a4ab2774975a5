package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/ropenv/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestNumberCommand_Default(t *testing.T) {
	out, err := execute(t, "number", "--a", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "ok    number: 41\n")
	assert.Contains(t, out, "scale: 36")
}

func TestNumberCommand_InvalidInput(t *testing.T) {
	out, err := execute(t, "number", "--a", "abc", "--steps=false")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "invalid input")
	assert.Contains(t, out, "error number:")
}

func TestBankCommand_Standard(t *testing.T) {
	out, err := execute(t, "bank", "--initial-balance", "10000", "--deposit", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "ok    bank: 10027.375\n")
}

func TestBankCommand_UnknownPreset(t *testing.T) {
	_, err := execute(t, "bank", "--preset", "gold")
	assert.Error(t, err)
}

func TestDemoCommand(t *testing.T) {
	out, err := execute(t, "demo", "--workers", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "ok    KB/standard/SAVINGS: 10027.375\n")
	assert.Contains(t, out, "ok    a=5/default: 41\n")
	assert.Contains(t, out, "ok    a=10/aggressive: 130\n")
	assert.Contains(t, out, "ok    a=3/conservative: 18\n")
}

func TestDemoCommand_FailingCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	content := `
number:
  cases:
    - preset: default
      env:
        a: "5"
    - preset: default
      env:
        a: "abc"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := execute(t, "--config", path, "demo")
	require.Error(t, err)
	assert.Contains(t, out, "ok    a=5/default: 41\n")
	assert.Contains(t, out, "error a=abc/default:")
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	require.NoError(t, err)

	var got struct {
		Bank   config.BankConfig   `yaml:"bank"`
		Number config.NumberConfig `yaml:"number"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, config.Default().Bank.Presets, got.Bank.Presets)
	assert.Equal(t, config.Default().Number.Presets, got.Number.Presets)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "ropenv dev\n", out)
}
