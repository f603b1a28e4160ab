// SPDX-License-Identifier: MIT
package config_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/qsim/circuit"
	"github.com/katalvlaran/qsim/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"QSIM_SEED", "QSIM_MAX_QUBITS", "QSIM_LOG_LEVEL", "QSIM_LOG_PRETTY"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, &config.Config{
		MaxQubits: circuit.DefaultMaxQubits,
		LogLevel:  "info",
	}, cfg)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("QSIM_SEED", "42")
	t.Setenv("QSIM_MAX_QUBITS", "10")
	t.Setenv("QSIM_LOG_LEVEL", "debug")
	t.Setenv("QSIM_LOG_PRETTY", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.Seeded)
	assert.Equal(t, 10, cfg.MaxQubits)
	assert.True(t, cfg.Pretty)
	assert.Equal(t, zerolog.DebugLevel, cfg.Logger(&bytes.Buffer{}).GetLevel())
}

func TestLoad_Invalid(t *testing.T) {
	for _, tc := range []struct {
		key, value string
	}{
		{"QSIM_SEED", "-1"},
		{"QSIM_SEED", "seven"},
		{"QSIM_MAX_QUBITS", "11"},
		{"QSIM_MAX_QUBITS", "0"},
		{"QSIM_LOG_LEVEL", "verbose"},
	} {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			cfg, err := config.Load()
			require.ErrorIs(t, err, config.ErrInvalidValue)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_UnparsableIntFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("QSIM_MAX_QUBITS", "lots")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, circuit.DefaultMaxQubits, cfg.MaxQubits)
}

func TestOptions_DriveInterpreter(t *testing.T) {
	cfg := &config.Config{Seed: 9, Seeded: true, MaxQubits: 2, LogLevel: "debug"}
	var buf bytes.Buffer
	in := circuit.New(cfg.Options(cfg.Logger(&buf))...)

	_, err := in.Execute("INITIALIZE R 3\n")
	require.ErrorIs(t, err, circuit.ErrOutOfBounds)

	// same seed, same outcomes
	src := "INITIALIZE R 2\nU TENSOR H H\nAPPLY U R\nMEASURE R\n"
	a := circuit.New(cfg.Options(zerolog.Nop())...)
	b := circuit.New(cfg.Options(zerolog.Nop())...)
	for i := 0; i < 10; i++ {
		ra, err := a.Execute(src)
		require.NoError(t, err)
		rb, err := b.Execute(src)
		require.NoError(t, err)
		assert.Equal(t, ra.Values(), rb.Values())
	}

	assert.Contains(t, buf.String(), `"level":"debug"`)
}
