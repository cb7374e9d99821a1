package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ORG_NAME", "")
	t.Setenv("DEFAULT_POSITION", "")
	t.Setenv("RANKING_TOP_N", "")
	t.Setenv("OUTPUT_DIR", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "MTs. An-Nur Bululawang", cfg.Recap.OrganizationName)
	assert.Equal(t, "Guru", cfg.Recap.DefaultPosition)
	assert.Equal(t, 10, cfg.Recap.RankingTopN)
	assert.Equal(t, ".", cfg.Recap.OutputDir)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ORG_NAME", "SMP Contoh")
	t.Setenv("RANKING_TOP_N", "5")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "SMP Contoh", cfg.Recap.OrganizationName)
	assert.Equal(t, 5, cfg.Recap.RankingTopN)
}

func TestLoad_InvalidTopN(t *testing.T) {
	t.Setenv("RANKING_TOP_N", "banyak")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := Load()

	assert.Error(t, err)
}
