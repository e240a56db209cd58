package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/clinic-outreach/internal/config"
)

// TestLoadDefaults - defaults de desenvolvimento quando o ambiente está vazio
func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "https://api.instantly.ai/api/v2", cfg.InstantlyURL)
	assert.Equal(t, 5001, cfg.Port)
	assert.Equal(t, "admin", cfg.DashboardUser)
	assert.Equal(t, "WA Integrative Medicine", cfg.CampaignName)
}

// TestLoadFromEnvironment
func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("INSTANTLY_API_KEY", "key-123")
	t.Setenv("PORT", "8080")
	t.Setenv("LEADS_FILE", "/data/custom.json")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "key-123", cfg.InstantlyAPIKey)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, []string{"/data/custom.json"}, cfg.EnrichmentPaths())
}

// TestEnrichmentPathsFallbackOrder - sem LEADS_FILE tenta os caminhos do scraper
func TestEnrichmentPathsFallbackOrder(t *testing.T) {
	var cfg config.Config

	paths := cfg.EnrichmentPaths()

	assert.Len(t, paths, 3)
	assert.Equal(t, ".tmp/all_wa_leads_enriched.json", paths[0])
}
