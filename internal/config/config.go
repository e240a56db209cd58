package config

import (
	"github.com/caarlos0/env/v11"
)

// Config centraliza tudo que vem do ambiente. Os defaults são só para
// desenvolvimento local (o README manda trocar em produção).
type Config struct {
	// Credencial do Instantly. Sem default de propósito: sem ela o client
	// nem sobe.
	InstantlyAPIKey string `env:"INSTANTLY_API_KEY"`
	InstantlyURL    string `env:"INSTANTLY_URL" envDefault:"https://api.instantly.ai/api/v2"`

	// A campanha é uma só, fixa, criada manualmente no Instantly.
	CampaignID   string `env:"CAMPAIGN_ID" envDefault:"bfe30fd9-3417-410f-800b-7b8e7151a965"`
	CampaignName string `env:"CAMPAIGN_NAME" envDefault:"WA Integrative Medicine"`

	DashboardUser string `env:"DASHBOARD_USERNAME" envDefault:"admin"`
	DashboardPass string `env:"DASHBOARD_PASSWORD" envDefault:"changeme"`

	Port int `env:"PORT" envDefault:"5001"`

	// Caminho explícito do JSON de enriquecimento. Vazio = tenta os
	// caminhos padrão do scraper.
	LeadsFile string `env:"LEADS_FILE"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// EnrichmentPaths devolve os candidatos na ordem em que devem ser tentados.
// Os dois últimos são onde o scraper do Google Maps costuma deixar o arquivo.
func (c Config) EnrichmentPaths() []string {
	if c.LeadsFile != "" {
		return []string{c.LeadsFile}
	}
	return []string{
		".tmp/all_wa_leads_enriched.json",
		"data/all_wa_leads_enriched.json",
		"all_wa_leads_enriched.json",
	}
}
