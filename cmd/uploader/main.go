package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/xavierca1/clinic-outreach/internal/config"
	"github.com/xavierca1/clinic-outreach/internal/infra/integration/instantly"
	"github.com/xavierca1/clinic-outreach/internal/usecase"
)

// Uso: uploader <leads.json> <nome da campanha>
// Ex.: uploader .tmp/all_wa_leads_enriched.json "WA Integrative Medicine"
func main() {
	godotenv.Load()

	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: uploader <leads_json_file> <campaign_name>")
		fmt.Fprintln(os.Stderr, "\nExample:")
		fmt.Fprintln(os.Stderr, "  uploader .tmp/all_wa_leads_enriched.json 'WA Integrative Medicine'")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	client, err := instantly.NewClient(cfg.InstantlyAPIKey, cfg.InstantlyURL)
	if err != nil {
		log.Fatal(err)
	}

	uc := usecase.NewUploadLeadsUseCase(client)
	out, err := uc.Execute(context.Background(), os.Args[1], os.Args[2])
	if err != nil {
		log.Fatalf("❌ Upload abortado: %v", err)
	}

	log.Printf("✅ Resultado: %d/%d enviados (%s) — run %s", out.Uploaded, out.Eligible, out.SuccessRate, out.RunID)
}
