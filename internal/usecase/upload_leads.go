package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/xavierca1/clinic-outreach/internal/entity"
)

// UploadLeadsUseCase manda os leads do scraper para o Instantly, um por um
// (a v2 não tem batch). Falha de arquivo ou de resolução de campanha aborta
// tudo; falha num lead individual só conta e segue.
type UploadLeadsUseCase struct {
	API UploaderAPI
}

func NewUploadLeadsUseCase(api UploaderAPI) *UploadLeadsUseCase {
	return &UploadLeadsUseCase{API: api}
}

type UploadLeadsOutput struct {
	RunID        string `json:"run_id"`
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	TotalRecords int    `json:"total_records"`
	Eligible     int    `json:"eligible"`
	Uploaded     int    `json:"uploaded"`
	Failed       int    `json:"failed"`
	SuccessRate  string `json:"success_rate"`
}

func (uc *UploadLeadsUseCase) Execute(ctx context.Context, jsonPath, campaignName string) (*UploadLeadsOutput, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler %s: %w", jsonPath, err)
	}

	var places []entity.Place
	if err := json.Unmarshal(data, &places); err != nil {
		return nil, fmt.Errorf("erro ao decodificar %s: %w", jsonPath, err)
	}

	var eligible []entity.Place
	for _, p := range places {
		if p.PrimaryEmail != "" {
			eligible = append(eligible, p)
		}
	}

	runID := uuid.New().String()
	log.Printf("📧 Upload %s: %d registros no arquivo, %d com email", runID, len(places), len(eligible))

	out := &UploadLeadsOutput{
		RunID:        runID,
		CampaignName: campaignName,
		TotalRecords: len(places),
		Eligible:     len(eligible),
		SuccessRate:  "0.0%",
	}

	if len(eligible) == 0 {
		log.Printf("❌ Nenhum lead com email — nada a fazer")
		return out, nil
	}

	campaign, err := uc.resolveCampaign(ctx, campaignName)
	if err != nil {
		return nil, err
	}
	out.CampaignID = campaign.ID

	failed := 0
	for i, place := range eligible {
		payload := FormatLead(place)
		payload.CampaignID = campaign.ID

		if err := uc.API.AddLead(ctx, payload); err != nil {
			failed++
			// Só os 3 primeiros erros no log, o resto vira ruído
			if failed <= 3 {
				log.Printf("❌ Falha no lead %d (%s): %v", i+1, payload.Email, err)
			}
			continue
		}

		out.Uploaded++
		if (i+1)%10 == 0 {
			log.Printf("📤 Enviados %d/%d leads...", i+1, len(eligible))
		}
	}

	out.Failed = failed
	out.SuccessRate = fmt.Sprintf("%.1f%%", float64(out.Uploaded)/float64(len(eligible))*100)

	log.Printf("✅ Upload %s completo: %d/%d (%s) na campanha %s (%s)",
		runID, out.Uploaded, len(eligible), out.SuccessRate, campaignName, campaign.ID)
	return out, nil
}

// resolveCampaign acha a campanha por nome exato ou cria uma nova com o
// schedule padrão. Erro aqui é fatal para o upload inteiro.
func (uc *UploadLeadsUseCase) resolveCampaign(ctx context.Context, name string) (*entity.Campaign, error) {
	campaigns, err := uc.API.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar campanhas: %w", err)
	}

	for _, c := range campaigns {
		if c.Name == name {
			log.Printf("✅ Usando campanha existente: %s (%s)", name, c.ID)
			campaign := c
			return &campaign, nil
		}
	}

	log.Printf("📝 Criando campanha nova: %s", name)
	campaign, err := uc.API.CreateCampaign(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar campanha %q: %w", name, err)
	}
	return campaign, nil
}
