package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/xavierca1/clinic-outreach/internal/entity"
)

// Filtros aceitos pela listagem de leads
const (
	FilterClinics = "clinics"
	FilterAll     = "all"
	FilterOther   = "other"
)

// DashboardUseCase é o facade de controle da campanha: todo o estado mora no
// Instantly, aqui só compomos leitura (drain + classifica + pagina) e as
// duas mutações best-effort. Cada request re-drena a base inteira — sem
// cache, aceitável porque o volume é pequeno.
type DashboardUseCase struct {
	API        CampaignAPI
	Status     []CampaignStatusSetter
	Enrichment EnrichmentLookup

	CampaignID string
	// Nome usado no fallback quando o GET da campanha falha
	CampaignName string
	Keywords     []string
}

func NewDashboardUseCase(
	api CampaignAPI,
	status []CampaignStatusSetter,
	enrichment EnrichmentLookup,
	campaignID, campaignName string,
	keywords []string,
) *DashboardUseCase {
	if len(keywords) == 0 {
		keywords = DefaultClinicKeywords
	}
	return &DashboardUseCase{
		API:          api,
		Status:       status,
		Enrichment:   enrichment,
		CampaignID:   campaignID,
		CampaignName: campaignName,
		Keywords:     keywords,
	}
}

// Stats monta o resumo da campanha. Falha no GET da campanha é engolida de
// propósito (fallback com os valores conhecidos) — o drain dos leads é o que
// interessa e ele já é best-effort por conta própria.
func (uc *DashboardUseCase) Stats(ctx context.Context) *StatsOutput {
	campaign, err := uc.API.GetCampaign(ctx, uc.CampaignID)
	if err != nil {
		log.Printf("⚠️ Não consegui ler a campanha %s, usando fallback: %v", uc.CampaignID, err)
		campaign = &entity.Campaign{
			Name:       uc.CampaignName,
			Status:     entity.CampaignStatusPaused,
			DailyLimit: 50,
		}
	}

	all := DrainLeads(ctx, uc.API, uc.CampaignID)
	clinic := FilterClinicLeads(uc.Keywords, all)

	active, pending := 0, 0
	for _, lead := range clinic {
		switch lead.Status {
		case entity.LeadStatusActive:
			active++
		case entity.LeadStatusPending:
			pending++
		}
	}

	return &StatsOutput{
		Campaign: CampaignInfo{
			Name:       campaign.Name,
			ID:         uc.CampaignID,
			Status:     campaign.StatusLabel(),
			DailyLimit: campaign.DailyLimit,
		},
		Stats: LeadCounts{
			TotalLeads:   len(all),
			ClinicLeads:  len(clinic),
			OtherLeads:   len(all) - len(clinic),
			ActiveLeads:  active,
			PendingLeads: pending,
		},
	}
}

// LeadsPage drena tudo, escolhe a visão (clinics/all/other) e devolve uma
// página de exibição.
func (uc *DashboardUseCase) LeadsPage(ctx context.Context, page, perPage int, filter string) *LeadsPageOutput {
	all := DrainLeads(ctx, uc.API, uc.CampaignID)

	var view []entity.Lead
	switch filter {
	case FilterAll:
		view = all
	case FilterOther:
		view = OtherLeads(all, FilterClinicLeads(uc.Keywords, all))
	default:
		view = FilterClinicLeads(uc.Keywords, all)
	}

	pageLeads, pagination := PaginateLeads(view, page, perPage)

	leads := make([]LeadView, 0, len(pageLeads))
	for _, lead := range pageLeads {
		email := lead.Email
		if email == "" {
			email = entity.SentinelEmail
		}
		company := lead.CompanyName
		if company == "" {
			company = "No company"
		}
		leads = append(leads, LeadView{
			Email:   email,
			Company: company,
			Status:  lead.StatusLabel(),
			CustomFields: LeadCustomFields{
				Website: lead.Website,
				Phone:   lead.Phone,
			},
		})
	}

	return &LeadsPageOutput{Leads: leads, Pagination: pagination}
}

// LeadDetail busca os dados de negócio do lead no lookup local. Miss é 404,
// nunca 500.
func (uc *DashboardUseCase) LeadDetail(email string) (entity.Place, error) {
	place, ok := uc.Enrichment.Lookup(email)
	if !ok {
		return entity.Place{}, &NotFoundError{Resource: "lead", Key: email}
	}
	return place, nil
}

// MessagePreview mostra o primeiro passo da primeira sequência. Aqui NÃO tem
// fallback: se o GET da campanha falhar o erro sobe, porque sem a campanha
// não existe mensagem nenhuma para mostrar. Sem enriquecimento para o email,
// devolvemos os tokens literais — o caller vê quais variáveis existem.
func (uc *DashboardUseCase) MessagePreview(ctx context.Context, email string) (*MessagePreviewOutput, error) {
	campaign, err := uc.API.GetCampaign(ctx, uc.CampaignID)
	if err != nil {
		return nil, err
	}

	variant, ok := campaign.FirstStep()
	if !ok {
		return nil, &NotFoundError{Resource: "sequência de mensagem", Key: uc.CampaignID}
	}

	out := &MessagePreviewOutput{
		Email:   email,
		Subject: variant.Subject,
		Body:    variant.Body,
	}

	place, found := uc.Enrichment.Lookup(email)
	if !found {
		return out, nil
	}

	replacer := strings.NewReplacer(
		"{{companyName}}", place.Title,
		"{{city}}", place.City,
		"{{category}}", place.Category,
		"{{rating}}", place.Rating.String(),
		"{{reviewCount}}", place.ReviewCount.String(),
	)
	out.Subject = replacer.Replace(out.Subject)
	out.Body = replacer.Replace(out.Body)
	out.Personalized = true
	return out, nil
}

// Start ativa a campanha.
func (uc *DashboardUseCase) Start(ctx context.Context) *MutationResult {
	return uc.setActive(ctx, true,
		"Campaign started",
		"Could not start via API. Please start it manually in the Instantly dashboard.")
}

// Pause pausa a campanha.
func (uc *DashboardUseCase) Pause(ctx context.Context) *MutationResult {
	return uc.setActive(ctx, false,
		"Campaign paused",
		"Could not pause via API. Please pause it manually in the Instantly dashboard.")
}

// setActive tenta as estratégias em ordem e para na primeira que passar.
// Esgotar todas não é erro de servidor: o resultado estruturado manda o
// operador fazer na mão.
func (uc *DashboardUseCase) setActive(ctx context.Context, active bool, okMsg, failMsg string) *MutationResult {
	var lastErr error
	for _, strategy := range uc.Status {
		if err := strategy.SetActive(ctx, uc.CampaignID, active); err != nil {
			log.Printf("⚠️ Estratégia %s falhou para a campanha %s: %v", strategy.Name(), uc.CampaignID, err)
			lastErr = err
			continue
		}
		return &MutationResult{Success: true, Message: okMsg, Strategy: strategy.Name()}
	}

	result := &MutationResult{Success: false, Message: failMsg}
	if lastErr != nil {
		result.Err = lastErr.Error()
	}
	return result
}
