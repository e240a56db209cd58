package usecase

import (
	"context"

	"github.com/xavierca1/clinic-outreach/internal/entity"
	"github.com/xavierca1/clinic-outreach/internal/infra/integration/instantly"
)

// LeadLister é o pedaço do client que o drain precisa.
type LeadLister interface {
	ListLeads(ctx context.Context, campaignID string, skip, limit int) ([]entity.Lead, error)
}

// CampaignAPI é o que o dashboard consome do Instantly.
type CampaignAPI interface {
	LeadLister
	GetCampaign(ctx context.Context, id string) (*entity.Campaign, error)
}

// CampaignStatusSetter é uma estratégia de mutação de status. O contrato
// upstream é instável, então o facade recebe uma lista delas e tenta em
// ordem (ver instantly.StatusUpdateStrategy e instantly.LaunchEndpointStrategy).
type CampaignStatusSetter interface {
	Name() string
	SetActive(ctx context.Context, campaignID string, active bool) error
}

// EnrichmentLookup é o dataset local chaveado por email. Ausência de uma
// chave é caso normal, nunca erro.
type EnrichmentLookup interface {
	Lookup(email string) (entity.Place, bool)
}

// UploaderAPI é o que o upload em massa consome do Instantly.
type UploaderAPI interface {
	ListCampaigns(ctx context.Context) ([]entity.Campaign, error)
	CreateCampaign(ctx context.Context, name string) (*entity.Campaign, error)
	AddLead(ctx context.Context, lead instantly.LeadPayload) error
}
