package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/clinic-outreach/internal/entity"
)

// DrainPageSize é o tamanho de página do endpoint de listagem do Instantly.
const DrainPageSize = 100

// DefaultPerPage é o per_page da listagem de exibição quando o caller não manda.
const DefaultPerPage = 20

// DrainLeads pagina o upstream até esgotar: skip avança de página em página
// e a coleta para na página curta ou vazia. Erro no meio NÃO derruba a
// leitura — devolve o que já acumulou (best-effort assumido: volume baixo,
// melhor dado parcial que dashboard fora do ar). Sem dedup entre páginas.
func DrainLeads(ctx context.Context, api LeadLister, campaignID string) []entity.Lead {
	var all []entity.Lead
	skip := 0

	for {
		items, err := api.ListLeads(ctx, campaignID, skip, DrainPageSize)
		if err != nil {
			log.Printf("⚠️ Erro buscando leads (skip=%d), devolvendo parcial de %d: %v", skip, len(all), err)
			break
		}
		if len(items) == 0 {
			break
		}

		all = append(all, items...)
		if len(items) < DrainPageSize {
			break
		}
		skip += DrainPageSize
	}

	return all
}

// Pagination é o bloco que acompanha toda listagem paginada.
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// PaginateLeads fatia uma coleção já materializada e filtrada. page < 1 vira
// 1, per_page <= 0 vira o default. pages = ceil(total/per_page).
func PaginateLeads(leads []entity.Lead, page, perPage int) ([]entity.Lead, Pagination) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	total := len(leads)
	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return leads[start:end], Pagination{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   (total + perPage - 1) / perPage,
	}
}
