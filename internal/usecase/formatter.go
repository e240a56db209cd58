package usecase

import (
	"fmt"

	"github.com/xavierca1/clinic-outreach/internal/entity"
	"github.com/xavierca1/clinic-outreach/internal/infra/integration/instantly"
)

// FormatLead converte o registro do scraper para o formato do Instantly.
// Os cinco custom fields numerados carregam endereço, categoria, avaliação,
// cidade e estado. Campo vazio fica fora do payload (omitempty nos DTOs) —
// a composição da avaliação só acontece se houver nota, senão iria a string
// "( reviews)" sozinha.
func FormatLead(place entity.Place) instantly.LeadPayload {
	rating := ""
	if place.Rating != "" {
		if place.ReviewCount != "" {
			rating = fmt.Sprintf("%s (%s reviews)", place.Rating, place.ReviewCount)
		} else {
			rating = place.Rating.String()
		}
	}

	return instantly.LeadPayload{
		Email:        place.PrimaryEmail,
		CompanyName:  place.Title,
		Website:      place.Website,
		Phone:        place.Phone,
		CustomField1: place.Address,
		CustomField2: place.Category,
		CustomField3: rating,
		CustomField4: place.City,
		CustomField5: place.State,
	}
}
