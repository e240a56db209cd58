package usecase

import (
	"strings"

	"github.com/xavierca1/clinic-outreach/internal/entity"
)

// DefaultClinicKeywords é a lista que a operação sempre usou para separar
// clínicas do resto da base.
var DefaultClinicKeywords = []string{
	"clinic", "medicine", "wellness", "health", "naturopathic",
	"integrative", "holistic", "doctor", "dr.", "medical",
}

// FilterClinicLeads devolve os leads com email utilizável cujo nome da
// empresa (minúsculo) contém alguma das keywords. Função pura.
func FilterClinicLeads(keywords []string, leads []entity.Lead) []entity.Lead {
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}

	var matches []entity.Lead
	for _, lead := range leads {
		if !lead.HasUsableEmail() {
			continue
		}
		company := strings.ToLower(lead.CompanyName)
		for _, kw := range lowered {
			if strings.Contains(company, kw) {
				matches = append(matches, lead)
				break
			}
		}
	}
	return matches
}

// OtherLeads é o complemento por exclusão de email contra o conjunto de
// clínicas — NÃO re-roda o predicado negado. Consequência assumida: lead sem
// email utilizável nunca é clínica, logo cai em "other", e
// clinic + other == total sempre fecha.
func OtherLeads(all, clinic []entity.Lead) []entity.Lead {
	clinicEmails := make(map[string]struct{}, len(clinic))
	for _, lead := range clinic {
		clinicEmails[lead.Email] = struct{}{}
	}

	var others []entity.Lead
	for _, lead := range all {
		if _, ok := clinicEmails[lead.Email]; !ok {
			others = append(others, lead)
		}
	}
	return others
}
