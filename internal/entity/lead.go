package entity

// SentinelEmail é o valor literal que o Instantly devolve quando o lead não
// tem email. Não é string vazia — tem que comparar explicitamente.
const SentinelEmail = "No email"

// Status do lead na API v2 do Instantly (campo numérico)
const (
	LeadStatusPending = 0
	LeadStatusActive  = 1
)

type Lead struct {
	ID          string `json:"id,omitempty"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name,omitempty"`
	Status      int    `json:"status"`
	Website     string `json:"website,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// HasUsableEmail filtra tanto o vazio quanto o sentinel "No email".
func (l Lead) HasUsableEmail() bool {
	return l.Email != "" && l.Email != SentinelEmail
}

func (l Lead) StatusLabel() string {
	if l.Status == LeadStatusActive {
		return "Active"
	}
	return "Pending"
}
