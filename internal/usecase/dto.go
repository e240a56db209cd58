package usecase

// CampaignInfo é o bloco de campanha do /stats.
type CampaignInfo struct {
	Name       string `json:"name"`
	ID         string `json:"id"`
	Status     string `json:"status"` // "Active" / "Paused"
	DailyLimit int    `json:"daily_limit"`
}

type LeadCounts struct {
	TotalLeads   int `json:"total_leads"`
	ClinicLeads  int `json:"clinic_leads"`
	OtherLeads   int `json:"other_leads"`
	ActiveLeads  int `json:"active_leads"`
	PendingLeads int `json:"pending_leads"`
}

type StatsOutput struct {
	Campaign CampaignInfo `json:"campaign"`
	Stats    LeadCounts   `json:"stats"`
}

// LeadView é o registro de exibição da tabela de leads.
type LeadView struct {
	Email        string           `json:"email"`
	Company      string           `json:"company"`
	Status       string           `json:"status"`
	CustomFields LeadCustomFields `json:"custom_fields"`
}

type LeadCustomFields struct {
	Website string `json:"website"`
	Phone   string `json:"phone"`
}

type LeadsPageOutput struct {
	Leads      []LeadView `json:"leads"`
	Pagination Pagination `json:"pagination"`
}

type MessagePreviewOutput struct {
	Email        string `json:"email"`
	Subject      string `json:"subject"`
	Body         string `json:"body"`
	Personalized bool   `json:"personalized"`
}

// MutationResult é o resultado estruturado de start/pause. Success=false não
// é erro de servidor: vira 400 com a instrução de fazer manualmente.
type MutationResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Err      string `json:"error,omitempty"`
	Strategy string `json:"-"`
}
