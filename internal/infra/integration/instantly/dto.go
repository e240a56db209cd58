package instantly

import "github.com/xavierca1/clinic-outreach/internal/entity"

// LeadPayload é o que o Instantly aceita na criação de lead. Todos os campos
// opcionais têm omitempty: campo vazio NUNCA vai no JSON (a API rejeita
// string vazia em custom field).
type LeadPayload struct {
	Email       string `json:"email"`
	CampaignID  string `json:"campaign_id,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	Website     string `json:"website,omitempty"`
	Phone       string `json:"phone,omitempty"`

	// Campos numerados: endereço, categoria, "nota (N reviews)", cidade, UF
	CustomField1 string `json:"custom_field_1,omitempty"`
	CustomField2 string `json:"custom_field_2,omitempty"`
	CustomField3 string `json:"custom_field_3,omitempty"`
	CustomField4 string `json:"custom_field_4,omitempty"`
	CustomField5 string `json:"custom_field_5,omitempty"`
}

// --- PAYLOADS internos: o que mandamos pro Instantly ---

type createCampaignRequest struct {
	Name             string            `json:"name"`
	CampaignSchedule campaignSchedule  `json:"campaign_schedule"`
	Sequences        []entity.Sequence `json:"sequences"`
	DailyLimit       int               `json:"daily_limit"`
	EmailGap         int               `json:"email_gap"`
	RandomWaitMax    int               `json:"random_wait_max"`
	StopOnReply      bool              `json:"stop_on_reply"`
	LinkTracking     bool              `json:"link_tracking"`
	OpenTracking     bool              `json:"open_tracking"`
}

type campaignSchedule struct {
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Schedules []scheduleEntry `json:"schedules"`
}

type scheduleEntry struct {
	Name     string         `json:"name"`
	Timing   scheduleTiming `json:"timing"`
	Days     scheduleDays   `json:"days"`
	Timezone string         `json:"timezone"`
}

type scheduleTiming struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type scheduleDays struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
}

type listLeadsRequest struct {
	CampaignID string `json:"campaign_id"`
	Skip       int    `json:"skip"`
	Limit      int    `json:"limit"`
}

// --- RESPONSE: o que o Instantly devolve ---

type listLeadsResponse struct {
	Items []entity.Lead `json:"items"`
}
