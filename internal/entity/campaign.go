package entity

// Status da campanha no Instantly
const (
	CampaignStatusPaused = 0
	CampaignStatusActive = 1
)

type Campaign struct {
	ID         string     `json:"id,omitempty"`
	Name       string     `json:"name"`
	Status     int        `json:"status"`
	DailyLimit int        `json:"daily_limit,omitempty"`
	Sequences  []Sequence `json:"sequences,omitempty"`
}

type Sequence struct {
	Steps []Step `json:"steps"`
}

type Step struct {
	Type     string    `json:"type"`
	Delay    int       `json:"delay,omitempty"`
	Variants []Variant `json:"variants"`
}

type Variant struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (c Campaign) StatusLabel() string {
	if c.Status == CampaignStatusActive {
		return "Active"
	}
	return "Paused"
}

// FirstStep devolve o primeiro passo da primeira sequência, se existir.
// É o que o preview de mensagem mostra.
func (c Campaign) FirstStep() (Variant, bool) {
	if len(c.Sequences) == 0 || len(c.Sequences[0].Steps) == 0 {
		return Variant{}, false
	}
	step := c.Sequences[0].Steps[0]
	if len(step.Variants) == 0 {
		return Variant{}, false
	}
	return step.Variants[0], true
}
