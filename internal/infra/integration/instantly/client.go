package instantly

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/xavierca1/clinic-outreach/internal/entity"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient falha se a credencial estiver vazia — sem ela nenhuma chamada
// funciona, então é erro de configuração, não de runtime.
func NewClient(apiKey, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("INSTANTLY_API_KEY não configurada")
	}
	if baseURL == "" {
		baseURL = "https://api.instantly.ai/api/v2"
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// RequestError carrega status e corpo da resposta para o chamador decidir
// o que fazer (fallback, abortar...). Nunca fazemos retry automático aqui.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("instantly: %s /%s falhou (status %d): %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Do executa uma chamada autenticada genérica. payload e out podem ser nil.
// Uma única ida e volta, sem retry, sem pooling além do http.Client padrão.
func (c *Client) Do(ctx context.Context, method, path string, payload, out any) error {
	url := fmt.Sprintf("%s/%s", c.baseURL, path)

	var body io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("erro ao montar payload: %w", err)
		}
		body = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro na conexão com instantly: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &RequestError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("erro ao decodificar resposta instantly: %w", err)
		}
	}
	return nil
}

// ListCampaigns normaliza as duas formas que a v2 devolve: array puro ou
// envelope {"data": [...]}.
func (c *Client) ListCampaigns(ctx context.Context) ([]entity.Campaign, error) {
	var raw json.RawMessage
	if err := c.Do(ctx, http.MethodGet, "campaigns", nil, &raw); err != nil {
		return nil, err
	}

	var campaigns []entity.Campaign
	if err := json.Unmarshal(raw, &campaigns); err == nil {
		return campaigns, nil
	}

	var envelope struct {
		Data []entity.Campaign `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("resposta de campanhas em formato inesperado: %w", err)
	}
	return envelope.Data, nil
}

func (c *Client) GetCampaign(ctx context.Context, id string) (*entity.Campaign, error) {
	var campaign entity.Campaign
	if err := c.Do(ctx, http.MethodGet, "campaigns/"+id, nil, &campaign); err != nil {
		return nil, err
	}
	if campaign.ID == "" {
		campaign.ID = id
	}
	return &campaign, nil
}

// CreateCampaign cria a campanha com o schedule padrão: 90 dias, seg-sex
// 09:00-17:00 America/Chicago, um passo de email. Os valores vêm do que a
// operação sempre usou — não são configuráveis de propósito.
func (c *Client) CreateCampaign(ctx context.Context, name string) (*entity.Campaign, error) {
	now := time.Now()
	payload := createCampaignRequest{
		Name: name,
		CampaignSchedule: campaignSchedule{
			StartDate: now.Format("2006-01-02"),
			EndDate:   now.AddDate(0, 0, 90).Format("2006-01-02"),
			Schedules: []scheduleEntry{
				{
					Name:   "Business Hours",
					Timing: scheduleTiming{From: "09:00", To: "17:00"},
					Days: scheduleDays{
						Monday:    true,
						Tuesday:   true,
						Wednesday: true,
						Thursday:  true,
						Friday:    true,
					},
					Timezone: "America/Chicago",
				},
			},
		},
		Sequences: []entity.Sequence{
			{
				Steps: []entity.Step{
					{
						Type:  "email",
						Delay: 2,
						Variants: []entity.Variant{
							{Subject: "Quick Question", Body: "Hi there,\n\nI wanted to reach out."},
						},
					},
				},
			},
		},
		DailyLimit:    50,
		EmailGap:      30,
		RandomWaitMax: 60,
		StopOnReply:   true,
		LinkTracking:  true,
		OpenTracking:  true,
	}

	var campaign entity.Campaign
	if err := c.Do(ctx, http.MethodPost, "campaigns", payload, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// AddLead envia um lead por vez. A v2 não tem batch — o campaign_id vai
// dentro de cada lead.
func (c *Client) AddLead(ctx context.Context, lead LeadPayload) error {
	return c.Do(ctx, http.MethodPost, "leads", lead, nil)
}

// ListLeads busca uma página de leads da campanha (cursor por skip/limit).
func (c *Client) ListLeads(ctx context.Context, campaignID string, skip, limit int) ([]entity.Lead, error) {
	payload := listLeadsRequest{
		CampaignID: campaignID,
		Skip:       skip,
		Limit:      limit,
	}

	var resp listLeadsResponse
	if err := c.Do(ctx, http.MethodPost, "leads/list", payload, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "ClinicOutreach/1.0")
}
