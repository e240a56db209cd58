package instantly_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/clinic-outreach/internal/infra/integration/instantly"
)

// TestNewClientRequiresAPIKey - credencial vazia é erro de construção
func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := instantly.NewClient("", "https://api.example")
	assert.Error(t, err)

	client, err := instantly.NewClient("key-123", "https://api.example")
	assert.NoError(t, err)
	assert.NotNil(t, client)
}

// TestDoSendsBearerToken
func TestDoSendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, _ := instantly.NewClient("key-123", server.URL)
	err := client.Do(context.Background(), http.MethodGet, "campaigns", nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, "Bearer key-123", gotAuth)
}

// TestDoReturnsRequestErrorWithStatusAndBody - o caller decide retry vs abort
func TestDoReturnsRequestErrorWithStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"lead already exists"}`))
	}))
	defer server.Close()

	client, _ := instantly.NewClient("key-123", server.URL)
	err := client.Do(context.Background(), http.MethodPost, "leads", map[string]string{"email": "a@example.com"}, nil)

	var reqErr *instantly.RequestError
	assert.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusUnprocessableEntity, reqErr.StatusCode)
	assert.Contains(t, reqErr.Body, "lead already exists")
}

// TestListCampaignsBareArray - resposta como array puro
func TestListCampaignsBareArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"camp-1","name":"A"},{"id":"camp-2","name":"B"}]`))
	}))
	defer server.Close()

	client, _ := instantly.NewClient("key-123", server.URL)
	campaigns, err := client.ListCampaigns(context.Background())

	assert.NoError(t, err)
	assert.Len(t, campaigns, 2)
	assert.Equal(t, "camp-1", campaigns[0].ID)
}

// TestListCampaignsDataEnvelope - resposta paginada {"data": [...]}
func TestListCampaignsDataEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"camp-1","name":"A"}],"next_starting_after":null}`))
	}))
	defer server.Close()

	client, _ := instantly.NewClient("key-123", server.URL)
	campaigns, err := client.ListCampaigns(context.Background())

	assert.NoError(t, err)
	assert.Len(t, campaigns, 1)
	assert.Equal(t, "A", campaigns[0].Name)
}

// TestListLeadsPostsSkipLimit - o cursor vai no corpo do POST leads/list
func TestListLeadsPostsSkipLimit(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Write([]byte(`{"items":[{"email":"a@example.com","status":1}]}`))
	}))
	defer server.Close()

	client, _ := instantly.NewClient("key-123", server.URL)
	leads, err := client.ListLeads(context.Background(), "camp-1", 200, 100)

	assert.NoError(t, err)
	assert.Equal(t, "/leads/list", gotPath)
	assert.Equal(t, "camp-1", gotBody["campaign_id"])
	assert.Equal(t, float64(200), gotBody["skip"])
	assert.Equal(t, float64(100), gotBody["limit"])
	assert.Len(t, leads, 1)
	assert.Equal(t, 1, leads[0].Status)
}

// TestCreateCampaignDefaultSchedule - schedule padrão de 90 dias, seg-sex 09-17
func TestCreateCampaignDefaultSchedule(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Write([]byte(`{"id":"camp-new","name":"Fresh"}`))
	}))
	defer server.Close()

	client, _ := instantly.NewClient("key-123", server.URL)
	campaign, err := client.CreateCampaign(context.Background(), "Fresh")

	assert.NoError(t, err)
	assert.Equal(t, "camp-new", campaign.ID)
	assert.Equal(t, "Fresh", gotBody["name"])
	assert.Equal(t, float64(50), gotBody["daily_limit"])

	schedule := gotBody["campaign_schedule"].(map[string]any)
	entries := schedule["schedules"].([]any)
	entry := entries[0].(map[string]any)
	assert.Equal(t, "America/Chicago", entry["timezone"])

	days := entry["days"].(map[string]any)
	assert.Equal(t, true, days["monday"])
	assert.Equal(t, true, days["friday"])

	timing := entry["timing"].(map[string]any)
	assert.Equal(t, "09:00", timing["from"])
	assert.Equal(t, "17:00", timing["to"])
}

// TestStatusStrategies - as duas formas conhecidas da mutação de status
func TestStatusStrategies(t *testing.T) {
	type call struct {
		method string
		path   string
		body   string
	}
	var calls []call
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		calls = append(calls, call{r.Method, r.URL.Path, string(raw)})
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, _ := instantly.NewClient("key-123", server.URL)
	ctx := context.Background()

	update := instantly.StatusUpdateStrategy{Client: client}
	assert.NoError(t, update.SetActive(ctx, "camp-1", true))
	assert.NoError(t, update.SetActive(ctx, "camp-1", false))

	launch := instantly.LaunchEndpointStrategy{Client: client}
	assert.NoError(t, launch.SetActive(ctx, "camp-1", true))
	assert.NoError(t, launch.SetActive(ctx, "camp-1", false))

	assert.Equal(t, "PUT", calls[0].method)
	assert.Equal(t, "/campaigns/camp-1", calls[0].path)
	assert.JSONEq(t, `{"status":1}`, calls[0].body)
	assert.JSONEq(t, `{"status":0}`, calls[1].body)

	assert.Equal(t, "POST", calls[2].method)
	assert.Equal(t, "/campaigns/camp-1/launch", calls[2].path)
	assert.Equal(t, "/campaigns/camp-1/pause", calls[3].path)
}
