package instantly

import (
	"context"
	"net/http"
)

// O contrato de start/pause do Instantly já mudou de forma entre versões da
// API (ora um PUT com o campo status, ora endpoints dedicados de launch).
// Por isso a mutação é uma estratégia plugável: o facade tenta uma lista em
// ordem e para na primeira que funcionar.

// StatusUpdateStrategy faz um PUT na campanha trocando só o campo status.
type StatusUpdateStrategy struct {
	Client *Client
}

func (s StatusUpdateStrategy) Name() string { return "status-update" }

func (s StatusUpdateStrategy) SetActive(ctx context.Context, campaignID string, active bool) error {
	status := 0
	if active {
		status = 1
	}
	payload := map[string]int{"status": status}
	return s.Client.Do(ctx, http.MethodPut, "campaigns/"+campaignID, payload, nil)
}

// LaunchEndpointStrategy usa os endpoints dedicados (launch/pause) que
// algumas versões da v2 expõem.
type LaunchEndpointStrategy struct {
	Client *Client
}

func (s LaunchEndpointStrategy) Name() string { return "launch-endpoint" }

func (s LaunchEndpointStrategy) SetActive(ctx context.Context, campaignID string, active bool) error {
	path := "campaigns/" + campaignID + "/pause"
	if active {
		path = "campaigns/" + campaignID + "/launch"
	}
	return s.Client.Do(ctx, http.MethodPost, path, struct{}{}, nil)
}
