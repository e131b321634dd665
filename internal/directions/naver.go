package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const naverDirectionsURL = "https://maps.apigw.ntruss.com/map-direction/v1/driving"

// NaverProvider calls the Naver Directions 5 driving API.
type NaverProvider struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
}

func NewNaverProvider(clientID, clientSecret string, timeout time.Duration) *NaverProvider {
	return &NaverProvider{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      naverDirectionsURL,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

type naverResponse struct {
	Code    int                     `json:"code"`
	Message string                  `json:"message"`
	Route   map[string][]naverRoute `json:"route"`
}

type naverRoute struct {
	Summary struct {
		Distance int `json:"distance"`
		Duration int `json:"duration"` // milliseconds
	} `json:"summary"`
	Path [][]float64 `json:"path"`
}

func (p *NaverProvider) GetRoute(ctx context.Context, req Request) (*Route, error) {
	option := req.Option
	if option == "" {
		option = "trafast"
	}

	q := url.Values{}
	q.Set("start", req.Start)
	q.Set("goal", req.Goal)
	q.Set("option", option)
	if len(req.Waypoints) > 0 {
		q.Set("waypoints", strings.Join(req.Waypoints, ":"))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build naver request: %w", err)
	}
	httpReq.Header.Set("x-ncp-apigw-api-key-id", p.clientID)
	httpReq.Header.Set("x-ncp-apigw-api-key", p.clientSecret)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("naver directions request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("naver directions returned status %d", resp.StatusCode)
	}

	var body naverResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode naver response: %w", err)
	}

	if body.Code != 0 {
		return nil, fmt.Errorf("naver directions error %d: %s", body.Code, body.Message)
	}

	routes := body.Route[option]
	if len(routes) == 0 {
		return nil, ErrNoRoute
	}

	r := routes[0]
	return &Route{
		Path:     r.Path,
		Distance: r.Summary.Distance,
		Duration: r.Summary.Duration / 1000,
	}, nil
}
