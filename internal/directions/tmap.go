package directions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const tmapPedestrianURL = "https://apis.openapi.sk.com/tmap/routes/pedestrian"

// TmapProvider calls the Tmap pedestrian routing API.
type TmapProvider struct {
	appKey     string
	baseURL    string
	httpClient *http.Client
}

func NewTmapProvider(appKey string, timeout time.Duration) *TmapProvider {
	return &TmapProvider{
		appKey:     appKey,
		baseURL:    tmapPedestrianURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type tmapFeature struct {
	Properties struct {
		TotalDistance int `json:"totalDistance"`
		TotalTime     int `json:"totalTime"`
	} `json:"properties"`
	Geometry struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	} `json:"geometry"`
}

type tmapResponse struct {
	Features []tmapFeature `json:"features"`
}

func (p *TmapProvider) GetRoute(ctx context.Context, req Request) (*Route, error) {
	startX, startY, err := splitCoord(req.Start)
	if err != nil {
		return nil, err
	}
	endX, endY, err := splitCoord(req.Goal)
	if err != nil {
		return nil, err
	}

	payload := map[string]string{
		"startX":       startX,
		"startY":       startY,
		"endX":         endX,
		"endY":         endY,
		"reqCoordType": "WGS84GEO",
		"resCoordType": "WGS84GEO",
		"startName":    "start",
		"endName":      "end",
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tmap request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"?version=1", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to build tmap request: %w", err)
	}
	httpReq.Header.Set("appKey", p.appKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("tmap directions request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmap directions returned status %d", resp.StatusCode)
	}

	var body tmapResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode tmap response: %w", err)
	}

	if len(body.Features) == 0 {
		return nil, ErrNoRoute
	}

	route := &Route{
		Distance: body.Features[0].Properties.TotalDistance,
		Duration: body.Features[0].Properties.TotalTime,
	}
	for _, f := range body.Features {
		if f.Geometry.Type != "LineString" {
			continue
		}
		var coords [][]float64
		if err := json.Unmarshal(f.Geometry.Coordinates, &coords); err != nil {
			return nil, fmt.Errorf("failed to decode tmap geometry: %w", err)
		}
		route.Path = append(route.Path, coords...)
	}

	return route, nil
}

func splitCoord(s string) (string, string, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("coordinate must be \"lng,lat\", got %q", s)
	}
	return parts[0], parts[1], nil
}
