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

const kakaoDirectionsURL = "https://apis-navi.kakaomobility.com/v1/directions"

// KakaoProvider calls the Kakao Mobility directions API in walking mode.
type KakaoProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewKakaoProvider(apiKey string, timeout time.Duration) *KakaoProvider {
	return &KakaoProvider{
		apiKey:     apiKey,
		baseURL:    kakaoDirectionsURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type kakaoResponse struct {
	Routes []struct {
		Summary struct {
			Distance int `json:"distance"`
			Duration int `json:"duration"`
		} `json:"summary"`
		Sections []struct {
			Roads []struct {
				// Flat [x1, y1, x2, y2, ...] coordinate list.
				Vertexes []float64 `json:"vertexes"`
			} `json:"roads"`
		} `json:"sections"`
	} `json:"routes"`
}

func (p *KakaoProvider) GetRoute(ctx context.Context, req Request) (*Route, error) {
	q := url.Values{}
	q.Set("origin", req.Start)
	q.Set("destination", req.Goal)
	if len(req.Waypoints) > 0 {
		q.Set("waypoints", strings.Join(req.Waypoints, "|"))
	}
	q.Set("by", "foot")
	q.Set("priority", "RECOMMEND")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build kakao request: %w", err)
	}
	httpReq.Header.Set("Authorization", "KakaoAK "+p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("kakao directions request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kakao directions returned status %d", resp.StatusCode)
	}

	var body kakaoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode kakao response: %w", err)
	}

	if len(body.Routes) == 0 {
		return nil, ErrNoRoute
	}

	route := body.Routes[0]
	var path [][]float64
	for _, section := range route.Sections {
		for _, road := range section.Roads {
			for i := 0; i+1 < len(road.Vertexes); i += 2 {
				path = append(path, []float64{road.Vertexes[i], road.Vertexes[i+1]})
			}
		}
	}

	return &Route{
		Path:     path,
		Distance: route.Summary.Distance,
		Duration: route.Summary.Duration,
	}, nil
}
