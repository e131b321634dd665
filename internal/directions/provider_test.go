package directions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNaverProvider_ParsesRoute(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "id", r.Header.Get("x-ncp-apigw-api-key-id"))
		require.Equal(t, "secret", r.Header.Get("x-ncp-apigw-api-key"))
		require.Equal(t, "127.1,37.5", r.URL.Query().Get("start"))
		require.Equal(t, "trafast", r.URL.Query().Get("option"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": 0,
			"route": {"trafast": [{
				"summary": {"distance": 5200, "duration": 420000},
				"path": [[127.1, 37.5], [127.2, 37.6]]
			}]}
		}`))
	}))
	defer srv.Close()

	p := NewNaverProvider("id", "secret", time.Second)
	p.baseURL = srv.URL

	route, err := p.GetRoute(context.Background(), Request{Start: "127.1,37.5", Goal: "127.2,37.6"})
	require.NoError(t, err)
	require.Equal(t, 5200, route.Distance)
	require.Equal(t, 420, route.Duration, "naver durations are milliseconds upstream")
	require.Len(t, route.Path, 2)
	require.Equal(t, []float64{127.1, 37.5}, route.Path[0])
}

func TestNaverProvider_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": 2, "message": "no route"}`))
	}))
	defer srv.Close()

	p := NewNaverProvider("id", "secret", time.Second)
	p.baseURL = srv.URL

	_, err := p.GetRoute(context.Background(), Request{Start: "127.1,37.5", Goal: "127.2,37.6"})
	require.Error(t, err)
}

func TestKakaoProvider_FlattensVertexes(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "KakaoAK key", r.Header.Get("Authorization"))
		require.Equal(t, "foot", r.URL.Query().Get("by"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"routes": [{
				"summary": {"distance": 1200, "duration": 900},
				"sections": [{"roads": [
					{"vertexes": [127.1, 37.5, 127.15, 37.55]},
					{"vertexes": [127.2]}
				]}]
			}]
		}`))
	}))
	defer srv.Close()

	p := NewKakaoProvider("key", time.Second)
	p.baseURL = srv.URL

	route, err := p.GetRoute(context.Background(), Request{Start: "127.1,37.5", Goal: "127.2,37.6"})
	require.NoError(t, err)
	require.Equal(t, 1200, route.Distance)
	require.Equal(t, 900, route.Duration)
	// The dangling half-pair in the second road is dropped.
	require.Len(t, route.Path, 2)
}

func TestKakaoProvider_NoRoutes(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"routes": []}`))
	}))
	defer srv.Close()

	p := NewKakaoProvider("key", time.Second)
	p.baseURL = srv.URL

	_, err := p.GetRoute(context.Background(), Request{Start: "127.1,37.5", Goal: "127.2,37.6"})
	require.ErrorIs(t, err, ErrNoRoute)
}

func TestTmapProvider_CollectsLineStrings(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "appkey", r.Header.Get("appKey"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"features": [
				{"properties": {"totalDistance": 800, "totalTime": 600},
				 "geometry": {"type": "Point", "coordinates": [127.1, 37.5]}},
				{"properties": {},
				 "geometry": {"type": "LineString", "coordinates": [[127.1, 37.5], [127.12, 37.52]]}},
				{"properties": {},
				 "geometry": {"type": "LineString", "coordinates": [[127.12, 37.52], [127.2, 37.6]]}}
			]
		}`))
	}))
	defer srv.Close()

	p := NewTmapProvider("appkey", time.Second)
	p.baseURL = srv.URL

	route, err := p.GetRoute(context.Background(), Request{Start: "127.1,37.5", Goal: "127.2,37.6"})
	require.NoError(t, err)
	require.Equal(t, 800, route.Distance)
	require.Equal(t, 600, route.Duration)
	require.Len(t, route.Path, 4)
}

func TestTmapProvider_BadCoordinate(t *testing.T) {
	t.Parallel()

	p := NewTmapProvider("appkey", time.Second)
	_, err := p.GetRoute(context.Background(), Request{Start: "127.1", Goal: "127.2,37.6"})
	require.Error(t, err)
}

func TestProviders_UpstreamStatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	naver := NewNaverProvider("id", "secret", time.Second)
	naver.baseURL = srv.URL
	kakao := NewKakaoProvider("key", time.Second)
	kakao.baseURL = srv.URL
	tmap := NewTmapProvider("appkey", time.Second)
	tmap.baseURL = srv.URL

	req := Request{Start: "127.1,37.5", Goal: "127.2,37.6"}
	for _, p := range []Provider{naver, kakao, tmap} {
		_, err := p.GetRoute(context.Background(), req)
		require.Error(t, err)
	}
}
