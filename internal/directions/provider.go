// Package directions proxies route computation to external mapping APIs.
// Each provider implements the same narrow interface; callers never see
// provider-specific response formats.
package directions

import (
	"context"
	"errors"
)

// Route is the normalized result of any provider.
type Route struct {
	Path     [][]float64 // [lng, lat] pairs
	Distance int         // meters
	Duration int         // seconds
}

type Request struct {
	Start     string // "lng,lat"
	Goal      string // "lng,lat"
	Waypoints []string
	Option    string // provider-specific routing option
}

var ErrNoRoute = errors.New("no route found")

// Provider computes a route between two coordinates.
type Provider interface {
	GetRoute(ctx context.Context, req Request) (*Route, error)
}
