package dto

type DirectionsRequest struct {
	Start     string   `json:"start"` // "lng,lat"
	Goal      string   `json:"goal"`  // "lng,lat"
	Waypoints []string `json:"waypoints,omitempty"`
	Option    string   `json:"option,omitempty"` // trafast, tracomfort, traoptimal
}

type DirectionsResponse struct {
	Path     [][]float64 `json:"path"`     // [lng, lat] pairs
	Distance int         `json:"distance"` // meters
	Duration int         `json:"duration"` // seconds
}
