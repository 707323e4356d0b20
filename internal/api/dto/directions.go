package dto

// Wire shapes follow the Google Directions response layout the backend
// mirrors: one route, encoded overview geometry, an optimized waypoint
// order over the intermediate stops, and per-leg details.

type DirectionsResponse struct {
	Routes []RouteResponse `json:"routes"`
}

type RouteResponse struct {
	OverviewPolyline PolylineResponse `json:"overview_polyline"`
	WaypointOrder    []int            `json:"waypoint_order"`
	Legs             []LegResponse    `json:"legs"`
}

type PolylineResponse struct {
	Points string `json:"points"`
}

type TextValueResponse struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type LegResponse struct {
	Distance TextValueResponse `json:"distance"`
	Duration TextValueResponse `json:"duration"`
	Steps    []StepResponse    `json:"steps"`
}

type StepResponse struct {
	HTMLInstructions string            `json:"html_instructions"`
	Distance         TextValueResponse `json:"distance"`
	Duration         TextValueResponse `json:"duration"`
}
