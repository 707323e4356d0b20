package dto

type MarkerResponse struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type DeleteMarkerRequest struct {
	Address string `json:"address"`
}

type DeleteMarkerResponse struct {
	Status string `json:"status"`
}

type TokenResponse struct {
	MapboxToken string `json:"mapbox_token"`
}
