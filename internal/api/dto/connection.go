package dto

type CreateConnectionRequest struct {
	Start             string `json:"start"`
	End               string `json:"end"`
	TravelTimeMinutes int    `json:"travel_time_minutes"`
}

type ConnectionResponse struct {
	ID                int64  `json:"id"`
	Start             string `json:"start"`
	End               string `json:"end"`
	TravelTimeMinutes int    `json:"travel_time_minutes"`
}

type SearchConnectionsResponse struct {
	Connections []ConnectionResponse `json:"connections"`
}
