package dto

type CreateStationRequest struct {
	Key     string `json:"key"`
	Details string `json:"details"`
}

type KeyResponse struct {
	Key string `json:"key"`
}
