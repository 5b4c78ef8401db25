package dto

type CreateTrainRequest struct {
	// Key is optional; the system assigns one when it is empty.
	Key      string `json:"key"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}

type UpdateTrainRequest struct {
	Capacity *int    `json:"capacity"`
	Status   *string `json:"status"`
}

type TrainStatusResponse struct {
	Status string `json:"status"`
}

type TrainViewResponse struct {
	Key       string             `json:"key"`
	Capacity  int                `json:"capacity"`
	Status    string             `json:"status"`
	Schedules []ScheduleResponse `json:"schedules"`
}
