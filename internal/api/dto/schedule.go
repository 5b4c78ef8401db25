package dto

type DateRequest struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

type ScheduleStopRequest struct {
	Station     string `json:"station"`
	WaitMinutes int    `json:"wait_minutes"`
}

type CreateScheduleRequest struct {
	TrainKey    string                `json:"train_key"`
	StartHour   int                   `json:"start_hour"`
	StartMinute int                   `json:"start_minute"`
	Stops       []ScheduleStopRequest `json:"stops"`
	ValidFrom   DateRequest           `json:"valid_from"`
	ValidUntil  DateRequest           `json:"valid_until"`
}

type ScheduleResponse struct {
	TrainKey   string `json:"train_key"`
	StartTime  string `json:"start_time"`
	ValidFrom  string `json:"valid_from"`
	ValidUntil string `json:"valid_until"`
}

type ListSchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}
