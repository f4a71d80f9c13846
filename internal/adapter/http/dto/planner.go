package dto

type OccurrenceItem struct {
	TaskID           string  `json:"task_id"`
	SubjectID        string  `json:"subject_id"`
	Title            string  `json:"title"`
	Start            string  `json:"start"`
	End              string  `json:"end"`
	Completed        bool    `json:"completed"`
	Priority         string  `json:"priority"`
	Recurring        bool    `json:"recurring"`
	TopOffsetMinutes float64 `json:"top_offset_minutes"`
	HeightMinutes    float64 `json:"height_minutes"`
	Color            string  `json:"color"`
}

type WeekViewResponse struct {
	WeekStart        string           `json:"week_start"`
	WeekEnd          string           `json:"week_end"`
	VisibleStartHour int              `json:"visible_start_hour"`
	VisibleEndHour   int              `json:"visible_end_hour"`
	Occurrences      []OccurrenceItem `json:"occurrences"`
}
