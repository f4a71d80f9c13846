package dto

type InsightResponse struct {
	Analysis    string   `json:"analysis"`
	Suggestions []string `json:"suggestions"`
	Quote       string   `json:"quote"`
}
