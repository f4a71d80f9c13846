package domain

// Insight is the productivity summary produced by the AI coach.
type Insight struct {
	Analysis    string
	Suggestions []string
	Quote       string
}
