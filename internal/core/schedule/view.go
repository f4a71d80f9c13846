package schedule

import "time"

// PositionedOccurrence pairs an occurrence with its grid geometry.
type PositionedOccurrence struct {
	Occurrence
	Block
}

// WeekView is the render-ready result of expanding a scope's tasks over
// one Sunday-aligned window.
type WeekView struct {
	WeekStart        time.Time
	WeekEnd          time.Time
	VisibleStartHour int
	VisibleEndHour   int
	Occurrences      []PositionedOccurrence
}
