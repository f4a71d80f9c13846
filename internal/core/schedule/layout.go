package schedule

import "time"

const (
	// DefaultVisibleStartHour / DefaultVisibleEndHour bound the rendered
	// time grid (7 AM to 9 PM plus the trailing hour row).
	DefaultVisibleStartHour = 7
	DefaultVisibleEndHour   = 22

	// MinBlockHeightMinutes keeps very short occurrences clickable.
	MinBlockHeightMinutes = 24.0

	// FallbackColor is used when an occurrence references a subject that
	// no longer exists.
	FallbackColor = "#94a3b8"
)

// Block is the render-ready geometry of one occurrence on the time
// grid: minutes from the top of the visible range, block height in
// minutes, and the resolved subject color.
type Block struct {
	TopOffsetMinutes float64
	HeightMinutes    float64
	Color            string
}

// Palette maps subject IDs to their color tags.
type Palette map[string]string

// Layout positions an occurrence on a grid whose top row is
// visibleStartHour. The offset may be negative or beyond the bottom
// when the occurrence falls outside the visible hours; clipping is the
// caller's decision. The color lookup never fails: unknown subjects get
// the fallback gray.
func Layout(occ Occurrence, visibleStartHour int, palette Palette) Block {
	startHour := hourFloat(occ.StartAt)
	endHour := hourFloat(occ.EndAt)

	height := (endHour - startHour) * 60
	if height < MinBlockHeightMinutes {
		height = MinBlockHeightMinutes
	}

	color, ok := palette[occ.Task.SubjectID]
	if !ok || color == "" {
		color = FallbackColor
	}

	return Block{
		TopOffsetMinutes: (startHour - float64(visibleStartHour)) * 60,
		HeightMinutes:    height,
		Color:            color,
	}
}

func hourFloat(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}
