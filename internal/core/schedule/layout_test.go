package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
)

func occurrenceAt(subjectID string, start, end time.Time) Occurrence {
	return Occurrence{
		Task:    domain.Task{ID: "t-1", SubjectID: subjectID},
		StartAt: start,
		EndAt:   end,
	}
}

func TestLayout_PositionAndHeight(t *testing.T) {
	occ := occurrenceAt("sub-1",
		time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
	)
	palette := Palette{"sub-1": "#3b82f6"}

	block := Layout(occ, DefaultVisibleStartHour, palette)

	require.InDelta(t, 150, block.TopOffsetMinutes, 0.001) // 9.5h - 7h = 2.5h
	require.InDelta(t, 90, block.HeightMinutes, 0.001)
	require.Equal(t, "#3b82f6", block.Color)
}

func TestLayout_MinimumHeight(t *testing.T) {
	occ := occurrenceAt("sub-1",
		time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 9, 10, 0, 0, time.UTC),
	)

	block := Layout(occ, DefaultVisibleStartHour, Palette{"sub-1": "#3b82f6"})

	require.Equal(t, MinBlockHeightMinutes, block.HeightMinutes)
}

func TestLayout_BeforeVisibleRangeIsNegative(t *testing.T) {
	occ := occurrenceAt("sub-1",
		time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 6, 45, 0, 0, time.UTC),
	)

	block := Layout(occ, DefaultVisibleStartHour, Palette{"sub-1": "#3b82f6"})

	require.InDelta(t, -60, block.TopOffsetMinutes, 0.001)
}

func TestLayout_DanglingSubjectFallsBackToGray(t *testing.T) {
	occ := occurrenceAt("sub-deleted",
		time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	)

	block := Layout(occ, DefaultVisibleStartHour, Palette{"sub-1": "#3b82f6"})

	require.Equal(t, FallbackColor, block.Color)
}

func TestLayout_NilPaletteNeverFails(t *testing.T) {
	occ := occurrenceAt("sub-1",
		time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	)

	block := Layout(occ, DefaultVisibleStartHour, nil)

	require.Equal(t, FallbackColor, block.Color)
}

func TestLayout_SubHourPositioning(t *testing.T) {
	occ := occurrenceAt("sub-1",
		time.Date(2026, 3, 2, 7, 45, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 8, 5, 0, 0, time.UTC),
	)

	block := Layout(occ, DefaultVisibleStartHour, nil)

	require.InDelta(t, 45, block.TopOffsetMinutes, 0.001)
	// 20 real minutes, floored to the minimum height.
	require.Equal(t, MinBlockHeightMinutes, block.HeightMinutes)
}
