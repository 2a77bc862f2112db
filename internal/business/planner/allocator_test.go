package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreeStarts_EmptyDay(t *testing.T) {
	free := FreeStarts(nil, Window{Start: 10, End: 17})

	assert.Equal(t, []int{10, 11, 12, 13, 14, 15}, free)
}

func TestFreeStarts_BusyHoursExcluded(t *testing.T) {
	busy := map[int]struct{}{11: {}, 12: {}}

	free := FreeStarts(busy, Window{Start: 10, End: 17})

	// 10 is blocked because 11 is busy; 11 and 12 are busy themselves.
	assert.Equal(t, []int{13, 14, 15}, free)
}

func TestFreeStarts_SecondHourMustFitWindow(t *testing.T) {
	free := FreeStarts(nil, Window{Start: 10, End: 12})
	assert.Equal(t, []int{10}, free)

	free = FreeStarts(nil, Window{Start: 10, End: 11})
	assert.Empty(t, free)
}

func TestFreeStarts_FullDayIsNotAnError(t *testing.T) {
	busy := map[int]struct{}{}
	for h := 10; h < 17; h++ {
		busy[h] = struct{}{}
	}

	free := FreeStarts(busy, Window{Start: 10, End: 17})

	assert.Empty(t, free)
}

func TestFreeStarts_Property(t *testing.T) {
	w := Window{Start: 8, End: 18}

	for mask := 0; mask < 1<<10; mask++ {
		busy := map[int]struct{}{}
		for bit := 0; bit < 10; bit++ {
			if mask&(1<<bit) != 0 {
				busy[w.Start+bit] = struct{}{}
			}
		}

		for _, h := range FreeStarts(busy, w) {
			_, firstBusy := busy[h]
			_, secondBusy := busy[h+1]

			assert.False(t, firstBusy, "mask %b returned busy hour %d", mask, h)
			assert.False(t, secondBusy, "mask %b returned hour %d with busy follow-up", mask, h)
			assert.GreaterOrEqual(t, h, w.Start)
			assert.Less(t, h+1, w.End)
		}
	}
}
