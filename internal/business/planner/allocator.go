package planner

// Window is a half-open working-hour range [Start, End).
type Window struct {
	Start int
	End   int
}

// sessionHours is the fixed placement granularity: a session occupies its
// start hour and the following hour.
const sessionHours = 2

// FreeStarts returns the start hours on which a two-hour session fits inside
// the window without touching any busy hour. An empty result means the day
// has no capacity, which callers must treat as a normal outcome.
func FreeStarts(busy map[int]struct{}, w Window) []int {
	var res []int

	for h := w.Start; h+1 < w.End; h++ {
		if _, ok := busy[h]; ok {
			continue
		}
		if _, ok := busy[h+1]; ok {
			continue
		}
		res = append(res, h)
	}

	return res
}
