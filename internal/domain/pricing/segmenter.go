package pricing

import "time"

// SplitSegments groups consecutive days with the same source. Order follows
// the input; non-adjacent runs of the same source stay separate.
func SplitSegments(days []DayAssignment) []Segment {
	var segments []Segment
	for _, day := range days {
		last := len(segments) - 1
		if last >= 0 && segments[last].Source.Equal(day.Source) {
			segments[last].Days = append(segments[last].Days, day.Date)
			continue
		}
		segments = append(segments, Segment{
			Source: day.Source,
			Days:   []time.Time{day.Date},
		})
	}
	return segments
}
