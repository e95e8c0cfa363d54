package pricing

import "time"

// ResolveDays assigns a rate source to every calendar day in [start, end].
//
// Records are applied in the order given and the first record covering a
// day keeps it. Callers that care about overlapping seasons must supply
// records in their intended precedence order.
func ResolveDays(start, end time.Time, seasonal []SeasonalRate) []DayAssignment {
	start, end = NormalizeDate(start), NormalizeDate(end)
	if start.After(end) {
		return nil
	}

	days := make([]DayAssignment, 0, DaysInclusive(start, end))
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, DayAssignment{Date: d, Source: BaseSource()})
	}

	loc := start.Location()
	for i := range seasonal {
		rec := &seasonal[i]
		from := maxDate(start, inLocation(rec.StartDate, loc))
		to := minDate(end, inLocation(rec.EndDate, loc))
		if from.After(to) {
			continue
		}

		for j := range days {
			if days[j].Source.IsSeasonal() {
				continue
			}
			if days[j].Date.Before(from) || days[j].Date.After(to) {
				continue
			}
			days[j].Source = SeasonalSource(rec)
		}
	}

	return days
}
