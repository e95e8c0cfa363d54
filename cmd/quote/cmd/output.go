package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"casual-leasing/internal/domain/pricing"
	resdto "casual-leasing/internal/handler/dto/response"
	"casual-leasing/internal/usecase/queries"
)

func printJSON(w io.Writer, view *queries.QuoteView) error {
	body := resdto.FromQuoteView(view)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(body)
}

func printTable(w io.Writer, view *queries.QuoteView) {
	fmt.Fprintln(w, "┌─────────────────────────────────────────────────────────────────────────┐")
	fmt.Fprintf(w, "│ %-71s │\n", fmt.Sprintf("QUOTE %s to %s",
		view.StartDate.Format(pricing.DateLayout), view.EndDate.Format(pricing.DateLayout)))
	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")

	for _, d := range view.Days {
		fmt.Fprintf(w, "│ %-10s %-3s %-40s %15s │\n",
			d.Date.Format(pricing.DateLayout),
			d.Date.Weekday().String()[:3],
			truncate(d.Label, 40),
			d.Rate.StringFixed(2))
	}

	if len(view.Segments) > 1 {
		fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")
		for _, s := range view.Segments {
			desc := fmt.Sprintf("%s (%d days, %d weeks)", s.Source.Name(), s.Days, s.WeeksCharged)
			fmt.Fprintf(w, "│   └─ %-50s %15s │\n", truncate(desc, 50), s.Amount.StringFixed(2))
		}
	}

	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")
	fmt.Fprintf(w, "│ %-55s %15s │\n", "SUBTOTAL", view.Subtotal.StringFixed(2))
	fmt.Fprintf(w, "│ %-55s %15s │\n", fmt.Sprintf("GST (%s%%)", view.GSTRate.Shift(2).String()), view.GST.StringFixed(2))
	fmt.Fprintf(w, "│ %-55s %15s │\n", "TOTAL", view.Total.StringFixed(2))
	fmt.Fprintln(w, "└─────────────────────────────────────────────────────────────────────────┘")
	fmt.Fprintf(w, "\nWeekdays: %d  Weekend days: %d\n", view.WeekdayCount, view.WeekendCount)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
