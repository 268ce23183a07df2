// Package statschart draws the dashboard counts as a bar chart.
package statschart

import (
	"fmt"
	"io"

	"github.com/dalemusser/homestay/internal/app/system/stats"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Labels are the x-axis categories, in display order.
var Labels = []string{"Bookings", "Active hosts", "Pending responses"}

// Bar builds the chart for s.
func Bar(s stats.Stats) *charts.Bar {
	bar := charts.NewBar()

	subtitle := "Not loaded yet"
	if s.Fetched() {
		subtitle = "Updated " + s.UpdatedAt.Format("2 Jan 2006 15:04")
	}
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Dashboard",
			Width:     "100%",
			Height:    "320px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Homestay activity",
			Subtitle: subtitle,
		}),
	)

	bar.SetXAxis(Labels).AddSeries("Count", []opts.BarData{
		{Name: Labels[0], Value: s.TotalBookings},
		{Name: Labels[1], Value: s.ActiveHosts},
		{Name: Labels[2], Value: s.PendingResponses},
	})
	return bar
}

// Render writes the chart for s as a standalone HTML page.
func Render(w io.Writer, s stats.Stats) error {
	if err := Bar(s).Render(w); err != nil {
		return fmt.Errorf("render stats chart: %w", err)
	}
	return nil
}
