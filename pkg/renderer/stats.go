package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64
	TotalSamples    int // Camera rays traced
	Duration        time.Duration
	Partitions      []PartitionStats
}

// PartitionStats describes the work done by one worker
type PartitionStats struct {
	Rows     RowRange
	Duration time.Duration
}

// SamplesPerSecond returns camera rays traced per second of wall time
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

// WriteTable prints one row per worker partition followed by a totals footer
func (s RenderStats) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "% of frame", "Render time"})
	for i, p := range s.Partitions {
		table.Append([]string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d-%d", p.Rows.Start, p.Rows.End-1),
			fmt.Sprintf("%02.1f %%", 100*float64(p.Rows.Rows())/float64(max(1, s.Height))),
			p.Duration.Round(time.Millisecond).String(),
		})
	}
	table.SetFooter([]string{
		fmt.Sprintf("%dx%d", s.Width, s.Height),
		fmt.Sprintf("%d spp", s.SamplesPerPixel),
		fmt.Sprintf("%.0f rays/s", s.SamplesPerSecond()),
		s.Duration.Round(time.Millisecond).String(),
	})
	table.Render()
}
