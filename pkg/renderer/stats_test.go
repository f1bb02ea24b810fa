package renderer

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestAverageLuminance(t *testing.T) {
	// Top-left red, top-right green, bottom-left blue, bottom-right black
	// Expected average: (0.2126 + 0.7152 + 0.0722 + 0.0) / 4 = 0.25
	fb := NewFramebuffer(2, 2)
	copy(fb.Pixels, []uint8{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 0, 0, 0,
	})

	avgLum := fb.AverageLuminance()
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestAverageLuminance_White(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	copy(fb.Pixels, []uint8{255, 255, 255})

	if avgLum := fb.AverageLuminance(); avgLum < 0.9999 || avgLum > 1.0001 {
		t.Errorf("Expected average luminosity 1.0, got %f", avgLum)
	}

	if avgLum := NewFramebuffer(0, 0).AverageLuminance(); avgLum != 0 {
		t.Errorf("Expected 0 for empty framebuffer, got %f", avgLum)
	}
}

func TestRenderStats_SamplesPerSecond(t *testing.T) {
	stats := RenderStats{TotalSamples: 1000, Duration: 2 * time.Second}
	if got := stats.SamplesPerSecond(); got != 500 {
		t.Errorf("Expected 500 rays/s, got %f", got)
	}
	if got := (RenderStats{TotalSamples: 10}).SamplesPerSecond(); got != 0 {
		t.Errorf("Expected 0 rays/s without duration, got %f", got)
	}
}

func TestRenderStats_TablePercentages(t *testing.T) {
	stats := RenderStats{
		Width:           4,
		Height:          8,
		SamplesPerPixel: 16,
		Partitions: []PartitionStats{
			{Rows: RowRange{0, 6}, Duration: time.Millisecond},
			{Rows: RowRange{6, 8}, Duration: time.Millisecond},
		},
	}

	var buf bytes.Buffer
	stats.WriteTable(&buf)
	out := buf.String()
	for _, want := range []string{"0-5", "6-7", "75.0 %", "25.0 %", "16 spp"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in stats table:\n%s", want, out)
		}
	}
}
