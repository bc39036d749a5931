package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"advent/internal/forest"
	"advent/internal/grid"
	"advent/internal/runner"
	"advent/internal/store"
)

var (
	primary = lipgloss.Color("#7D56F4")
	success = lipgloss.Color("#04B575")
	danger  = lipgloss.Color("#FF5F87")
	muted   = lipgloss.Color("#626262")

	titleStyle   = lipgloss.NewStyle().Foreground(primary).Bold(true)
	answerStyle  = lipgloss.NewStyle().Foreground(success).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(danger)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	visibleStyle = lipgloss.NewStyle().Foreground(success)
	bestStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true).Underline(true)
)

// printResults writes one heading per day followed by its parts.
func printResults(w io.Writer, results []runner.Result) {
	lastDay := 0
	for _, res := range results {
		if res.Day != lastDay {
			heading := fmt.Sprintf("Day %d", res.Day)
			if res.Title != "" {
				heading += ": " + res.Title
			}
			fmt.Fprintln(w, titleStyle.Render(heading))
			lastDay = res.Day
		}
		if res.Err != nil {
			fmt.Fprintf(w, "  part %d  %s\n", res.Part, errorStyle.Render("error: "+res.Err.Error()))
			continue
		}
		fmt.Fprintf(w, "  part %d  %s  %s\n", res.Part, answerStyle.Render(res.Answer),
			mutedStyle.Render(res.Elapsed.Round(time.Microsecond).String()))
	}
}

func printHistory(w io.Writer, day int, entries []store.Entry) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Day %d history", day)))
	if len(entries) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  no recorded runs"))
		return
	}
	for _, e := range entries {
		result := answerStyle.Render(e.Answer)
		if e.Failed() {
			result = errorStyle.Render("error: " + e.Error)
		}
		fmt.Fprintf(w, "  %s  part %d  %-7s  %s  %s\n",
			mutedStyle.Render(e.CreatedAt.Format("2006-01-02 15:04:05")),
			e.Part, e.Source, result, mutedStyle.Render(e.ID[:min(8, len(e.ID))]))
	}
}

func printNote(w io.Writer, msg string) {
	fmt.Fprintln(w, mutedStyle.Render(msg))
}

// renderForest draws heights with visible trees highlighted and the best
// scenic spot marked.
func renderForest(heights *grid.Grid[uint8], visible *grid.BoolGrid, best forest.Spot) string {
	var b strings.Builder
	for y := 0; y < heights.Height(); y++ {
		for x := 0; x < heights.Width(); x++ {
			h, _ := heights.Get(x, y)
			cell := fmt.Sprint(h)
			seen, _ := visible.Get(x, y)
			switch {
			case x == best.X && y == best.Y && best.Score > 0:
				cell = bestStyle.Render(cell)
			case seen:
				cell = visibleStyle.Render(cell)
			default:
				cell = mutedStyle.Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
