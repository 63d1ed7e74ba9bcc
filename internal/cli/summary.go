package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/Sixteen1-6/ParkingLot/internal/domain"
	"github.com/Sixteen1-6/ParkingLot/internal/report"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	openStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	occupiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	labelStyle    = lipgloss.NewStyle().Faint(true)
)

// printSummary writes the detection result to the terminal. It runs before
// the report listener starts, so a bind failure still leaves the counts on
// screen.
func printSummary(w io.Writer, stats domain.DetectionStats) {
	fmt.Fprintln(w, titleStyle.Render("Detection complete"))
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("Open:"), openStyle.Render(fmt.Sprintf("%d", stats.Open)))
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("Occupied:"), occupiedStyle.Render(fmt.Sprintf("%d", stats.Occupied)))
	fmt.Fprintf(w, "  %s %d\n", labelStyle.Render("Total:"), stats.Total)
	fmt.Fprintf(w, "  %s %s%%\n", labelStyle.Render("Occupancy:"), report.FormatPercent(stats))
}
