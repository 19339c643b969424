package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mrz1836/rwfile/internal/history"
)

const (
	shortIDLen    = 8
	startedLayout = "2006-01-02 15:04:05"
)

// History prints stored runs as a table.
func (o *TTYOutput) History(records []*history.Record) error {
	if len(records) == 0 {
		o.Info("No stored runs.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(o.styles.Dim).
		Headers("RUN", "STARTED", "RESULT", "WRITES", "SIZE", "ELAPSED").
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return style.Bold(true).Foreground(ColorPrimary)
			case col == 2 && records[row].Passed:
				return style.Foreground(ColorSuccess)
			case col == 2:
				return style.Foreground(ColorError)
			}
			return style
		})

	for _, rec := range records {
		t.Row(historyRow(rec)...)
	}

	_, _ = fmt.Fprintln(o.w, t.Render())
	return nil
}

func historyRow(rec *history.Record) []string {
	r := rec.Report
	result := "pass"
	if !rec.Passed {
		result = "FAIL"
	}

	return []string{
		shortID(rec.ID()),
		r.StartedAt.Local().Format(startedLayout),
		result,
		strconv.FormatInt(r.Writes, 10),
		strconv.FormatInt(r.Size, 10),
		r.Elapsed.Round(time.Millisecond).String(),
	}
}

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}
