// Package stats contains statistics calculations and reporting.
package stats

import (
	"context"
	"fmt"
	"io"

	"github.com/verte-zerg/recite/internal/model"
	"github.com/verte-zerg/recite/internal/session"
	"github.com/verte-zerg/recite/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Sessions []model.SessionAggregate
}

// BuildReport loads and prepares session data for rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	sessions, err := st.ListSessions(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(sessions) > cfg.Last {
		sessions = sessions[len(sessions)-cfg.Last:]
	}
	return Report{Sessions: sessions}, nil
}

// RenderReport prints the summary, the per-session table, and the WPM and
// accuracy sparklines.
func RenderReport(w io.Writer, report Report, cfg model.StatsConfig) error {
	if len(report.Sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	if err := renderSummary(w, report.Sessions); err != nil {
		return err
	}
	if err := renderTable(w, report.Sessions); err != nil {
		return err
	}
	return renderCurves(w, report.Sessions, cfg.CurveWindow)
}

func renderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	var totalAcc, totalWPM float64
	bestWPM := 0
	bestAcc := 0
	totalSec := 0
	for _, s := range sessions {
		wpm := session.WPM(s.WordsTyped, s.DurationSec)
		totalWPM += float64(wpm)
		totalAcc += float64(s.Accuracy)
		totalSec += s.DurationSec
		if wpm > bestWPM {
			bestWPM = wpm
		}
		if s.Accuracy > bestAcc {
			bestAcc = s.Accuracy
		}
	}
	count := float64(len(sessions))
	lines := []string{
		"Summary",
		fmt.Sprintf("Sessions: %d", len(sessions)),
		fmt.Sprintf("Avg Accuracy: %.1f%%", totalAcc/count),
		fmt.Sprintf("Best Accuracy: %d%%", bestAcc),
		fmt.Sprintf("Avg WPM: %.1f", totalWPM/count),
		fmt.Sprintf("Best WPM: %d", bestWPM),
		fmt.Sprintf("Practice Time: %s", session.FormatTime(totalSec)),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, sessions []model.SessionAggregate) error {
	headers := []string{"Ended", "Words", "Typed", "Accuracy", "WPM", "Time"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			s.EndedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", s.TotalWords),
			fmt.Sprintf("%d", s.WordsTyped),
			fmt.Sprintf("%d%%", s.Accuracy),
			fmt.Sprintf("%d", session.WPM(s.WordsTyped, s.DurationSec)),
			session.FormatTime(s.DurationSec),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func renderCurves(w io.Writer, sessions []model.SessionAggregate, window int) error {
	if len(sessions) < 2 {
		return nil
	}
	wpms := make([]float64, len(sessions))
	accs := make([]float64, len(sessions))
	for i, s := range sessions {
		wpms[i] = float64(session.WPM(s.WordsTyped, s.DurationSec))
		accs[i] = float64(s.Accuracy)
	}
	wpms = MovingAverage(wpms, window)
	accs = MovingAverage(accs, window)

	width := len(sessions)
	if isTerminal(w) {
		if limit := terminalWidth() - 12; limit > 0 && width > limit {
			width = limit
		}
	}
	lines := []string{
		fmt.Sprintf("WPM      %s", Sparkline(Resample(wpms, width))),
		fmt.Sprintf("Accuracy %s", Sparkline(Resample(accs, width))),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
