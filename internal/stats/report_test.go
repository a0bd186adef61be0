package stats

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/recite/internal/model"
	"github.com/verte-zerg/recite/internal/store"
)

func seedStore(t *testing.T, count int) *store.Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "recite.db")
	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	base := time.Unix(0, 0).UTC()
	for i := 0; i < count; i++ {
		start := base.Add(time.Duration(i) * time.Minute)
		stats := model.SessionStats{
			StartedAt:   start,
			EndedAt:     start.Add(30 * time.Second),
			Lang:        "en",
			TotalWords:  10,
			WordsTyped:  8 + i,
			Accuracy:    80 + i,
			DurationSec: 30,
		}
		if _, err := st.InsertSession(ctx, stats); err != nil {
			t.Fatalf("insert session: %v", err)
		}
	}
	return st
}

func TestBuildReportLimitsToLast(t *testing.T) {
	st := seedStore(t, 4)
	report, err := BuildReport(context.Background(), st, model.StatsConfig{Last: 2})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(report.Sessions))
	}
	if report.Sessions[0].Accuracy != 82 || report.Sessions[1].Accuracy != 83 {
		t.Fatalf("unexpected sessions kept: %+v", report.Sessions)
	}
}

func TestRenderReport(t *testing.T) {
	st := seedStore(t, 3)
	report, err := BuildReport(context.Background(), st, model.StatsConfig{CurveWindow: 2})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	var buf bytes.Buffer
	if err := RenderReport(&buf, report, model.StatsConfig{CurveWindow: 2}); err != nil {
		t.Fatalf("render report: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Summary", "Sessions: 3", "Best Accuracy: 82%", "Ended", "WPM", "Accuracy"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderReport(&buf, Report{}, model.StatsConfig{}); err != nil {
		t.Fatalf("render report: %v", err)
	}
	if !strings.Contains(buf.String(), "No sessions found.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
