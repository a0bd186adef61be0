package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/recite/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "recite.db")
	st, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestKVRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := st.GetValue(ctx, KeyReference); err != nil || ok {
		t.Fatalf("expected no value yet, got ok=%v err=%v", ok, err)
	}
	if err := st.SetValue(ctx, KeyReference, "to be or not to be"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if err := st.SetValue(ctx, KeyReference, "updated text"); err != nil {
		t.Fatalf("overwrite value: %v", err)
	}
	value, ok, err := st.GetValue(ctx, KeyReference)
	if err != nil {
		t.Fatalf("get value: %v", err)
	}
	if !ok || value != "updated text" {
		t.Fatalf("unexpected value: ok=%v %q", ok, value)
	}
}

func TestInsertAndListSessions(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Unix(0, 0).UTC()
	for i := 0; i < 3; i++ {
		start := base.Add(time.Duration(i) * time.Minute)
		lang := "en"
		if i == 2 {
			lang = "es"
		}
		stats := model.SessionStats{
			StartedAt:   start,
			EndedAt:     start.Add(45 * time.Second),
			Lang:        lang,
			IgnoreCase:  true,
			TotalWords:  20,
			WordsTyped:  15 + i,
			Accuracy:    70 + i,
			DurationSec: 45,
		}
		if _, err := st.InsertSession(ctx, stats); err != nil {
			t.Fatalf("insert session: %v", err)
		}
	}

	all, err := st.ListSessions(ctx, model.StatsConfig{})
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(all))
	}
	if all[0].Accuracy != 70 || all[2].Accuracy != 72 {
		t.Fatalf("unexpected order: %+v", all)
	}

	english, err := st.ListSessions(ctx, model.StatsConfig{Lang: "en"})
	if err != nil {
		t.Fatalf("list en sessions: %v", err)
	}
	if len(english) != 2 {
		t.Fatalf("expected 2 en sessions, got %d", len(english))
	}

	since := base.Add(2 * time.Minute)
	recent, err := st.ListSessions(ctx, model.StatsConfig{Since: &since})
	if err != nil {
		t.Fatalf("list recent sessions: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected 1 recent session, got %d", len(recent))
	}
}
