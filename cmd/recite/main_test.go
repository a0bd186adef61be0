package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/recite/internal/store"
)

func TestRestoreBoolValuePrecedence(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "recite.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if cerr := st.Close(); cerr != nil {
			t.Errorf("failed to close store: %v", cerr)
		}
	})

	ctx := context.Background()
	if err := st.SetValue(ctx, store.KeyIgnoreCase, "true"); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	cmd := &cobra.Command{}
	var flagValue bool
	cmd.Flags().BoolVar(&flagValue, "ignore-case", false, "")

	// Store value applies when neither flag nor config set one.
	target := false
	restoreBoolValue(ctx, cmd, st, "ignore-case", store.KeyIgnoreCase, &target, nil)
	if !target {
		t.Fatalf("expected stored value to apply")
	}

	// Config value wins over the store.
	target = false
	cfgValue := false
	restoreBoolValue(ctx, cmd, st, "ignore-case", store.KeyIgnoreCase, &target, &cfgValue)
	if target {
		t.Fatalf("expected config value to win over store")
	}

	// Explicit flag wins over the store.
	if err := cmd.Flags().Set("ignore-case", "false"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	target = false
	restoreBoolValue(ctx, cmd, st, "ignore-case", store.KeyIgnoreCase, &target, nil)
	if target {
		t.Fatalf("expected explicit flag to win over store")
	}
}
