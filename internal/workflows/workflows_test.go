package workflows

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/PolarWolf314/keepsake/internal/configs"
	kerrors "github.com/PolarWolf314/keepsake/internal/errors"
	"github.com/PolarWolf314/keepsake/internal/history"
	"github.com/PolarWolf314/keepsake/internal/preferences"
	"github.com/PolarWolf314/keepsake/internal/reveal"
)

func useTempSettings(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	original := configs.KeepsakeSettings
	configs.KeepsakeSettings = &configs.Settings{ConfigDir: tempDir, DataDir: tempDir}
	t.Cleanup(func() {
		configs.KeepsakeSettings = original
	})
	return tempDir
}

// attempts returns a Next func that replays answers, then reports no input.
func attempts(answers ...string) func(string) (string, error) {
	return func(string) (string, error) {
		if len(answers) == 0 {
			return "", kerrors.ErrNoInput
		}
		next := answers[0]
		answers = answers[1:]
		return next, nil
	}
}

func TestUnlockRetriesUntilCorrect(t *testing.T) {
	useTempSettings(t)
	ctx := context.Background()

	gate, _, err := LoadGate(ctx)
	if err != nil {
		t.Fatalf("LoadGate failed: %v", err)
	}

	var wrong []int
	result, err := Unlock(ctx, gate, UnlockOptions{
		Item:        "future",
		Next:        attempts("quer casar com outra?", "nao", "  Quer Casar Comigo?  "),
		OnIncorrect: func(n int) { wrong = append(wrong, n) },
	})
	if err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}
	if !result.Unlocked {
		t.Fatal("Expected item to be unlocked")
	}
	if result.Attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", result.Attempts)
	}
	if !reflect.DeepEqual(wrong, []int{1, 2}) {
		t.Errorf("OnIncorrect calls = %v", wrong)
	}
	if result.Value != "Sim, para a vida toda" {
		t.Errorf("Value = %q", result.Value)
	}

	entries, err := history.ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 3 || entries[2].Operation != history.OpUnlock {
		t.Errorf("Unexpected history: %+v", entries)
	}
}

func TestUnlockGivesUpWhenInputEnds(t *testing.T) {
	useTempSettings(t)
	ctx := context.Background()
	gate, _, _ := LoadGate(ctx)

	result, err := Unlock(ctx, gate, UnlockOptions{Item: "future", Next: attempts("nope")})
	if err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}
	if result.Unlocked {
		t.Error("Expected item to stay locked")
	}
	if result.Value != "" {
		t.Errorf("Locked result must not carry a value, got %q", result.Value)
	}
	if gate.IsUnlocked(reveal.Future) {
		t.Error("Gate must stay locked")
	}
}

func TestUnlockAlreadyUnlocked(t *testing.T) {
	useTempSettings(t)
	ctx := context.Background()
	gate, _, _ := LoadGate(ctx)
	if _, err := gate.RequestUnlock(reveal.Future, "quercasarcomigo?"); err != nil {
		t.Fatalf("RequestUnlock failed: %v", err)
	}

	result, err := Unlock(ctx, gate, UnlockOptions{Item: "future", Next: attempts()})
	if err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}
	if !result.Unlocked || result.Attempts != 0 {
		t.Errorf("Unexpected result: %+v", result)
	}
}

func TestUnlockUnknownAndUnconfigured(t *testing.T) {
	ctx := context.Background()
	gate := reveal.NewGate(reveal.Item{ID: reveal.Future, RequiredSecret: "x"})

	if _, err := Unlock(ctx, gate, UnlockOptions{Item: "honeymoon", Next: attempts()}); !errors.Is(err, kerrors.ErrUnknownItem) {
		t.Errorf("Expected ErrUnknownItem, got %v", err)
	}
	if _, err := Unlock(ctx, gate, UnlockOptions{Item: "wedding-date", Next: attempts()}); !errors.Is(err, kerrors.ErrItemNotConfigured) {
		t.Errorf("Expected ErrItemNotConfigured, got %v", err)
	}
}

func TestUnlockHonoursCancellation(t *testing.T) {
	useTempSettings(t)
	ctx, cancel := context.WithCancel(context.Background())
	gate, _, _ := LoadGate(ctx)

	_, err := Unlock(ctx, gate, UnlockOptions{
		Item: "future",
		Next: func(string) (string, error) {
			cancel()
			return "wrong", nil
		},
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
}

func TestReveal(t *testing.T) {
	useTempSettings(t)
	ctx := context.Background()
	gate, _, _ := LoadGate(ctx)
	if _, err := gate.RequestUnlock(reveal.WeddingDate, "PRIMAVERA"); err != nil {
		t.Fatalf("RequestUnlock failed: %v", err)
	}

	statuses := Reveal(ctx, gate)
	if len(statuses) != len(reveal.KnownItems) {
		t.Fatalf("Expected %d statuses, got %d", len(reveal.KnownItems), len(statuses))
	}
	for _, s := range statuses {
		if s.ID == reveal.WeddingDate {
			if !s.Unlocked || s.Display == reveal.Placeholder {
				t.Errorf("Expected wedding-date to be shown: %+v", s)
			}
			continue
		}
		if s.Unlocked || s.Display != reveal.Placeholder {
			t.Errorf("Expected %s to be redacted: %+v", s.ID, s)
		}
		if s.Hint == "" {
			t.Errorf("Expected %s to carry a hint", s.ID)
		}
	}
}

func TestDestinationsPersistAcrossOpens(t *testing.T) {
	useTempSettings(t)
	ctx := context.Background()

	result, err := AddDestination(ctx, "  Japan ")
	if err != nil {
		t.Fatalf("AddDestination failed: %v", err)
	}
	if !result.Added || !result.Changed || result.List.Selected != "Japan" {
		t.Fatalf("Unexpected result: %+v", result)
	}

	result, err = AddDestination(ctx, "Japan")
	if err != nil {
		t.Fatalf("AddDestination failed: %v", err)
	}
	if result.Added {
		t.Error("Second add must not append")
	}

	result, err = SelectDestination(ctx, "Europe")
	if err != nil {
		t.Fatalf("SelectDestination failed: %v", err)
	}
	if !result.Changed {
		t.Error("Expected select to change the selection")
	}

	listed, err := ListDestinations(ctx)
	if err != nil {
		t.Fatalf("ListDestinations failed: %v", err)
	}
	want := preferences.List{
		Options:  []string{"Africa", "Europe", "Disney", "Asia", "Japan"},
		Selected: "Europe",
	}
	if !reflect.DeepEqual(listed.List, want) {
		t.Errorf("ListDestinations = %+v, want %+v", listed.List, want)
	}

	entries, err := History(ctx, HistoryOptions{Operation: history.OpAddOption})
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 add-option entries, got %d", len(entries))
	}
}

func TestSelectDestinationUnknownIsIgnored(t *testing.T) {
	dir := useTempSettings(t)
	ctx := context.Background()

	result, err := SelectDestination(ctx, "Antarctica")
	if err != nil {
		t.Fatalf("SelectDestination failed: %v", err)
	}
	if result.Changed || result.List.Selected != "" {
		t.Errorf("Unexpected result: %+v", result)
	}
	if _, err := os.Stat(filepath.Join(dir, "preferences.toml")); !os.IsNotExist(err) {
		t.Error("Ignored select must not write preferences")
	}
}

func TestAddDestinationBlankWritesNothing(t *testing.T) {
	dir := useTempSettings(t)

	result, err := AddDestination(context.Background(), "   ")
	if err != nil {
		t.Fatalf("AddDestination failed: %v", err)
	}
	if result.Changed {
		t.Error("Blank name must not change anything")
	}
	if _, err := os.Stat(filepath.Join(dir, "preferences.toml")); !os.IsNotExist(err) {
		t.Error("Blank add must not write preferences")
	}
}

func TestListDestinationsRecoversCorruptFile(t *testing.T) {
	dir := useTempSettings(t)
	if err := os.WriteFile(filepath.Join(dir, "preferences.toml"), []byte(`honeymoonOptions = "[oops"`), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	result, err := ListDestinations(context.Background())
	if err != nil {
		t.Fatalf("ListDestinations failed: %v", err)
	}
	if !result.Recovered {
		t.Error("Expected Recovered to be set")
	}
	if !reflect.DeepEqual(result.List.Options, preferences.DefaultOptions()) {
		t.Errorf("Options = %v, want defaults", result.List.Options)
	}
}

func TestInitConfig(t *testing.T) {
	useTempSettings(t)
	ctx := context.Background()

	result, err := InitConfig(ctx, InitOptions{})
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if result.Overwritten {
		t.Error("First init must not report overwrite")
	}
	if _, err := os.Stat(result.ConfigPath); err != nil {
		t.Fatalf("Config not written: %v", err)
	}

	if _, err := InitConfig(ctx, InitOptions{}); !errors.Is(err, kerrors.ErrConfigExists) {
		t.Fatalf("Expected ErrConfigExists, got %v", err)
	}

	result, err = InitConfig(ctx, InitOptions{Force: true})
	if err != nil {
		t.Fatalf("InitConfig with force failed: %v", err)
	}
	if !result.Overwritten {
		t.Error("Forced init must report overwrite")
	}
}

func TestHistoryLimit(t *testing.T) {
	useTempSettings(t)
	ctx := context.Background()

	for _, name := range []string{"Africa", "Europe", "Asia"} {
		if _, err := SelectDestination(ctx, name); err != nil {
			t.Fatalf("SelectDestination failed: %v", err)
		}
	}

	entries, err := History(ctx, HistoryOptions{Limit: 2})
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Destination != "Europe" || entries[1].Destination != "Asia" {
		t.Errorf("Expected the most recent entries, got %+v", entries)
	}
}
