package cmd

import (
	"strings"
	"testing"
)

func TestLogEmpty(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "", "log")
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "no history yet") {
		t.Errorf("Unexpected output: %s", output)
	}
}

func TestLogShowsChanges(t *testing.T) {
	setupTestEnvironment(t)

	if _, err := runCLI(t, "", "destinations", "add", "Japan"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := runCLI(t, "wrong\n", "reveal", "unlock", "future"); err != nil {
		t.Fatalf("unlock failed: %v", err)
	}

	output, err := runCLI(t, "", "log")
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "add-option") || !strings.Contains(output, "'Japan' (new)") {
		t.Errorf("Expected add-option entry, got: %s", output)
	}
	if !strings.Contains(output, "unlock-failed") {
		t.Errorf("Expected unlock-failed entry, got: %s", output)
	}
	if strings.Contains(output, "wrong") {
		t.Errorf("Attempts must not be logged, got: %s", output)
	}

	output, err = runCLI(t, "", "log", "--op", "add-option", "-n", "1")
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}
	if strings.Count(strings.TrimSpace(output), "\n") != 0 {
		t.Errorf("Expected a single entry, got: %s", output)
	}
}
