package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitAndShow(t *testing.T) {
	dir := setupTestEnvironment(t)

	output, err := runCLI(t, "", "config", "init")
	if err != nil {
		t.Fatalf("init failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "Created") {
		t.Errorf("Unexpected init output: %s", output)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Fatalf("config.toml not written: %v", err)
	}

	output, err = runCLI(t, "", "config", "init")
	if err != nil {
		t.Fatalf("second init failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "already exists") {
		t.Errorf("Expected already-exists warning, got: %s", output)
	}

	output, err = runCLI(t, "", "config", "show")
	if err != nil {
		t.Fatalf("show failed: %v\nOutput: %s", err, output)
	}
	if strings.Contains(output, "quercasarcomigo?") {
		t.Errorf("Answers must be masked by default, got: %s", output)
	}
	if !strings.Contains(output, "'future'") {
		t.Errorf("Expected items in output, got: %s", output)
	}

	output, err = runCLI(t, "", "config", "show", "--show-secrets")
	if err != nil {
		t.Fatalf("show failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "quercasarcomigo?") {
		t.Errorf("Expected answers with --show-secrets, got: %s", output)
	}
}

func TestConfigShowDefaults(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "", "config", "show")
	if err != nil {
		t.Fatalf("show failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "built-in defaults") {
		t.Errorf("Expected defaults source, got: %s", output)
	}
}

func TestConfigInvalidFileFailsReveal(t *testing.T) {
	dir := setupTestEnvironment(t)
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[[items]]\nid = \"honeymoon\"\nsecret = \"x\"\n"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := runCLI(t, "", "reveal", "list"); err == nil {
		t.Fatal("Expected reveal list to fail on an invalid config")
	}
}
