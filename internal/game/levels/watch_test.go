package levels

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitForNotify(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("no reload notification")
	}
}

func TestWatchSurvivesRenameSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "campaign.yaml")
	if err := os.WriteFile(path, []byte("levels: []\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	notified := make(chan struct{}, 16)
	closer, err := Watch(path, func() {
		select {
		case notified <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer closer.Close()

	// Save the way editors do: write a temp file, rename it over the
	// original. The watched inode is replaced each time.
	saveViaRename := func(content string) {
		t.Helper()
		tmp := filepath.Join(dir, "campaign.yaml.tmp")
		if err := os.WriteFile(tmp, []byte(content), 0o600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		if err := os.Rename(tmp, path); err != nil {
			t.Fatalf("Rename: %v", err)
		}
	}

	saveViaRename("levels: []\n# first save\n")
	waitForNotify(t, notified)

	// A second save must still be seen after the inode swap.
	saveViaRename("levels: []\n# second save\n")
	waitForNotify(t, notified)
}

func TestWatchDirectoryFiltersExtensions(t *testing.T) {
	dir := t.TempDir()

	notified := make(chan struct{}, 16)
	closer, err := Watch(dir, func() {
		select {
		case notified <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer closer.Close()

	if err := os.WriteFile(filepath.Join(dir, "10-alpha.yaml"), []byte("levels: []\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	waitForNotify(t, notified)
}
