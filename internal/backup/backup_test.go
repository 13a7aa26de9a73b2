package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[location]\nlatitude = 29.6585\nlongitude = -95.7336\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestCreateBackup(t *testing.T) {
	path := setupTestConfig(t)

	mgr := NewManager(path)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	want, _ := os.ReadFile(path)
	got, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("backup file was not created: %v", err)
	}
	if string(got) != string(want) {
		t.Error("backup content differs from the config")
	}
	if filepath.Dir(backupPath) != mgr.GetBackupDir() {
		t.Errorf("backup written to %s, want %s", filepath.Dir(backupPath), mgr.GetBackupDir())
	}
}

func TestCreateBackup_Errors(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.toml"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected an error for a missing config")
	}

	bad := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(bad, []byte("latitude = = 1"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewManager(bad).CreateBackup(); err == nil {
		t.Error("expected an error for invalid TOML")
	}
}

func TestUniqueNames(t *testing.T) {
	path := setupTestConfig(t)
	mgr := NewManager(path)
	fixed := time.Date(2025, 3, 10, 9, 30, 15, 0, time.UTC)
	mgr.now = func() time.Time { return fixed }

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		p, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup %d failed: %v", i, err)
		}
		if seen[p] {
			t.Fatalf("duplicate backup path %s", p)
		}
		seen[p] = true
	}

	wantNames := []string{"config-20250310-0930.toml", "config-20250310-093015.toml", "config-20250310-093015-1.toml"}
	for _, name := range wantNames {
		if !seen[filepath.Join(mgr.GetBackupDir(), name)] {
			t.Errorf("missing backup %s", name)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Errorf("listed %d backups, want 3", len(backups))
	}
}

func TestRotateBackups(t *testing.T) {
	path := setupTestConfig(t)
	mgr := NewManager(path)

	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < MaxBackups+3; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		mgr.now = func() time.Time { return ts }
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup %d failed: %v", i, err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != MaxBackups {
		t.Fatalf("kept %d backups, want %d", len(backups), MaxBackups)
	}
	newest := start.Add(time.Duration(MaxBackups+2) * time.Hour)
	if !backups[0].Timestamp.Equal(newest) {
		t.Errorf("newest backup = %v, want %v", backups[0].Timestamp, newest)
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Error("backups should be sorted newest first")
		}
	}
}

func TestListBackups_Empty(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "config.toml"))
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}
