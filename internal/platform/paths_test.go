package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigDirFor_LinuxXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := configDirFor("linux")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	expected := filepath.Join("/tmp/xdg", AppDirName)
	if dir != expected {
		t.Errorf("Expected %s, got %s", expected, dir)
	}
}

func TestConfigDirFor_LinuxHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")

	dir, err := configDirFor("linux")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	expected := filepath.Join("/home/tester", ".config", AppDirName)
	if dir != expected {
		t.Errorf("Expected %s, got %s", expected, dir)
	}
}

func TestConfigDirFor_Windows(t *testing.T) {
	t.Setenv("LOCALAPPDATA", "C:\\Users\\t\\AppData\\Local")

	dir, err := configDirFor(OSWindows)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.HasSuffix(dir, AppDirName) {
		t.Errorf("Expected dir to end with %s, got %s", AppDirName, dir)
	}

	t.Setenv("LOCALAPPDATA", "")
	t.Setenv("USERPROFILE", "")
	if _, err := configDirFor(OSWindows); err == nil {
		t.Error("Expected error without LOCALAPPDATA and USERPROFILE")
	}
}

func TestGetDefaultConfigPath(t *testing.T) {
	path, err := GetDefaultConfigPath()
	if err != nil {
		t.Skipf("No config dir on this machine: %v", err)
	}
	if filepath.Base(path) != ConfigFileName {
		t.Errorf("Expected file name %s, got %s", ConfigFileName, filepath.Base(path))
	}
}

func TestFindResource(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	if _, err := FindResource("closeicon.png"); err == nil {
		t.Error("Expected error for missing resource")
	}

	if err := os.WriteFile(filepath.Join(dir, "closeicon.png"), []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}
	path, err := FindResource("closeicon.png")
	if err != nil {
		t.Fatalf("Expected resource to be found, got %v", err)
	}
	if path != "closeicon.png" {
		t.Errorf("Expected working-directory path, got %s", path)
	}
}
