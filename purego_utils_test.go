//go:build !js

package mediainfo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSearchPathsEnvFirst(t *testing.T) {
	t.Setenv("MEDIAINFO_TEST_FILE", "/opt/custom/libmediainfo.so")
	t.Setenv("MEDIAINFO_TEST_DIR", "/opt/sdk/lib")

	paths := searchPaths("libmediainfo.so.0", "MEDIAINFO_TEST_FILE", "MEDIAINFO_TEST_DIR")
	if len(paths) < 2 {
		t.Fatalf("searchPaths() = %v", paths)
	}
	if paths[0] != "/opt/custom/libmediainfo.so" {
		t.Errorf("paths[0] = %q, want the file override", paths[0])
	}
	if want := filepath.Join("/opt/sdk/lib", "libmediainfo.so.0"); paths[1] != want {
		t.Errorf("paths[1] = %q, want %q", paths[1], want)
	}
}

func TestSearchPathsNoEnv(t *testing.T) {
	t.Setenv("MEDIAINFO_TEST_FILE", "")
	t.Setenv("MEDIAINFO_TEST_DIR", "")

	for _, p := range searchPaths("mediainfo-bridge.wasm", "MEDIAINFO_TEST_FILE", "MEDIAINFO_TEST_DIR") {
		if filepath.Base(p) != "mediainfo-bridge.wasm" {
			t.Errorf("unexpected candidate %q", p)
		}
	}
}

func TestFirstExisting(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "libmediainfo.so")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got := firstExisting([]string{filepath.Join(dir, "missing.so"), dir, file})
	if got != file {
		t.Errorf("firstExisting() = %q, want %q", got, file)
	}
	if got := firstExisting([]string{filepath.Join(dir, "missing.so")}); got != "" {
		t.Errorf("firstExisting() = %q, want empty", got)
	}
}

func TestFindModuleRoot(t *testing.T) {
	root := findModuleRoot()
	if root == "" {
		t.Skip("not running inside a module")
	}
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Errorf("findModuleRoot() = %q has no go.mod", root)
	}
}
