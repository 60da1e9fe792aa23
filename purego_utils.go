//go:build !js

// Shared library discovery for the purego and wazero backends.

package mediainfo

import (
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
)

// searchPaths returns candidate locations for a file named name, highest
// priority first. envFile names a variable holding a full path and envDir
// one holding a directory.
func searchPaths(name, envFile, envDir string) []string {
	var paths []string

	// Environment variable overrides (highest priority)
	if envPath := os.Getenv(envFile); envPath != "" {
		paths = append(paths, envPath)
	}
	if envPath := os.Getenv(envDir); envPath != "" {
		paths = append(paths, filepath.Join(envPath, name))
	}

	// Search relative to executable location
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, name),
			filepath.Join(exeDir, "..", "lib", name),
			filepath.Join(exeDir, "..", "..", "build", name),
		)
	}

	// Search relative to working directory (with parent traversal)
	if wd, err := os.Getwd(); err == nil {
		paths = append(paths,
			filepath.Join(wd, "build", name),
			filepath.Join(wd, "..", "build", name),
			filepath.Join(wd, "..", "..", "build", name),
		)
	}

	// Search relative to source root (uses runtime.Caller - works in IDE/tests)
	if sourceRoot := findSourceRoot(); sourceRoot != "" {
		paths = append(paths, filepath.Join(sourceRoot, "build", name))
	}

	// Search relative to module root (find go.mod from cwd)
	if moduleRoot := findModuleRoot(); moduleRoot != "" {
		paths = append(paths, filepath.Join(moduleRoot, "build", name))
	}

	return paths
}

// firstExisting returns the first path that names a regular file.
func firstExisting(paths []string) string {
	for _, p := range paths {
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			return p
		}
	}
	return ""
}

// findSourceRoot returns the directory holding this package's sources, as
// recorded at build time. It is empty for binaries built with -trimpath.
func findSourceRoot() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok || !filepath.IsAbs(file) {
		return ""
	}
	dir := filepath.Dir(file)
	if _, err := os.Stat(dir); err != nil {
		return ""
	}
	return dir
}

// findModuleRoot walks up the directory tree from the current working directory
// to find the module root (directory containing go.mod).
func findModuleRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

func logSearch(what string, paths []string, found string) {
	if found == "" {
		Logger().Debug("not found", zap.String("what", what), zap.Strings("searched", paths))
		return
	}
	Logger().Debug("found", zap.String("what", what), zap.String("path", found))
}
