package browse

import (
	"os"
	"sort"
	"strings"
)

// Subdirs returns the names of the immediate, non-hidden subdirectories of
// path, sorted ascending by byte order. An unreadable path yields nil;
// callers treat that the same as a directory with nothing in it.
func Subdirs(path string) []string {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		dirs = append(dirs, name)
	}

	sort.Strings(dirs)
	return dirs
}

// ShortenPath abbreviates the home directory prefix to ~ for display.
func ShortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if rel, ok := strings.CutPrefix(path, home+string(os.PathSeparator)); ok {
		return "~/" + rel
	}
	return path
}
