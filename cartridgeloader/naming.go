package cartridgeloader

import (
	"path/filepath"
	"slices"
	"strings"
)

func decideOnName(ld Loader) string {
	if ld.embedded {
		return ld.Filename
	}
	if len(strings.TrimSpace(ld.Filename)) == 0 {
		return ""
	}
	return NameFromFilename(ld.Filename)
}

// NameFromFilename converts a filename to a shortened version suitable for
// display, stripping a recognised extension.
func NameFromFilename(filename string) string {
	name := filepath.Base(filename)
	ext := strings.ToUpper(filepath.Ext(filename))
	if slices.Contains(FileExtensions[:], ext) {
		name = strings.TrimSuffix(name, filepath.Ext(filename))
	}
	return name
}
