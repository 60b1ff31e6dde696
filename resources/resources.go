// Package resources builds paths for configuration and snapshot files
// under a directory named ".virtualc64". The paths are relative; the
// user's home directory is not looked up.
package resources

import "path/filepath"

// baseDir is the directory name under which all configuration and
// persisted state lives.
const baseDir = ".virtualc64"

// JoinPath joins baseDir with the given path segments, ignoring any empty
// segments.
func JoinPath(segments ...string) (string, error) {
	parts := []string{baseDir}
	for _, s := range segments {
		if s == "" {
			continue
		}
		parts = append(parts, s)
	}
	return filepath.Join(parts...), nil
}
