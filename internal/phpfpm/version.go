package phpfpm

import (
	"path"
	"sort"
	"strings"

	"github.com/valetgo/valet/internal/config"
)

// CurrentVersion resolves the active PHP version. A pinned version (written
// by SwitchVersion) takes precedence unless forceReal is set, in which case
// the version is derived from the system php symlink.
func (m *Manager) CurrentVersion(forceReal bool) (string, error) {
	if !forceReal {
		if pinned, err := m.fs.Get(config.PinPath()); err == nil {
			if pinned = strings.TrimSpace(pinned); pinned != "" {
				return pinned, nil
			}
		}
	}

	target, err := m.fs.ReadSymlinkTarget(PhpBinary)
	if err != nil {
		return "", err
	}
	return parseVersionFromTarget(target)
}

// Pinned reports whether a version pin is in effect.
func (m *Manager) Pinned() bool {
	return m.fs.Exists(config.PinPath())
}

// parseVersionFromTarget extracts the version from a php binary path such as
// /usr/bin/php8.1. The base name must contain "php" immediately followed by
// the version digits; anything else is a parse error rather than a guessed
// version.
func parseVersionFromTarget(target string) (string, error) {
	base := path.Base(target)
	i := strings.LastIndex(base, "php")
	if i < 0 {
		return "", &VersionParseError{Target: target}
	}
	version := base[i+len("php"):]
	if version == "" || version[0] < '0' || version[0] > '9' {
		return "", &VersionParseError{Target: target}
	}
	return version, nil
}

// InstalledVersions lists PHP versions with a versioned binary under
// /usr/bin, newest first. Used by the interactive picker and status output.
func (m *Manager) InstalledVersions() []string {
	entries, err := m.fs.ListDir("/usr/bin")
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var versions []string
	for _, name := range entries {
		rest, ok := strings.CutPrefix(name, "php")
		if !ok || rest == "" || rest[0] < '0' || rest[0] > '9' {
			continue
		}
		if strings.ContainsAny(rest, "-_") {
			// php8.1-cgi and friends
			continue
		}
		if !seen[rest] {
			seen[rest] = true
			versions = append(versions, rest)
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(versions)))
	return versions
}
