package config

import (
	"os"
	"os/user"
	"path/filepath"
)

// UserName returns the invoking user. When valet runs under sudo the real
// user comes from SUDO_USER, not from the effective (root) identity.
func UserName() string {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" {
		return sudoUser
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}

// GroupName returns the invoking user's primary group name. Falls back to the
// user name, which matches the default on the distros valet supports.
func GroupName() string {
	name := UserName()
	u, err := user.Lookup(name)
	if err != nil {
		return name
	}
	g, err := user.LookupGroupId(u.Gid)
	if err != nil {
		return name
	}
	return g.Name
}

// HomePath returns the valet data directory (~/.valet for the invoking user).
// VALET_HOME overrides it, which the tests rely on.
func HomePath() string {
	if override := os.Getenv("VALET_HOME"); override != "" {
		return override
	}

	if u, err := user.Lookup(UserName()); err == nil {
		return filepath.Join(u.HomeDir, ".valet")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "/root"
	}
	return filepath.Join(home, ".valet")
}

// PinPath returns the pinned-version marker file path.
func PinPath() string {
	return filepath.Join(HomePath(), PinFile)
}

// LogPath returns the log directory path.
func LogPath() string {
	return filepath.Join(HomePath(), LogDirName)
}
