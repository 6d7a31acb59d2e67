package filesystem

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
)

// OS is the real filesystem implementation.
type OS struct{}

// NewOS returns a FileSystem backed by the host filesystem.
func NewOS() *OS {
	return &OS{}
}

func (f *OS) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func (f *OS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ReadSymlinkTarget resolves the link to its final target. Debian routes
// /usr/bin/php through /etc/alternatives, so a single readlink hop would
// land on a name that carries no version.
func (f *OS) ReadSymlinkTarget(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		target, readErr := os.Readlink(path)
		if readErr != nil {
			return "", fmt.Errorf("failed to read symlink %s: %w", path, err)
		}
		return target, nil
	}
	return resolved, nil
}

func (f *OS) ListDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", path, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

func (f *OS) Get(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func (f *OS) Put(path, contents string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (f *OS) WriteAsUser(path, contents, owner string) error {
	if err := f.Put(path, contents); err != nil {
		return err
	}
	return chownTo(path, owner)
}

func (f *OS) DeleteIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

func (f *OS) EnsureDirExists(path, owner string) error {
	if f.IsDir(path) {
		return nil
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	return chownTo(path, owner)
}

func chownTo(path, owner string) error {
	if owner == "" {
		return nil
	}
	u, err := user.Lookup(owner)
	if err != nil {
		return fmt.Errorf("failed to look up user %s: %w", owner, err)
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return fmt.Errorf("invalid uid for %s: %w", owner, err)
	}
	gid, err := strconv.Atoi(u.Gid)
	if err != nil {
		return fmt.Errorf("invalid gid for %s: %w", owner, err)
	}
	if err := os.Chown(path, uid, gid); err != nil {
		return fmt.Errorf("failed to chown %s: %w", path, err)
	}
	return nil
}
