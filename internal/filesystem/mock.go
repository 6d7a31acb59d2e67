package filesystem

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Mock is an in-memory FileSystem for tests.
type Mock struct {
	mu       sync.Mutex
	files    map[string]string
	dirs     map[string]bool
	symlinks map[string]string

	// Owners records the owner passed to WriteAsUser/EnsureDirExists per path.
	Owners map[string]string

	// WriteFailures maps paths to errors returned by WriteAsUser.
	WriteFailures map[string]error
}

// NewMock returns an empty in-memory filesystem.
func NewMock() *Mock {
	return &Mock{
		files:         make(map[string]string),
		dirs:          make(map[string]bool),
		symlinks:      make(map[string]string),
		Owners:        make(map[string]string),
		WriteFailures: make(map[string]error),
	}
}

// AddFile seeds a file.
func (m *Mock) AddFile(path, contents string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = contents
}

// AddDir seeds a directory.
func (m *Mock) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path] = true
}

// AddSymlink seeds a symbolic link.
func (m *Mock) AddSymlink(path, target string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.symlinks[path] = target
}

// Files returns the sorted list of file paths, for assertions.
func (m *Mock) Files() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (m *Mock) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[path]; ok {
		return true
	}
	if _, ok := m.symlinks[path]; ok {
		return true
	}
	return m.dirs[path]
}

func (m *Mock) IsDir(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dirs[path]
}

func (m *Mock) ReadSymlinkTarget(path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	target, ok := m.symlinks[path]
	if !ok {
		return "", fmt.Errorf("failed to read symlink %s: no such link", path)
	}
	return target, nil
}

func (m *Mock) ListDir(path string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.dirs[path] {
		return nil, fmt.Errorf("failed to list %s: no such directory", path)
	}
	prefix := strings.TrimSuffix(path, "/") + "/"
	seen := make(map[string]bool)
	for p := range m.files {
		if rest, ok := strings.CutPrefix(p, prefix); ok {
			seen[strings.SplitN(rest, "/", 2)[0]] = true
		}
	}
	for p := range m.symlinks {
		if rest, ok := strings.CutPrefix(p, prefix); ok {
			seen[strings.SplitN(rest, "/", 2)[0]] = true
		}
	}
	for p := range m.dirs {
		if rest, ok := strings.CutPrefix(p, prefix); ok {
			seen[strings.SplitN(rest, "/", 2)[0]] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Mock) Get(path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	contents, ok := m.files[path]
	if !ok {
		return "", fmt.Errorf("failed to read %s: no such file", path)
	}
	return contents, nil
}

func (m *Mock) Put(path, contents string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = contents
	m.addParents(path)
	return nil
}

func (m *Mock) WriteAsUser(path, contents, owner string) error {
	m.mu.Lock()
	failure := m.WriteFailures[path]
	m.mu.Unlock()
	if failure != nil {
		return failure
	}
	if err := m.Put(path, contents); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Owners[path] = owner
	return nil
}

func (m *Mock) DeleteIfExists(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path)
	delete(m.symlinks, path)
	return nil
}

func (m *Mock) EnsureDirExists(path, owner string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path] = true
	m.Owners[path] = owner
	return nil
}

func (m *Mock) addParents(path string) {
	for {
		i := strings.LastIndex(path, "/")
		if i <= 0 {
			return
		}
		path = path[:i]
		m.dirs[path] = true
	}
}
