package pkgmanager

// Mock is an in-memory PackageManager for tests.
type Mock struct {
	// Installed lists packages reported as installed.
	Installed map[string]bool

	// EnsureErr, when set, is returned by EnsureInstalled.
	EnsureErr error

	// EnsureCalls records every EnsureInstalled invocation in order.
	EnsureCalls []string
}

// NewMock returns a mock with no installed packages.
func NewMock() *Mock {
	return &Mock{Installed: make(map[string]bool)}
}

func (m *Mock) Name() string { return "mock" }

func (m *Mock) IsInstalled(pkg string) bool {
	return m.Installed[pkg]
}

func (m *Mock) EnsureInstalled(pkg string) error {
	m.EnsureCalls = append(m.EnsureCalls, pkg)
	if m.EnsureErr != nil {
		return m.EnsureErr
	}
	m.Installed[pkg] = true
	return nil
}

func (m *Mock) FpmPackage(version string) string {
	return "php" + version + "-fpm"
}
