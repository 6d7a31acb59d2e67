// Package service provides service manager abstractions for valet.
package service

// Manager defines the interface for controlling system services.
// This allows for mocking in tests and decoupling from the actual
// service manager implementation.
type Manager interface {
	// Status returns the raw, distro-specific status text for a unit.
	// The text is returned even when the unit is unknown; callers probe
	// it for "not found" wording.
	Status(name string) string

	// Start starts a service.
	Start(name string) error

	// Stop stops a service.
	Stop(name string) error

	// Restart restarts a service.
	Restart(name string) error

	// Enable enables a service to start on boot.
	Enable(name string) error

	// Disable disables a service from starting on boot.
	Disable(name string) error

	// IsActive returns true if the service is currently running.
	IsActive(name string) bool

	// IsDisabled returns true if the service is not enabled to start on boot.
	IsDisabled(name string) bool

	// PrintStatus writes the service status to stdout for diagnostics.
	PrintStatus(name string)

	// DaemonReload reloads the service manager to pick up changed unit files.
	DaemonReload() error

	// IsSystemd reports whether this manager drives systemd units. Drop-in
	// override files are only written for systemd.
	IsSystemd() bool
}
