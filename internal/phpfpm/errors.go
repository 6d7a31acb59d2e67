package phpfpm

import (
	"errors"
	"fmt"
)

// Sentinel errors for the PHP runtime manager.
var (
	// ErrConfigPathNotFound indicates no known pool configuration directory exists.
	ErrConfigPathNotFound = errors.New("php-fpm pool configuration directory not found")

	// ErrServiceNotFound indicates no service unit matched either naming convention.
	ErrServiceNotFound = errors.New("php-fpm service not found")

	// ErrVersionParse indicates the php binary symlink target carried no version.
	ErrVersionParse = errors.New("unable to determine php version")

	// ErrNoPackageManager indicates no supported package manager was detected.
	ErrNoPackageManager = errors.New("no supported package manager found")
)

// ConfigPathNotFoundError reports that none of the per-distro pool
// configuration directories exist for a version.
type ConfigPathNotFoundError struct {
	Version string
}

func (e *ConfigPathNotFoundError) Error() string {
	return fmt.Sprintf("no php-fpm pool configuration directory found for php %s", e.Version)
}

func (e *ConfigPathNotFoundError) Unwrap() error {
	return ErrConfigPathNotFound
}

// ServiceNotFoundError reports that neither service naming convention
// resolved to a unit known to the service manager.
type ServiceNotFoundError struct {
	Version string
}

func (e *ServiceNotFoundError) Error() string {
	return fmt.Sprintf("unable to determine php-fpm service name for php %s", e.Version)
}

func (e *ServiceNotFoundError) Unwrap() error {
	return ErrServiceNotFound
}

// VersionParseError reports a php binary target whose base name did not
// contain "php" followed by a version.
type VersionParseError struct {
	Target string
}

func (e *VersionParseError) Error() string {
	return fmt.Sprintf("unable to determine php version from %q", e.Target)
}

func (e *VersionParseError) Unwrap() error {
	return ErrVersionParse
}

// SwitchFailedError wraps an error raised during a version switch. It is only
// returned after rollback and pin reconciliation have completed, so the system
// is back on RolledBackTo and running.
type SwitchFailedError struct {
	RolledBackTo string
	Err          error
}

func (e *SwitchFailedError) Error() string {
	return fmt.Sprintf("changing php version failed, rolled back to php %s: %v", e.RolledBackTo, e.Err)
}

func (e *SwitchFailedError) Unwrap() error {
	return e.Err
}

// isDomainError reports whether err is one of the resolution errors the
// switcher intercepts for rollback.
func isDomainError(err error) bool {
	return errors.Is(err, ErrConfigPathNotFound) ||
		errors.Is(err, ErrServiceNotFound) ||
		errors.Is(err, ErrVersionParse)
}
