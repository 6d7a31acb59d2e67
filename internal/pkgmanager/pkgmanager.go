// Package pkgmanager abstracts the system package manager for valet.
package pkgmanager

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// PackageManager defines the package operations valet needs.
type PackageManager interface {
	// Name returns the package manager name (e.g., "apt", "dnf").
	Name() string

	// IsInstalled reports whether a package is installed.
	IsInstalled(pkg string) bool

	// EnsureInstalled installs a package if it is missing.
	EnsureInstalled(pkg string) error

	// FpmPackage returns the distro's PHP-FPM package name for a version.
	FpmPackage(version string) string
}

// Detect probes for a supported package manager on PATH, in order.
// Returns nil when none is found.
func Detect() PackageManager {
	managers := []struct {
		cmd string
		pm  PackageManager
	}{
		{"apt-get", &Apt{}},
		{"dnf", &Dnf{}},
		{"pacman", &Pacman{}},
		{"zypper", &Zypper{}},
	}

	for _, m := range managers {
		if _, err := exec.LookPath(m.cmd); err == nil {
			return m.pm
		}
	}

	return nil
}

func runInstall(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to install with %s: %w", name, err)
	}
	return nil
}

// Apt drives apt-get on Debian-family systems.
type Apt struct{}

func (a *Apt) Name() string { return "apt" }

func (a *Apt) IsInstalled(pkg string) bool {
	return exec.Command("dpkg", "-s", pkg).Run() == nil
}

func (a *Apt) EnsureInstalled(pkg string) error {
	if a.IsInstalled(pkg) {
		return nil
	}
	return runInstall("apt-get", "install", "-y", pkg)
}

func (a *Apt) FpmPackage(version string) string {
	return "php" + version + "-fpm"
}

// Dnf drives dnf on Fedora/RHEL-family systems.
type Dnf struct{}

func (d *Dnf) Name() string { return "dnf" }

func (d *Dnf) IsInstalled(pkg string) bool {
	return exec.Command("rpm", "-q", pkg).Run() == nil
}

func (d *Dnf) EnsureInstalled(pkg string) error {
	if d.IsInstalled(pkg) {
		return nil
	}
	return runInstall("dnf", "install", "-y", pkg)
}

// FpmPackage is unversioned on Fedora; the distro ships a single php-fpm
// tracking its current PHP.
func (d *Dnf) FpmPackage(string) string {
	return "php-fpm"
}

// Pacman drives pacman on Arch-family systems.
type Pacman struct{}

func (p *Pacman) Name() string { return "pacman" }

func (p *Pacman) IsInstalled(pkg string) bool {
	return exec.Command("pacman", "-Qi", pkg).Run() == nil
}

func (p *Pacman) EnsureInstalled(pkg string) error {
	if p.IsInstalled(pkg) {
		return nil
	}
	return runInstall("pacman", "-S", "--noconfirm", pkg)
}

func (p *Pacman) FpmPackage(string) string {
	return "php-fpm"
}

// Zypper drives zypper on openSUSE systems.
type Zypper struct{}

func (z *Zypper) Name() string { return "zypper" }

func (z *Zypper) IsInstalled(pkg string) bool {
	return exec.Command("rpm", "-q", pkg).Run() == nil
}

func (z *Zypper) EnsureInstalled(pkg string) error {
	if z.IsInstalled(pkg) {
		return nil
	}
	return runInstall("zypper", "-n", "install", pkg)
}

// FpmPackage uses the major version only; openSUSE packages PHP as php8-fpm.
func (z *Zypper) FpmPackage(version string) string {
	major := version
	if i := strings.Index(version, "."); i > 0 {
		major = version[:i]
	}
	return "php" + major + "-fpm"
}
