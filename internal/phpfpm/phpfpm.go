// Package phpfpm manages the local PHP-FPM runtime: resolving the active PHP
// version, mapping it to the distro's service unit, installing the valet pool
// configuration, and switching versions with rollback on failure.
package phpfpm

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/valetgo/valet/internal/config"
	"github.com/valetgo/valet/internal/filesystem"
	"github.com/valetgo/valet/internal/log"
	"github.com/valetgo/valet/internal/pkgmanager"
	"github.com/valetgo/valet/internal/service"
)

const (
	// PhpBinary is the canonical system php symlink.
	PhpBinary = "/usr/bin/php"

	// PoolConfigFile is the pool configuration file valet installs.
	PoolConfigFile = "valet.conf"

	// DropInDir holds the systemd drop-in override for php-fpm.
	DropInDir = "/etc/systemd/system/php-fpm.service.d"

	// DropInPath is the systemd drop-in override file.
	DropInPath = DropInDir + "/valet.conf"
)

//go:embed stubs/fpm-valet.conf
var poolStub string

//go:embed stubs/fpm-override.conf
var overrideStub string

// Manager is the PHP runtime manager. Not safe for concurrent switches; the
// CLI runs one command at a time and Manager relies on that.
type Manager struct {
	packages pkgmanager.PackageManager
	services service.Manager
	fs       filesystem.FileSystem

	// version is the version the last completed operation left active.
	version string
}

// New builds a Manager from explicit collaborators.
func New(packages pkgmanager.PackageManager, services service.Manager, fs filesystem.FileSystem) *Manager {
	return &Manager{
		packages: packages,
		services: services,
		fs:       fs,
	}
}

// NewDefault builds a Manager wired to the host system.
func NewDefault() (*Manager, error) {
	packages := pkgmanager.Detect()
	if packages == nil {
		return nil, ErrNoPackageManager
	}
	if !service.Available() {
		return nil, fmt.Errorf("systemctl not found: valet requires a systemd-based distro")
	}
	return New(packages, service.NewSystemd(), filesystem.NewOS()), nil
}

// Version returns the version the last completed operation left active, or
// the resolved current version when no operation ran yet.
func (m *Manager) Version() string {
	if m.version != "" {
		return m.version
	}
	version, err := m.CurrentVersion(false)
	if err != nil {
		return ""
	}
	return version
}

// Install performs the full installation for a PHP version: FPM package,
// service unit enablement, log directory, pool configuration, and a restart.
// Idempotent; re-running overwrites the rendered configuration.
func (m *Manager) Install(version string) error {
	pkg := m.packages.FpmPackage(version)
	if !m.packages.IsInstalled(pkg) {
		log.Info("Installing %s...", pkg)
		if err := m.packages.EnsureInstalled(pkg); err != nil {
			return err
		}
	}

	name, err := m.FpmServiceName(version)
	if err != nil {
		return err
	}

	if m.services.IsDisabled(name) {
		if err := m.services.Enable(name); err != nil {
			return err
		}
	}

	if err := m.fs.EnsureDirExists(config.LogPath(), config.UserName()); err != nil {
		return err
	}

	if err := m.installConfiguration(version); err != nil {
		return err
	}

	if err := m.services.Restart(name); err != nil {
		return err
	}

	m.version = version
	return nil
}

// Uninstall stops php-fpm and removes everything valet wrote for it: the
// pool configuration, the systemd drop-in, and the version pin.
func (m *Manager) Uninstall() error {
	version, err := m.CurrentVersion(false)
	if err != nil {
		return err
	}

	name, err := m.FpmServiceName(version)
	if err != nil {
		return err
	}
	if err := m.services.Stop(name); err != nil {
		log.Warn("Could not stop %s: %v", name, err)
	}

	dir, err := m.poolConfigPath(version)
	if err != nil {
		return err
	}
	if err := m.fs.DeleteIfExists(filepath.Join(dir, PoolConfigFile)); err != nil {
		return err
	}
	if err := m.fs.DeleteIfExists(DropInPath); err != nil {
		return err
	}
	return m.fs.DeleteIfExists(config.PinPath())
}

// Restart restarts the current version's php-fpm unit.
func (m *Manager) Restart() error {
	name, err := m.currentServiceName()
	if err != nil {
		return err
	}
	return m.services.Restart(name)
}

// Stop stops the current version's php-fpm unit.
func (m *Manager) Stop() error {
	name, err := m.currentServiceName()
	if err != nil {
		return err
	}
	return m.services.Stop(name)
}

// PrintStatus writes the current unit's raw status to stdout.
func (m *Manager) PrintStatus() error {
	name, err := m.currentServiceName()
	if err != nil {
		return err
	}
	m.services.PrintStatus(name)
	return nil
}

func (m *Manager) currentServiceName() (string, error) {
	version, err := m.CurrentVersion(false)
	if err != nil {
		return "", err
	}
	return m.FpmServiceName(version)
}

// installConfiguration renders and writes the pool configuration for a
// version, plus the systemd drop-in override on systemd systems. It does not
// restart anything; that is the caller's job.
func (m *Manager) installConfiguration(version string) error {
	dir, err := m.poolConfigPath(version)
	if err != nil {
		return err
	}

	owner := config.UserName()
	contents := renderStub(poolStub)
	if err := m.fs.WriteAsUser(filepath.Join(dir, PoolConfigFile), contents, owner); err != nil {
		return err
	}

	if !m.services.IsSystemd() {
		return nil
	}

	if err := m.fs.EnsureDirExists(DropInDir, owner); err != nil {
		return err
	}
	if err := m.fs.WriteAsUser(DropInPath, renderStub(overrideStub), owner); err != nil {
		return err
	}
	return m.services.DaemonReload()
}

// renderStub substitutes the VALET_USER, VALET_GROUP, and VALET_HOME_PATH
// placeholders verbatim.
func renderStub(stub string) string {
	return strings.NewReplacer(
		"VALET_USER", config.UserName(),
		"VALET_GROUP", config.GroupName(),
		"VALET_HOME_PATH", config.HomePath(),
	).Replace(stub)
}
