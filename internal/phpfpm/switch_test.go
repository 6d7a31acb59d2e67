package phpfpm

import (
	"errors"
	"strings"
	"testing"

	"github.com/valetgo/valet/internal/config"
)

func TestSwitchVersion_RollsBackOnFailure(t *testing.T) {
	mgr, packages, services, fs := newTestManager(t)

	// Running on 7.4, which is also the system default.
	fs.AddSymlink(PhpBinary, "/usr/bin/php7.4")
	fs.AddDir("/etc/php/7.4/fpm/pool.d")
	packages.Installed["php7.4-fpm"] = true
	services.AddUnit("php7.4-fpm")
	services.Enable("php7.4-fpm")
	services.Start("php7.4-fpm")
	services.Calls = nil

	// 8.2 installs as a package but has no service unit anywhere, so the
	// service name resolution inside the install step fails.
	err := mgr.SwitchVersion("8.2")
	if err == nil {
		t.Fatal("expected switch to fail")
	}

	var switchErr *SwitchFailedError
	if !errors.As(err, &switchErr) {
		t.Fatalf("error = %T, want *SwitchFailedError", err)
	}
	if switchErr.RolledBackTo != "7.4" {
		t.Errorf("RolledBackTo = %q, want %q", switchErr.RolledBackTo, "7.4")
	}
	if !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("SwitchFailed does not wrap the original cause: %v", err)
	}

	if got := mgr.Version(); got != "7.4" {
		t.Errorf("Version() = %q, want rolled-back %q", got, "7.4")
	}
	if services.IsDisabled("php7.4-fpm") {
		t.Error("php7.4-fpm is not enabled after rollback")
	}
	if !services.IsActive("php7.4-fpm") {
		t.Error("php7.4-fpm is not running after rollback")
	}
	if fs.Exists(config.PinPath()) {
		t.Error("pin marker written although the final version is the system default")
	}
}

func TestSwitchVersion_PinPersistence(t *testing.T) {
	mgr, packages, services, fs := newTestManager(t)

	// System default is 8.1; 8.0 is installable and has a unit.
	fs.AddSymlink(PhpBinary, "/usr/bin/php8.1")
	fs.AddDir("/etc/php/8.1/fpm/pool.d")
	fs.AddDir("/etc/php/8.0/fpm/pool.d")
	packages.Installed["php8.1-fpm"] = true
	packages.Installed["php8.0-fpm"] = true
	services.AddUnit("php8.1-fpm")
	services.AddUnit("php8.0-fpm")
	services.Enable("php8.1-fpm")
	services.Start("php8.1-fpm")

	// Switching away from the default pins the chosen version.
	if err := mgr.SwitchVersion("8.0"); err != nil {
		t.Fatalf("SwitchVersion(8.0) failed: %v", err)
	}
	pinned, err := fs.Get(config.PinPath())
	if err != nil {
		t.Fatalf("pin marker not written: %v", err)
	}
	if strings.TrimSpace(pinned) != "8.0" {
		t.Errorf("pin marker = %q, want %q", pinned, "8.0")
	}

	// Switching back to the default removes the pin.
	if err := mgr.SwitchVersion("default"); err != nil {
		t.Fatalf("SwitchVersion(default) failed: %v", err)
	}
	if fs.Exists(config.PinPath()) {
		t.Error("pin marker still present after switching to the default")
	}
	if got := mgr.Version(); got != "8.1" {
		t.Errorf("Version() = %q, want %q", got, "8.1")
	}
}

func TestSwitchVersion_DefaultTokenIgnoresPin(t *testing.T) {
	mgr, packages, services, fs := newTestManager(t)

	fs.AddSymlink(PhpBinary, "/usr/bin/php8.1")
	fs.AddDir("/etc/php/8.1/fpm/pool.d")
	fs.AddDir("/etc/php/8.0/fpm/pool.d")
	fs.AddFile(config.PinPath(), "8.0")
	packages.Installed["php8.1-fpm"] = true
	packages.Installed["php8.0-fpm"] = true
	services.AddUnit("php8.1-fpm")
	services.AddUnit("php8.0-fpm")

	// "Default" resolves through the symlink, not the pin, regardless of case.
	if err := mgr.SwitchVersion("Default"); err != nil {
		t.Fatalf("SwitchVersion(Default) failed: %v", err)
	}
	if got := mgr.Version(); got != "8.1" {
		t.Errorf("Version() = %q, want symlink default %q", got, "8.1")
	}
	if fs.Exists(config.PinPath()) {
		t.Error("pin marker survived a switch to the default")
	}
}

func TestSwitchVersion_EndToEnd(t *testing.T) {
	mgr, packages, services, fs := newTestManager(t)

	// System default 8.1, no pin, all collaborators green for 8.0.
	fs.AddSymlink(PhpBinary, "/usr/bin/php8.1")
	fs.AddDir("/etc/php/8.1/fpm/pool.d")
	fs.AddDir("/etc/php/8.0/fpm/pool.d")
	packages.Installed["php8.1-fpm"] = true
	services.AddUnit("php8.1-fpm")
	services.AddUnit("php8.0-fpm")
	services.Enable("php8.1-fpm")
	services.Start("php8.1-fpm")
	services.Calls = nil

	if err := mgr.SwitchVersion("8.0"); err != nil {
		t.Fatalf("SwitchVersion failed: %v", err)
	}

	// Old service stopped and disabled; new one enabled and restarted.
	var ops []string
	for _, call := range services.Calls {
		if !strings.HasPrefix(call, "status ") {
			ops = append(ops, call)
		}
	}
	want := []string{"stop php8.1-fpm", "disable php8.1-fpm", "enable php8.0-fpm", "daemon-reload", "restart php8.0-fpm"}
	if len(ops) != len(want) {
		t.Fatalf("service calls = %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("service call %d = %q, want %q", i, ops[i], want[i])
		}
	}

	if !packages.Installed["php8.0-fpm"] {
		t.Error("php8.0-fpm package was not installed")
	}

	pinned, err := fs.Get(config.PinPath())
	if err != nil {
		t.Fatalf("pin marker not written: %v", err)
	}
	if strings.TrimSpace(pinned) != "8.0" {
		t.Errorf("pin marker = %q, want %q", pinned, "8.0")
	}

	got, err := mgr.CurrentVersion(false)
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if got != "8.0" {
		t.Errorf("CurrentVersion(false) = %q, want %q", got, "8.0")
	}
}

func TestSwitchVersion_DefaultWithUnreadableSymlinkFails(t *testing.T) {
	mgr, packages, services, fs := newTestManager(t)

	// Pinned to 8.0 while the system symlink points at something that does not
	// name a PHP version. Resolving "default" has nothing to fall back on.
	fs.AddFile(config.PinPath(), "8.0")
	fs.AddSymlink(PhpBinary, "/opt/weird/interpreter")
	fs.AddDir("/etc/php/8.0/fpm/pool.d")
	packages.Installed["php8.0-fpm"] = true
	services.AddUnit("php8.0-fpm")
	services.Enable("php8.0-fpm")
	services.Start("php8.0-fpm")
	services.Calls = nil

	err := mgr.SwitchVersion("default")
	if err == nil {
		t.Fatal("expected switch to fail when the default cannot be resolved")
	}

	var switchErr *SwitchFailedError
	if !errors.As(err, &switchErr) {
		t.Fatalf("error = %T, want *SwitchFailedError", err)
	}
	if switchErr.RolledBackTo != "8.0" {
		t.Errorf("RolledBackTo = %q, want %q", switchErr.RolledBackTo, "8.0")
	}
	if !errors.Is(err, ErrVersionParse) {
		t.Errorf("SwitchFailed does not wrap the resolution failure: %v", err)
	}

	// The rollback leaves the pinned version running with its pin intact.
	pinned, getErr := fs.Get(config.PinPath())
	if getErr != nil {
		t.Fatalf("pin marker lost during rollback: %v", getErr)
	}
	if strings.TrimSpace(pinned) != "8.0" {
		t.Errorf("pin marker = %q, want %q", pinned, "8.0")
	}
	if services.IsDisabled("php8.0-fpm") {
		t.Error("php8.0-fpm is not enabled after rollback")
	}
	if !services.IsActive("php8.0-fpm") {
		t.Error("php8.0-fpm is not running after rollback")
	}
	if got := mgr.Version(); got != "8.0" {
		t.Errorf("Version() = %q, want %q", got, "8.0")
	}
}

func TestSwitchVersion_PinWriteFailureSurfaces(t *testing.T) {
	mgr, packages, services, fs := newTestManager(t)

	fs.AddSymlink(PhpBinary, "/usr/bin/php8.1")
	fs.AddDir("/etc/php/8.1/fpm/pool.d")
	fs.AddDir("/etc/php/8.0/fpm/pool.d")
	packages.Installed["php8.1-fpm"] = true
	packages.Installed["php8.0-fpm"] = true
	services.AddUnit("php8.1-fpm")
	services.AddUnit("php8.0-fpm")
	services.Enable("php8.1-fpm")
	services.Start("php8.1-fpm")
	fs.WriteFailures[config.PinPath()] = errors.New("read-only filesystem")

	err := mgr.SwitchVersion("8.0")
	if err == nil {
		t.Fatal("expected the pin write failure to surface")
	}
	var switchErr *SwitchFailedError
	if errors.As(err, &switchErr) {
		t.Error("pin persistence failure must not masquerade as a rolled-back switch")
	}
	if !strings.Contains(err.Error(), "read-only filesystem") {
		t.Errorf("error does not carry the write failure: %v", err)
	}

	// The service switch itself completed; only the pin is out of date.
	if !services.IsActive("php8.0-fpm") {
		t.Error("php8.0-fpm is not running")
	}
	if services.IsDisabled("php8.0-fpm") {
		t.Error("php8.0-fpm is not enabled")
	}
	if got := mgr.Version(); got != "8.0" {
		t.Errorf("Version() = %q, want %q", got, "8.0")
	}
}

func TestSwitchVersion_NonDomainInstallErrorPropagates(t *testing.T) {
	mgr, packages, services, fs := newTestManager(t)

	fs.AddSymlink(PhpBinary, "/usr/bin/php8.1")
	fs.AddDir("/etc/php/8.1/fpm/pool.d")
	fs.AddDir("/etc/php/8.0/fpm/pool.d")
	packages.Installed["php8.1-fpm"] = true
	packages.Installed["php8.0-fpm"] = true
	services.AddUnit("php8.1-fpm")
	services.AddUnit("php8.0-fpm")
	services.FailRestart = "php8.0-fpm"

	err := mgr.SwitchVersion("8.0")
	if err == nil {
		t.Fatal("expected restart failure to surface")
	}
	var switchErr *SwitchFailedError
	if errors.As(err, &switchErr) {
		t.Error("non-resolution error must not be wrapped as a switch failure")
	}
}
