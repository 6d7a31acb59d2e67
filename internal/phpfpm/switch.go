package phpfpm

import (
	"fmt"
	"strings"

	"github.com/valetgo/valet/internal/config"
	"github.com/valetgo/valet/internal/log"
)

// switchState carries the versions involved in a switch through each step,
// so rollback is a plain restore of the prior value instead of an implicit
// undo of mutated fields.
type switchState struct {
	oldVersion string
	newVersion string
}

// SwitchVersion moves the runtime from the currently active PHP version to
// target. An empty target or the token "default" (case-insensitive) means the
// system's unpinned default. If installing the target fails with a resolution
// error, the switch rolls back to the old version, reconciles the pin file,
// and only then reports the failure — the system is never left half-migrated.
func (m *Manager) SwitchVersion(target string) error {
	oldVersion, err := m.CurrentVersion(false)
	if err != nil {
		return err
	}

	oldName, err := m.FpmServiceName(oldVersion)
	if err != nil {
		return err
	}

	log.Info("Stopping %s...", oldName)
	if err := m.services.Stop(oldName); err != nil {
		log.Warn("Could not stop %s: %v", oldName, err)
	}
	if err := m.services.Disable(oldName); err != nil {
		log.Warn("Could not disable %s: %v", oldName, err)
	}

	state := switchState{oldVersion: oldVersion}
	next := strings.TrimSpace(target)

	var switchErr error
	if next == "" || strings.EqualFold(next, "default") {
		next, err = m.CurrentVersion(true)
		if err != nil {
			// A default the system cannot name is a failed switch, not a
			// silent stay-put; roll back and report after cleanup.
			log.Warn("Could not resolve the system default version, rolling back to %s", oldVersion)
			next = oldVersion
			switchErr = err
		}
	}
	state.newVersion = next

	if switchErr == nil {
		log.Info("Switching php %s -> %s", state.oldVersion, state.newVersion)
		if err := m.Install(state.newVersion); err != nil {
			if !isDomainError(err) {
				return err
			}
			log.Warn("Install of php %s failed, rolling back to %s", state.newVersion, state.oldVersion)
			state.newVersion = state.oldVersion
			switchErr = err
		}
	}

	// The old unit was disabled above; after a rollback (or a switch back to
	// the same version) it has to come back.
	if name, err := m.FpmServiceName(state.newVersion); err == nil {
		if m.services.IsDisabled(name) {
			if err := m.services.Enable(name); err != nil {
				log.Warn("Could not re-enable %s: %v", name, err)
			}
		}
		if switchErr != nil && !m.services.IsActive(name) {
			if err := m.services.Start(name); err != nil {
				log.Warn("Could not restart %s after rollback: %v", name, err)
			}
		}
	}

	pinErr := m.persistPin(state.newVersion)

	m.version = state.newVersion

	if switchErr != nil {
		return &SwitchFailedError{RolledBackTo: state.oldVersion, Err: switchErr}
	}
	if pinErr != nil {
		// The service state is consistent at this point; an unreconciled pin
		// must still surface, or resolve(false) and the running version drift
		// apart behind a reported success.
		return fmt.Errorf("failed to update version pin: %w", pinErr)
	}
	return nil
}

// persistPin writes the pin marker when the final version differs from the
// system default, and removes it when they match; absence of the marker means
// "track the system default". A forced-real resolve failure propagates; it
// must not be papered over with a pin write.
func (m *Manager) persistPin(version string) error {
	real, err := m.CurrentVersion(true)
	if err != nil {
		return err
	}
	if version == real {
		return m.fs.DeleteIfExists(config.PinPath())
	}
	return m.fs.WriteAsUser(config.PinPath(), version, config.UserName())
}
