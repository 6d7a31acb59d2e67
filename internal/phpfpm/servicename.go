package phpfpm

import "strings"

// serviceNameCandidates returns the unit names to probe, in order. Debian
// family ships php<version>-fpm; RPM family ships php-fpm<version>.
func serviceNameCandidates(version string) []string {
	return []string{
		"php" + version + "-fpm",
		"php-fpm" + version,
	}
}

// FpmServiceName resolves the service unit name for a PHP version by probing
// the service manager's status output for each naming convention. The probe
// is purely textual, so distros that follow either convention work without a
// curated table. Exactly two candidates are tried.
func (m *Manager) FpmServiceName(version string) (string, error) {
	for _, name := range serviceNameCandidates(version) {
		if serviceUnknown(m.services.Status(name)) {
			continue
		}
		return name, nil
	}
	return "", &ServiceNotFoundError{Version: version}
}

// serviceUnknown matches both observed "unit does not exist" wordings against
// the same status text: systemd's LoadState ("not-found") and its status
// message ("could not be found").
func serviceUnknown(status string) bool {
	return strings.Contains(status, "not-found") || strings.Contains(status, "not be found")
}
