package phpfpm

// poolConfigCandidates returns the known per-distro pool configuration
// directories for a version, in probe order.
func poolConfigCandidates(version string) []string {
	return []string{
		"/etc/php/" + version + "/fpm/pool.d", // Debian, Ubuntu
		"/etc/php" + version + "/fpm/pool.d",
		"/etc/php/php-fpm.d",      // Arch
		"/etc/php-fpm.d",          // Fedora, RHEL
		"/etc/php7/fpm/php-fpm.d", // openSUSE
	}
}

// poolConfigPath returns the first candidate directory that exists. No
// candidate existing means the system's PHP layout is one this tool does not
// understand, which is fatal rather than a default.
func (m *Manager) poolConfigPath(version string) (string, error) {
	for _, dir := range poolConfigCandidates(version) {
		if m.fs.IsDir(dir) {
			return dir, nil
		}
	}
	return "", &ConfigPathNotFoundError{Version: version}
}
