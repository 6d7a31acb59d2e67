package service

import (
	"fmt"
	"os/exec"
	"strings"
)

// Systemd controls services through systemctl.
type Systemd struct{}

// NewSystemd returns a systemctl-backed Manager.
func NewSystemd() *Systemd {
	return &Systemd{}
}

// Status returns the combined systemctl status output. systemctl exits
// non-zero for inactive or unknown units; the text is what matters here,
// so the error is folded into it.
func (s *Systemd) Status(name string) string {
	cmd := exec.Command("systemctl", "status", name, "--no-pager", "-l")
	output, err := cmd.CombinedOutput()
	if len(output) == 0 && err != nil {
		return err.Error()
	}
	return string(output)
}

func (s *Systemd) Start(name string) error {
	return s.run("start", name)
}

func (s *Systemd) Stop(name string) error {
	return s.run("stop", name)
}

func (s *Systemd) Restart(name string) error {
	return s.run("restart", name)
}

func (s *Systemd) Enable(name string) error {
	return s.run("enable", name)
}

func (s *Systemd) Disable(name string) error {
	return s.run("disable", name)
}

func (s *Systemd) run(action, name string) error {
	cmd := exec.Command("systemctl", action, name)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to %s %s: %s: %w", action, name, strings.TrimSpace(string(output)), err)
	}
	return nil
}

func (s *Systemd) IsActive(name string) bool {
	cmd := exec.Command("systemctl", "is-active", name)
	output, _ := cmd.Output()
	return strings.TrimSpace(string(output)) == "active"
}

func (s *Systemd) IsDisabled(name string) bool {
	cmd := exec.Command("systemctl", "is-enabled", name)
	output, _ := cmd.Output()
	return strings.TrimSpace(string(output)) != "enabled"
}

func (s *Systemd) PrintStatus(name string) {
	fmt.Println(s.Status(name))
}

func (s *Systemd) DaemonReload() error {
	cmd := exec.Command("systemctl", "daemon-reload")
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to reload systemd: %s: %w", strings.TrimSpace(string(output)), err)
	}
	return nil
}

func (s *Systemd) IsSystemd() bool {
	return true
}

// Available reports whether systemctl exists on this system.
func Available() bool {
	_, err := exec.LookPath("systemctl")
	return err == nil
}
