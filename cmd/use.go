package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/net2share/go-corelib/osdetect"
	"github.com/net2share/go-corelib/tui"
	"github.com/spf13/cobra"
	"github.com/valetgo/valet/internal/phpfpm"
)

var useCmd = &cobra.Command{
	Use:   "use [version]",
	Short: "Switch the active PHP version",
	Long:  "Switch php-fpm to another version, e.g. 'valet use 8.2'. Use 'default' to track the system default.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUse,
}

func runUse(cmd *cobra.Command, args []string) error {
	if err := osdetect.RequireRoot(); err != nil {
		return err
	}

	mgr, err := newManager()
	if err != nil {
		return err
	}

	var target string
	if len(args) > 0 {
		target = args[0]
	} else {
		target, err = pickVersion(mgr)
		if err != nil {
			return err
		}
	}

	if err := mgr.SwitchVersion(target); err != nil {
		var switchErr *phpfpm.SwitchFailedError
		if errors.As(err, &switchErr) {
			tui.PrintError(fmt.Sprintf("Switch failed; php %s is still active", switchErr.RolledBackTo))
		}
		return err
	}

	tui.PrintSuccess(fmt.Sprintf("valet is now serving php %s", mgr.Version()))
	if mgr.Pinned() {
		tui.PrintInfo("This version is pinned; 'valet use default' tracks the system default again")
	}
	return nil
}

// pickVersion prompts for a version from the versioned php binaries found on
// the system, plus the "default" option.
func pickVersion(mgr *phpfpm.Manager) (string, error) {
	options := []huh.Option[string]{
		huh.NewOption("default (track system)", "default"),
	}
	for _, version := range mgr.InstalledVersions() {
		options = append(options, huh.NewOption("php "+version, version))
	}

	var target string
	err := huh.NewSelect[string]().
		Title("PHP Version").
		Options(options...).
		Value(&target).
		Run()
	if err != nil {
		return "", err
	}
	return target, nil
}
