package cmd

import (
	"fmt"
	"strings"

	"github.com/net2share/go-corelib/osdetect"
	"github.com/net2share/go-corelib/tui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the PHP runtime status",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	if err := osdetect.RequireRoot(); err != nil {
		return err
	}

	mgr, err := newManager()
	if err != nil {
		return err
	}

	version, err := mgr.CurrentVersion(false)
	if err != nil {
		return err
	}

	source := "system default"
	if mgr.Pinned() {
		source = "pinned"
	}

	name, err := mgr.FpmServiceName(version)
	if err != nil {
		return err
	}

	fmt.Println(tui.KV("PHP version:  ", fmt.Sprintf("%s (%s)", version, source)))
	fmt.Println(tui.KV("Service unit: ", name))
	if installed := mgr.InstalledVersions(); len(installed) > 0 {
		fmt.Println(tui.KV("Installed:    ", strings.Join(installed, ", ")))
	}
	fmt.Println()

	return mgr.PrintStatus()
}
