package cmd

import (
	"fmt"

	"github.com/net2share/go-corelib/osdetect"
	"github.com/net2share/go-corelib/tui"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the valet PHP-FPM configuration",
	Long:  "Install the valet pool configuration for the active PHP version and start php-fpm",
	RunE:  runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
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

	tui.PrintInfo(fmt.Sprintf("Installing valet configuration for php %s...", version))
	if err := mgr.Install(version); err != nil {
		return err
	}

	tui.PrintSuccess(fmt.Sprintf("php %s is installed and running", version))
	return nil
}
