package cmd

import (
	"github.com/charmbracelet/huh"
	"github.com/net2share/go-corelib/osdetect"
	"github.com/net2share/go-corelib/tui"
	"github.com/spf13/cobra"
)

var uninstallForce bool

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the valet PHP-FPM configuration",
	Long:  "Stop php-fpm and remove the valet pool configuration, drop-in override, and version pin",
	RunE:  runUninstall,
}

func init() {
	uninstallCmd.Flags().BoolVar(&uninstallForce, "force", false, "Skip confirmation prompt")
}

func runUninstall(cmd *cobra.Command, args []string) error {
	if err := osdetect.RequireRoot(); err != nil {
		return err
	}

	if !uninstallForce {
		var confirmed bool
		err := huh.NewConfirm().
			Title("Remove valet's php-fpm configuration?").
			Description("php-fpm will be stopped and the valet pool removed").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			tui.PrintInfo("Uninstall cancelled")
			return nil
		}
	}

	mgr, err := newManager()
	if err != nil {
		return err
	}

	if err := mgr.Uninstall(); err != nil {
		return err
	}

	tui.PrintSuccess("valet php-fpm configuration removed")
	return nil
}
