package cmd

import (
	"github.com/net2share/go-corelib/osdetect"
	"github.com/net2share/go-corelib/tui"
	"github.com/spf13/cobra"
)

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart php-fpm",
	RunE:  runRestart,
}

func runRestart(cmd *cobra.Command, args []string) error {
	if err := osdetect.RequireRoot(); err != nil {
		return err
	}

	mgr, err := newManager()
	if err != nil {
		return err
	}

	if err := mgr.Restart(); err != nil {
		return err
	}

	tui.PrintSuccess("php-fpm restarted")
	return nil
}
