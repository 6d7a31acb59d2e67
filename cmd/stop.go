package cmd

import (
	"github.com/net2share/go-corelib/osdetect"
	"github.com/net2share/go-corelib/tui"
	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop php-fpm",
	RunE:  runStop,
}

func runStop(cmd *cobra.Command, args []string) error {
	if err := osdetect.RequireRoot(); err != nil {
		return err
	}

	mgr, err := newManager()
	if err != nil {
		return err
	}

	if err := mgr.Stop(); err != nil {
		return err
	}

	tui.PrintSuccess("php-fpm stopped")
	return nil
}
