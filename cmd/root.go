// Package cmd provides the Cobra CLI for valet.
package cmd

import (
	"os"

	"github.com/net2share/go-corelib/tui"
	"github.com/spf13/cobra"
	"github.com/valetgo/valet/internal/config"
	"github.com/valetgo/valet/internal/log"
	"github.com/valetgo/valet/internal/phpfpm"
)

// Version and BuildTime are set at build time.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "valet",
	Short: "PHP development environment manager",
	Long:  "Valet - a PHP development environment manager for Linux",
}

func init() {
	rootCmd.Version = Version

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(restartCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersionInfo sets version information for the CLI.
func SetVersionInfo(version, buildTime string) {
	Version = version
	BuildTime = buildTime
	rootCmd.Version = version + " (built " + buildTime + ")"
	tui.SetAppInfo("valet", version, buildTime)
}

// newManager configures logging from the tool config and wires a runtime
// manager against the host system.
func newManager() (*phpfpm.Manager, error) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, err
	}
	if err := log.Configure(&cfg.Log); err != nil {
		tui.PrintWarning("Ignoring log configuration: " + err.Error())
	}
	return phpfpm.NewDefault()
}
