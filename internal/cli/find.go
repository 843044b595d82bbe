package cli

import (
	"frc-deploy/internal/logger"
	"frc-deploy/internal/network"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var openURL = browser.OpenURL

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find the roboRIO and print its address",
	Long: `Ping the roboRIO's known addresses in order and print the first one that answers:
- roborio-TEAM-frc.local (mDNS)
- 10.TE.AM.2 (static)
- 10.TE.AM.20 (radio DHCP)
- 172.22.11.2 (USB)`,
	Args: cobra.NoArgs,
	RunE: runFind,
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the roboRIO web dashboard in a browser",
	Args:  cobra.NoArgs,
	RunE:  runDashboard,
}

func runFind(cmd *cobra.Command, args []string) error {
	address, err := discover(cmd.Context())
	if err != nil {
		return err
	}

	logger.Plain("%s", address)
	return nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	address, err := discover(cmd.Context())
	if err != nil {
		return err
	}

	url := network.DashboardURL(address)
	if err := network.CheckDashboard(cmd.Context(), url); err != nil {
		logger.Warning("%v", err)
	}

	logger.Info("Opening %s", url)
	if err := openURL(url); err != nil {
		logger.Plain("Open this URL in your browser: %s", url)
		return err
	}
	return nil
}
