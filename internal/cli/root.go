package cli

import (
	"context"
	"time"

	"frc-deploy/internal/config"
	"frc-deploy/internal/deploy"
	"frc-deploy/internal/logger"
	"frc-deploy/internal/network"
	"frc-deploy/internal/runner"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	version = "1.0.0"
	opts    config.Options

	// workDir is the workspace the deploy runs in; local paths are relative to it.
	workDir = "."

	// activeProfile is resolved by setup before any command runs.
	activeProfile config.Profile

	newRunner = func(verbose bool) runner.Runner {
		return runner.NewExecRunner(verbose)
	}
	historyFile = config.HistoryFile
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "frc-deploy <package>",
	Short: "Deploy a robot program to the roboRIO",
	Long: `frc-deploy copies a compiled robot package and the WPILib shared libraries
to the roboRIO, then reinstalls and restarts the robot program.

Steps:
- Optionally build the package with cargo
- Find the roboRIO by pinging its known addresses
- Copy shared libraries (skip with --skip-libs)
- Stop the running program, copy the executable, restart it

e.g. 'frc-deploy rswerve -sb' builds and deploys rswerve, skipping libraries`,
	Version:           version,
	Args:              cobra.ExactArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runDeploy,
}

// Execute adds all child commands to the root command and runs it.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.Build, "build", "b", false, "run cargo build automatically before deploying")
	flags.BoolVarP(&opts.SkipLibs, "skip-libs", "s", false, "skip deploying shared libraries (alias --skip-wpilib)")
	flags.BoolVarP(&opts.Debug, "debug", "d", false, "deploy the debug build instead of release")
	flags.BoolVarP(&opts.KeepGoing, "keep-going", "k", false, "keep going when a remote step fails and report each step")

	persistent := rootCmd.PersistentFlags()
	persistent.BoolVarP(&opts.Verbose, "verbose", "v", false, "log shell commands")
	persistent.StringVarP(&opts.Profile, "profile", "p", "", "deploy profile (package, frc)")
	persistent.IntVarP(&opts.Team, "team", "t", 0, "team number used to find the roboRIO")
	persistent.StringVarP(&opts.Address, "address", "a", "", "roboRIO address, skipping discovery")
	persistent.StringVar(&opts.User, "user", "", "remote login user")

	rootCmd.SetGlobalNormalizationFunc(aliasFlags)

	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(versionCmd)
}

func aliasFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "skip-wpilib" {
		name = "skip-libs"
	}
	return pflag.NormalizedName(name)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logger.Plain("frc-deploy v%s", version)
	},
}

// setup applies file and environment settings to flags the user did not set.
func setup(cmd *cobra.Command, args []string) error {
	logger.Setup(opts.Verbose)

	settings, err := config.Load(workDir)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("team") {
		opts.Team = settings.Team
	}
	if !flags.Changed("user") {
		opts.User = settings.User
	}
	if !flags.Changed("profile") {
		opts.Profile = settings.Profile
	}
	if !flags.Changed("address") {
		opts.Address = settings.Address
	}

	profile, err := settings.LookupProfile(opts.Profile)
	if err != nil {
		return err
	}
	activeProfile = profile

	logger.Debug("team %d, user %s, profile %s", opts.Team, opts.User, opts.Profile)
	return nil
}

func runDeploy(cmd *cobra.Command, args []string) error {
	o := opts
	o.Package = args[0]
	dc := deploy.NewContext(o, activeProfile)

	history := logger.OpenHistory(historyFile())
	defer history.Close()

	start := time.Now()
	logger.Record("deploy started", "package", o.Package, "profile", activeProfile.Name, "mode", o.BuildMode())

	p := deploy.New(newRunner(o.Verbose), dc)
	p.Dir = workDir
	report, err := p.Run(cmd.Context(), dc)

	logger.Record("deploy finished", "package", o.Package, "ok", err == nil, "elapsed", time.Since(start))

	if o.KeepGoing {
		logger.Plain("")
		logger.Plain("Summary:")
		report.Print()
	}
	if err != nil {
		return err
	}

	logger.Success("Deployed %s in %s", o.Package, time.Since(start).Round(time.Millisecond))
	return nil
}

// discover resolves the roboRIO address for commands that only need the host.
func discover(ctx context.Context) (string, error) {
	if opts.Address != "" {
		return opts.Address, nil
	}
	prober := network.Pinger{Runner: newRunner(opts.Verbose)}
	return network.Discover(ctx, prober, network.Candidates(opts.Team))
}
