package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/riddell/git-reap/internal/config"
	"github.com/riddell/git-reap/internal/gitcmd"
	"github.com/riddell/git-reap/internal/sweep"
	"github.com/riddell/git-reap/internal/tui"
)

// exitCodeInterrupted mirrors the conventional 128+SIGINT status for a run
// cut short by Ctrl+C during a prompt.
const exitCodeInterrupted = 130

var appConfig config.Config

// newLogger builds the console logger used for scope/category warnings.
// --debug lowers the threshold so every pipeline step is visible.
func newLogger(debug bool) *zap.Logger {
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core)
}

var rootCmd = &cobra.Command{
	Use:           "git-reap",
	Version:       "0.1.0",
	Short:         "git-reap deletes merged and stale Git branches interactively",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `git-reap classifies local (and optionally remote) branches into deletion
candidates: branches merged into a base branch via a merge commit on its
mainline, and branches with no recent activity. Candidates are confirmed
interactively before anything is deleted; --dry-run lists them without
touching the repository.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		customConfigPath, _ := cmd.Flags().GetString("config")

		var err error
		appConfig, err = config.Load(customConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// Flags override the config file.
		if base, _ := cmd.Flags().GetString("base"); base != "" {
			appConfig.BaseBranch = base
		}
		if protected, _ := cmd.Flags().GetStringSlice("protected"); len(protected) > 0 {
			appConfig.ProtectedBranches = protected
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		logger := newLogger(debug)
		defer func() { _ = logger.Sync() }()

		ctx := context.Background()

		if !gitcmd.IsInGitRepo(ctx) {
			return errors.New("not inside a Git repository")
		}

		staleDays := 0
		if cmd.Flags().Changed("stale") {
			staleDays, _ = cmd.Flags().GetInt("stale")
		}

		remoteEnabled, _ := cmd.Flags().GetBool("remote")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		opts := sweep.Options{
			BaseBranch: appConfig.BaseBranch,
			RemoteName: appConfig.RemoteName,
			Remote:     remoteEnabled,
			StaleDays:  staleDays,
			DryRun:     dryRun,
			Protected:  appConfig.ProtectedBranches,
		}

		logger.Debug("starting sweep",
			zap.String("base", opts.BaseBranch),
			zap.String("remote", opts.RemoteName),
			zap.Bool("remote_enabled", opts.Remote),
			zap.Int("stale_days", opts.StaleDays),
			zap.Bool("dry_run", opts.DryRun))

		sweeper := sweep.New(gitcmd.Ops{}, tui.Prompt{}, opts, logger, cmd.OutOrStdout())
		_, err := sweeper.Run(ctx)
		return err
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("base", "", "Base branch to check merge status against (default from config, then \"main\").")
	flags.BoolP("remote", "r", false, "Also classify and delete branches on the configured remote.")
	flags.Int("stale", 0, "Enable staleness classification with the given age threshold in days.")
	flags.Bool("dry-run", false, "List candidates and perform zero deletions.")
	flags.StringP("config", "c", "", "Path to a custom configuration file (default: ~/.config/git-reap/config.toml).")
	flags.StringSlice("protected", nil, "Comma-separated branch names never proposed for deletion.")
	flags.Bool("debug", false, "Enable debug logging.")

	// A bare --stale enables staleness with the default threshold.
	flags.Lookup("stale").NoOptDefVal = fmt.Sprint(config.DefaultStaleDays)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.Is(err, sweep.ErrAborted):
			fmt.Fprintln(os.Stderr, "Aborted; no further branches were deleted.")
			os.Exit(0)
		case errors.Is(err, sweep.ErrInterrupted):
			fmt.Fprintln(os.Stderr, "Interrupted.")
			os.Exit(exitCodeInterrupted)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
