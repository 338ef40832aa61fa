package cmd

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// releaseRepository is where update looks for published releases
const releaseRepository = "s0up4200/tmdbkit"

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records the build metadata injected at link time
func SetVersion(v, t string) {
	version = v
	buildTime = t
	rootCmd.Version = v
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	// Version needs neither config nor client
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tmdbkit %s (built %s, %s/%s)\n", version, buildTime, runtime.GOOS, runtime.GOARCH)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update tmdbkit to the latest release",
	Args:  cobra.NoArgs,
	RunE:  runUpdate,
}

func init() {
	rootCmd.AddCommand(versionCmd, updateCmd)
}

// currentVersion parses the build version; development builds have none
func currentVersion() (semver.Version, error) {
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return semver.Version{}, fmt.Errorf("cannot update a development build (version %q)", version)
	}
	return v, nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	current, err := currentVersion()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(releaseRepository))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s/%s", runtime.GOOS, runtime.GOARCH)
	}

	if latest.LessOrEqual(current.String()) {
		fmt.Fprintf(cmd.OutOrStdout(), "Already up to date (%s).\n", current)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	logger.Info().
		Str("current", current.String()).
		Str("latest", latest.Version()).
		Msg("Updating")

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated to %s.\n", latest.Version())
	return nil
}
