package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var (
	imageSize   string
	imageOutput string
)

var configurationCmd = &cobra.Command{
	Use:   "configuration",
	Short: "Show the image base URL and available sizes",
	Args:  cobra.NoArgs,
	RunE:  runConfiguration,
}

var imageURLCmd = &cobra.Command{
	Use:   "image-url <path>",
	Short: "Resolve an image path to an absolute URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runImageURL,
}

var imageCmd = &cobra.Command{
	Use:   "image <path>",
	Short: "Download an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runImage,
}

func init() {
	rootCmd.AddCommand(configurationCmd, imageURLCmd, imageCmd)

	for _, c := range []*cobra.Command{imageURLCmd, imageCmd} {
		c.Flags().StringVarP(&imageSize, "size", "s", "original", "image size token, e.g. w500")
	}
	imageCmd.Flags().StringVarP(&imageOutput, "output", "o", "", "output file (default is the image file name)")
}

func runConfiguration(cmd *cobra.Command, args []string) error {
	configuration, err := client.Configuration(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), configuration)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Image base URL: %s\n", configuration.Images.SecureBaseURL)

	sizes := configuration.Sizes()
	categories := make([]string, 0, len(sizes))
	for category := range sizes {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		fmt.Fprintf(w, "  %-9s %s\n", category+":", strings.Join(sizes[category], ", "))
	}
	return nil
}

func runImageURL(cmd *cobra.Command, args []string) error {
	url, err := client.ImageURL(cmd.Context(), args[0], imageSize)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}

func runImage(cmd *cobra.Command, args []string) error {
	output := imageOutput
	if output == "" {
		output = filepath.Base(args[0])
	}

	tracker, finish := startProgress("Downloading")
	data, err := client.Image(cmd.Context(), args[0], imageSize, tracker)
	finish()
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}

	logger.Info().Str("file", output).Int("bytes", len(data)).Msg("Saved image")
	return nil
}
