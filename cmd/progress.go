package cmd

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/s0up4200/tmdbkit/progress"
)

// progressSteps is the resolution of the rendered bar
const progressSteps = 1000

// progressEnabled reports whether a bar should be drawn on stderr
func progressEnabled() bool {
	if noProgress || (cfg != nil && !cfg.Output.Progress) {
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// startProgress returns the tracker to hand to a fan-out and a function that
// finishes the bar. Without a terminal the tracker records nothing.
func startProgress(description string) (progress.Tracker, func()) {
	if !progressEnabled() {
		return progress.Nop, func() {}
	}
	return renderProgress(os.Stderr, description)
}

// renderProgress observes a new progress tree and draws it to w
func renderProgress(w io.Writer, description string) (*progress.Node, func()) {
	bar := progressbar.NewOptions(progressSteps,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	root := progress.New()
	root.Observe(func(value float64) {
		_ = bar.Set(int(value * progressSteps))
	})

	return root, func() {
		_ = bar.Finish()
	}
}
