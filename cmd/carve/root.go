package main

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/carve"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	in      string
	out     string
	color   bool
	verbose bool
	workers int
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "carve",
		Short:         "Correlation filters and content-aware resizing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			carve.SetLogger(newLogger(cmd.ErrOrStderr(), g.verbose))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&g.in, "in", "i", "", "input image `path`")
	pf.StringVarP(&g.out, "out", "o", "", "output image `path`; the extension picks the format")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "log debug output to stderr")
	pf.IntVarP(&g.workers, "workers", "w", runtime.GOMAXPROCS(0), "goroutines used per image")
	_ = root.MarkPersistentFlagRequired("in")
	_ = root.MarkPersistentFlagRequired("out")

	root.AddCommand(
		newInvertCmd(g),
		newBlurCmd(g),
		newSharpenCmd(g),
		newEdgesCmd(g),
		newCarveCmd(g),
	)
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// summary writes one line describing a finished run, with grouped digits.
func summary(w io.Writer, op string, inW, inH, outW, outH int, path string) {
	p := message.NewPrinter(language.English)
	_, _ = p.Fprintf(w, "%s: %d×%d -> %d×%d (%d pixels) written to %s\n",
		op, inW, inH, outW, outH, outW*outH, path)
}
