package main

import (
	"errors"
	"fmt"
	"github.com/aoiview/seqchart/ctrl/chart"
	"github.com/aoiview/seqchart/ctrl/chart/scans"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"io"
	"os"
	"strings"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage error")

// two-letter short forms accepted for compatibility with existing callers;
// pflag shorthands are single characters, so these are rewritten up front
var legacyFlags = map[string]string{
	"-dp": "--datapath",
	"-sp": "--savepath",
}

func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if len(arg) >= 3 && !strings.HasPrefix(arg, "--") {
			if long, ok := legacyFlags[arg[:3]]; ok {
				switch value := arg[3:]; {
				case value == "":
					arg = long
				case strings.HasPrefix(value, "="):
					arg = long + value
				default:
					arg = long + "=" + value
				}
			}
		}
		out = append(out, arg)
	}
	return out
}

type options struct {
	dataPath string
	savePath string
	verbose  bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "seqchart --datapath <file.csv> --savepath <dir>",
		Short: "Render an AOI sequence chart from a gaze event log",
		Long: "Reads a CSV event log with Timestamp (ms) and AOI columns and writes\n" +
			"an event raster of the AOI hits over time to <savepath>/" + chart.OutputName + ".",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.dataPath == "" || opts.savePath == "" {
				return fmt.Errorf("%w: --datapath and --savepath must not be empty", errUsage)
			}
			cmd.SilenceUsage = true
			if opts.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return chart.Generate(opts.dataPath, opts.savePath)
		},
	}
	flags := root.Flags()
	flags.StringVar(&opts.dataPath, "datapath", "", "path to the event log CSV (short form -dp)")
	flags.StringVar(&opts.savePath, "savepath", "", "existing directory to write "+chart.OutputName+" into (short form -sp)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")
	_ = root.MarkFlagRequired("datapath")
	_ = root.MarkFlagRequired("savepath")
	return root
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, scans.ErrData), errors.Is(err, chart.ErrIO):
		return exitError
	default:
		return exitUsage
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	logrus.SetOutput(stderr)
	logrus.SetLevel(logrus.InfoLevel)

	root := newRootCommand()
	root.SetArgs(normalizeArgs(args))
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	code := exitCode(err)
	if err != nil {
		if code == exitUsage {
			logrus.WithError(err).Error("invalid arguments")
		} else {
			logrus.WithError(err).Error("failed to generate sequence chart")
		}
	}
	return code
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
