// Command roster-solver reads a month's duty-roster request (§6 input),
// runs it through internal/pipeline, and writes the output document
// atomically to disk. It is a one-shot batch CLI: one invocation solves
// one month and exits (§1/§5 — no server, no long-lived state).
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/carehome/roster-solver/internal/pipeline"
	"github.com/carehome/roster-solver/internal/render"
	"github.com/carehome/roster-solver/internal/rosterlog"
	"github.com/carehome/roster-solver/internal/schema"
)

var (
	inPath       string
	inPathAlias  string
	outPath      string
	outPathAlias string
	timeLimit    float64
	preview      bool
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "roster-solver",
		Short:         "Solve a monthly staff duty roster with CP-SAT",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSolve,
	}

	cmd.Flags().StringVar(&inPath, "in", "", "input JSON file (required)")
	cmd.Flags().StringVar(&inPathAlias, "input", "", "alias of --in")
	cmd.Flags().StringVar(&outPath, "out", "", "output JSON file (required)")
	cmd.Flags().StringVar(&outPathAlias, "output", "", "alias of --out")
	cmd.Flags().Float64Var(&timeLimit, "time_limit", defaultTimeLimit(), "solver wall-clock limit in seconds")
	cmd.Flags().BoolVar(&preview, "preview", false, "also render a human-readable table to stderr")

	return cmd
}

// defaultTimeLimit resolves the solver ceiling from ROSTER_TIME_LIMIT if
// set, falling back to schema.DefaultTimeLimitSeconds. A malformed
// environment value is ignored rather than treated as fatal; the flag
// default is cosmetic only, --time_limit always wins if passed.
func defaultTimeLimit() float64 {
	if v := os.Getenv("ROSTER_TIME_LIMIT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return schema.DefaultTimeLimitSeconds
}

func runSolve(cmd *cobra.Command, args []string) error {
	in := firstNonEmpty(inPath, inPathAlias)
	out := firstNonEmpty(outPath, outPathAlias)
	if in == "" || out == "" {
		return fmt.Errorf("--in and --out are required")
	}

	installSignalLogger()

	logger := rosterlog.New(os.Stderr, "cli", isTerminal(os.Stderr))
	logger.Info("starting solve", "in", in, "out", out, "timeLimitSeconds", timeLimit)

	data, err := os.ReadFile(in)
	if err != nil {
		logger.Error("failed to read input file", "path", in, "err", err.Error())
		return fmt.Errorf("internal error: %w", err)
	}

	doc, err := pipeline.Run(data, pipeline.Options{TimeLimitSeconds: timeLimit, Logger: logger})
	if err != nil {
		logger.Error("pipeline failed", "err", err.Error())
		return fmt.Errorf("internal error: %w", err)
	}

	if err := writeAtomic(out, doc); err != nil {
		logger.Error("failed to write output file", "path", out, "err", err.Error())
		return fmt.Errorf("internal error: %w", err)
	}

	if doc.Infeasible {
		logger.Warn("solve finished infeasible", "reason", doc.Reason)
	} else {
		logger.Info("solve finished", "assigned", doc.Summary.Totals.Assigned)
	}

	if preview && !doc.Infeasible {
		render.Preview(os.Stderr, doc)
	}

	// Per §6/§7 the process exits 0 whenever the pipeline itself ran to
	// completion, infeasible:true included; only the returns above (I/O
	// and InternalError) are non-zero.
	return nil
}

// writeAtomic writes doc as pretty-printed JSON to a temp file in the
// destination directory and renames it into place, so a crash or signal
// mid-write never leaves a partial result at outPath (§5).
func writeAtomic(outPath string, doc render.Document) error {
	data, err := doc.MarshalIndent()
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dirOf(outPath), ".roster-solver-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, outPath); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// installSignalLogger logs the name of a terminating signal before the
// default Go runtime handling kills the process. It does not attempt to
// intercept SIGTERM/SIGINT to delay shutdown — §5 states cancellation
// mid-solve is not supported, so the only thing worth doing here is
// making the abrupt exit legible in the log instead of silent.
func installSignalLogger() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-ch
		if s, ok := sig.(syscall.Signal); ok {
			fmt.Fprintf(os.Stderr, "roster-solver: received signal %s, exiting\n", unix.SignalName(s))
		}
		os.Exit(1)
	}()
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0 && !color.NoColor
}
