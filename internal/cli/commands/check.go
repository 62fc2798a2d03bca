package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lox/internal/cli/config"
	"github.com/leapstack-labs/lox/internal/cli/output"
	"github.com/leapstack-labs/lox/internal/lox"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Watch bool
}

// CheckOutput is the structured form of the check command.
type CheckOutput struct {
	Files  []lox.FileReport `json:"files" yaml:"files"`
	Failed int              `json:"failed" yaml:"failed"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check <script>...",
		Short: "Check scripts for syntax errors",
		Long: `Scan and parse scripts concurrently and report their errors.

Each script is compiled independently. The command exits with status 65
when any script has errors and 74 when any cannot be read. With --watch
the scripts are checked again whenever they change.`,
		Example: `  lox check *.lox
  lox check a.lox b.lox -o json
  lox check expr.lox --watch`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-check scripts when they change")

	return cmd
}

func runCheck(cmd *cobra.Command, paths []string, opts *CheckOptions) error {
	cfg := getConfig(cmd)
	r := newRenderer(cmd, cfg)
	logger := config.GetLogger(cmd.Context())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	reports, err := lox.CheckFiles(ctx, paths, logger)
	if err != nil {
		return err
	}
	if err := renderCheck(r, reports); err != nil {
		return err
	}

	if !opts.Watch {
		return lox.CheckExit(reports)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r.Muted(fmt.Sprintf("Watching %d file(s), press Ctrl+C to stop", len(paths)))
	return lox.Watch(ctx, paths, cfg.WatchDebounce, logger, func(changed []string) {
		reports, err := lox.CheckFiles(ctx, changed, logger)
		if err != nil {
			logger.Warn("re-check failed", "error", err)
			return
		}
		if err := renderCheck(r, reports); err != nil {
			logger.Warn("failed to render check results", "error", err)
		}
	})
}

func renderCheck(r *output.Renderer, reports []lox.FileReport) error {
	failed := 0
	for _, rep := range reports {
		if !rep.OK() {
			failed++
		}
	}

	if ok, err := r.Structured(CheckOutput{Files: reports, Failed: failed}); ok {
		return err
	}

	markdown := r.EffectiveMode() == output.ModeMarkdown
	if markdown {
		r.Header(1, fmt.Sprintf("Check (%d files, %d failed)", len(reports), failed))
		r.Println("")
	}

	styles := r.Styles()
	for _, rep := range reports {
		switch {
		case rep.Error != "":
			r.Printf("%s: %s\n", rep.Path, styles.Error.Render(rep.Error))
		case len(rep.Diagnostics) > 0:
			for _, d := range rep.Diagnostics {
				r.Printf("%s: %s\n", rep.Path, styles.Error.Render(d.String()))
			}
		case rep.Trailing > 0:
			r.Printf("%s: %s\n", rep.Path, styles.Warning.Render(
				fmt.Sprintf("ok, %d token(s) after the expression ignored", rep.Trailing)))
		default:
			r.Printf("%s: %s\n", rep.Path, styles.Success.Render("ok"))
		}
	}

	if markdown {
		r.Println("")
	}
	r.Muted(fmt.Sprintf("%d file(s) checked, %d failed", len(reports), failed))
	return nil
}
