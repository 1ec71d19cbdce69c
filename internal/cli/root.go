package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/png-sorter/internal/classify"
	"github.com/ytget/png-sorter/internal/config"
	"github.com/ytget/png-sorter/internal/i18n"
	"github.com/ytget/png-sorter/internal/logging"
	"github.com/ytget/png-sorter/internal/model"
)

// GUILauncher starts the desktop interface with the resolved configuration
type GUILauncher func(cfg *config.Config, localization *i18n.Localization, logger *zap.Logger) error

// Options configures the root command
type Options struct {
	Version   string
	LaunchGUI GUILauncher
}

// runtime holds what PersistentPreRunE resolves for the subcommands
type runtime struct {
	opts       Options
	configFile string
	verbose    bool

	cfg          *config.Config
	logger       *zap.Logger
	localization *i18n.Localization
}

// Execute runs the command line with the process arguments
func Execute(ctx context.Context, opts Options) error {
	return NewRootCmd(opts).ExecuteContext(ctx)
}

// NewRootCmd builds a fresh command tree, used by Execute and by tests
func NewRootCmd(opts Options) *cobra.Command {
	rt := &runtime{opts: opts}

	cmd := &cobra.Command{
		Use:   "png-sorter [input_dir]",
		Short: "Sort PNG images into transparent and opaque directories",
		Long: `png-sorter copies every PNG file of a directory into one of two output
directories depending on whether the image uses transparency.

Running without an input directory launches the desktop interface when it is
available.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		Version:       opts.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.logger != nil {
				_ = rt.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if rt.opts.LaunchGUI != nil {
					return rt.opts.LaunchGUI(rt.cfg, rt.localization, rt.logger)
				}
				return cmd.Help()
			}
			return rt.classify(cmd, args[0])
		},
	}

	cmd.PersistentFlags().StringVar(&rt.configFile, "config", "", "config file (default is <user config dir>/png-sorter/png-sorter.yaml or ./png-sorter.yaml)")
	cmd.PersistentFlags().String("lang", "", `message language ("en", "zh", "ru", "system")`)
	cmd.PersistentFlags().String("log-level", "", `log level ("debug", "info", "warn", "error")`)
	cmd.PersistentFlags().BoolVarP(&rt.verbose, "verbose", "v", false, "print every processed file and debug logs")

	cmd.Flags().String("transparent", "", "output directory for images with transparency (default \"transparent\")")
	cmd.Flags().String("opaque", "", "output directory for fully opaque images (default \"opaque\")")

	cmd.AddCommand(newLicenseCmd(rt))
	return cmd
}

// init loads configuration and builds the logger and localization
func (rt *runtime) init(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags(), rt.configFile)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if rt.verbose {
		level = "debug"
	}
	logger, err := logging.NewLogger(level, !logging.IsTerminal(os.Stderr))
	if err != nil {
		return err
	}

	localization := i18n.NewLocalization()
	localization.SetLanguage(cfg.Lang)

	rt.cfg = cfg
	rt.logger = logger
	rt.localization = localization
	return nil
}

// classify runs one batch and prints the summary
func (rt *runtime) classify(cmd *cobra.Command, inputDir string) error {
	out := cmd.OutOrStdout()
	l := rt.localization

	fmt.Fprintln(out, headerStyle.Render(l.Format(i18n.KeyCLIProcessingDir, map[string]any{"Dir": inputDir})))

	svc := classify.NewService(rt.logger)
	if rt.verbose {
		svc.SetUpdateCallback(func(result *model.FileResult) {
			printResult(out, result)
		})
	}

	summary, err := svc.Run(cmd.Context(), inputDir, rt.cfg.Output.Transparent, rt.cfg.Output.Opaque)
	if err != nil {
		return err
	}

	printSummary(out, l, summary)
	return nil
}

func printResult(out io.Writer, result *model.FileResult) {
	if result.Skipped() {
		fmt.Fprintln(out, warnStyle.Render(fmt.Sprintf("  ! %s: %s", result.Name, result.Err)))
		return
	}
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("  %s -> %s", result.Name, result.Class)))
}

func printSummary(out io.Writer, l *i18n.Localization, summary *model.Summary) {
	fmt.Fprintln(out, successStyle.Render(l.GetText(i18n.KeyCLIDone)))
	fmt.Fprintln(out, transparentStyle.Render(l.Format(i18n.KeyCLITransparent, map[string]any{
		"Dir":   summary.TransparentDir,
		"Count": summary.Transparent,
	})))
	fmt.Fprintln(out, opaqueStyle.Render(l.Format(i18n.KeyCLIOpaque, map[string]any{
		"Dir":   summary.OpaqueDir,
		"Count": summary.Opaque,
	})))
	if summary.Skipped > 0 {
		fmt.Fprintln(out, warnStyle.Render(l.Format(i18n.KeyCLISkipped, map[string]any{"Count": summary.Skipped})))
	}
	fmt.Fprintln(out, dimStyle.Render(l.Format(i18n.KeyCLIElapsed, map[string]any{
		"Duration": summary.Duration().Round(time.Millisecond).String(),
	})))
}
