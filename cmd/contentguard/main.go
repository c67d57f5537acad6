package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"contentguard/config"
	"contentguard/server"
	"contentguard/services"
	"contentguard/tui"
	"contentguard/utils"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errReported marks failures whose message was already printed.
var errReported = errors.New("analysis failed")

type options struct {
	configPath string
	verbose    bool
	logFile    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "contentguard",
		Short: "ContentGuard - paste content, get a risk report",
		Long: `ContentGuard submits text to a content analysis endpoint and renders the
risk score, tone, plagiarism risk, issues and recommendations it returns.

Run without arguments to start the terminal interface.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "./config/config.prod.yml", "path to config file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			logger, err := utils.NewLogger(cfg.Log, opts.verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()
			return server.Run(cmd.Context(), cfg, logger)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the terminal interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}
	tuiCmd.Flags().StringVar(&opts.logFile, "log-file", "contentguard.log", "log destination when --verbose is set")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [file|-]",
		Short: "Analyze a file (or stdin) once and print the report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts, args)
		},
	}

	root.AddCommand(serveCmd, tuiCmd, analyzeCmd)
	return root
}

func runTUI(ctx context.Context, opts *options) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	// the terminal belongs to the UI, so logs go to a file or nowhere
	logger := zap.NewNop()
	if opts.verbose {
		if logger, err = utils.NewFileLogger(opts.logFile); err != nil {
			return err
		}
		defer logger.Sync()
	}

	analyzer := services.NewAnalyzerClient(cfg.Analyzer.URL, cfg.Analyzer.Timeout, services.WithLogger(logger))
	p := tea.NewProgram(tui.NewModel(ctx, analyzer, logger), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal interface failed: %w", err)
	}
	return nil
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

func runAnalyze(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	logger, err := utils.NewLogger(cfg.Log, opts.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	content, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	sub := services.NewSubmission(content)
	if !sub.CanSubmit() {
		return errors.New("nothing to analyze: input is empty")
	}
	logger.Info("analyzing",
		zap.String("size", humanize.Bytes(uint64(len(content)))),
		zap.String("analyzer", cfg.Analyzer.URL),
	)

	analyzer := services.NewAnalyzerClient(cfg.Analyzer.URL, cfg.Analyzer.Timeout, services.WithLogger(logger))
	submitErr := sub.Submit(cmd.Context(), analyzer)

	st := sub.Snapshot()
	styles := tui.DefaultStyles()
	if submitErr != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), tui.RenderError(styles, st.Error))
		return errReported
	}
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(styles, st.Report))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, strings.TrimSpace(err.Error()))
		}
		os.Exit(1)
	}
}
