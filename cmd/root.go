package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pr0digi/jspass-cli/internal/clipboard"
	"github.com/pr0digi/jspass-cli/internal/config"
	"github.com/pr0digi/jspass-cli/internal/logger"
	"github.com/pr0digi/jspass-cli/internal/restore"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "restore-clipboard [previous-contents]",
	Short: "Restore the clipboard after a delay",
	Long: `restore-clipboard waits PASSWORD_STORE_CLIP_TIME seconds (default 45), then
writes its first argument to the PASSWORD_STORE_X_SELECTION selection
(default "clipboard") through xclip. It never prints anything and always
exits 0.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 && args[0] == "--" {
			args = args[1:]
		}
		var payload string
		if len(args) > 0 {
			payload = args[0]
		}
		run(cmd.Context(), payload)
	},
}

func run(ctx context.Context, payload string) {
	// Load always returns a usable config; cfgErr only describes what was ignored
	cfg, cfgErr := config.Load()

	l, closeLog, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		l, closeLog = logger.Discard(), func() error { return nil }
	}
	defer func() { _ = closeLog() }()

	if cfgErr != nil {
		l.Warn("ignoring invalid configuration", "err", cfgErr)
	}

	w := newWriter(cfg, l)
	r := restore.New(cfg, w, l)

	// Best-effort cleanup: a failed restore must not crash, print or change
	// the exit status. The failure is only visible in the optional log file.
	_ = r.Run(ctx, payload)
}

func newWriter(cfg *config.Config, l *log.Logger) clipboard.Writer {
	w, err := clipboard.NewWriter(cfg.Backend, cfg.Tool, cfg.SelectionFlag)
	if err != nil {
		l.Warn("falling back to default clipboard tool", "tool", config.DefaultTool, "err", err)
		return clipboard.NewCommand(config.DefaultTool, config.DefaultSelectionFlag)
	}
	return w
}

// execute runs the root command with args as given after the program name.
// The leading "--" keeps cobra from treating a payload such as "__complete"
// as one of its own commands.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	rootCmd.SetArgs(append([]string{"--"}, args...))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.ExecuteContext(ctx)
}

// Execute runs the program. It always returns normally so the process exits 0.
func Execute() {
	_ = execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}
