// Package main is the entry point for the qsgs command line tool
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dabingnn/QSanguosha/internal/config"
	"github.com/dabingnn/QSanguosha/internal/errors"
)

var (
	// Flags override the environment when set
	assetRoot string
	dataDir   string
	locale    string
	redisAddr string
	logLevel  string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "qsgs",
	Short: "Inspect generals, skills and translations",
	Long: `qsgs loads general packages and translations from a data directory and
answers questions about them: skills, descriptions, last words and assets.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&assetRoot, "assets", "", "asset root (QSGS_ASSET_ROOT)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (QSGS_DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "preferred locale (QSGS_LOCALE)")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "redis address for shared translations (QSGS_REDIS_ADDR)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (QSGS_LOG_LEVEL)")

	rootCmd.AddCommand(generalCmd)
	rootCmd.AddCommand(translationsCmd)
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("assets") {
		loaded.AssetRoot = assetRoot
	}
	if flags.Changed("data") {
		loaded.DataDir = dataDir
	}
	if flags.Changed("locale") {
		loaded.Locale = locale
	}
	if flags.Changed("redis") {
		loaded.RedisAddr = redisAddr
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: loaded.SlogLevel(),
	})))

	cfg = loaded
	return nil
}

// withApp builds the app for the duration of one command
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			slog.WarnContext(ctx, "failed to close app", "error", err)
		}
	}()

	return fn(ctx, a)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
