package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/seclab/labstatus/internal/config"
	"github.com/seclab/labstatus/internal/logfile"
	"github.com/seclab/labstatus/internal/ui"
	"github.com/spf13/cobra"
)

var (
	version  = "dev"
	dataDir  string
	interval time.Duration
	debug    bool
)

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".labstatus")
	}
	return filepath.Join(home, ".labstatus")
}

var rootCmd = &cobra.Command{
	Use:   "labstatus",
	Short: "Show and toggle the lab status in your terminal",
	Long: `labstatus polls the lab status API and shows the current state as a large banner.

Keys:
  any key   toggle open/closed
  f         lab is on fire (while open)
  c         coffee break (while open)
  |         custom status and color (while open)
  ctrl+c    quit

Environment:
  API_URL    status API endpoint
  API_USER   user for status changes
  API_PASS   password for status changes
  WEBHOOK    chat webhook announcing changes (optional)`,
	Version:      version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runLoop,
}

func init() {
	rootCmd.Flags().StringVar(&dataDir, "data-dir", defaultDataDir(), "directory holding config.yaml and the log file")
	rootCmd.Flags().DurationVar(&interval, "interval", 0, "refresh interval (overrides refresh_interval)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	mtp.WithDescribe(rootCmd, &mtp.DescribeOptions{})
}

func Execute() error {
	return rootCmd.Execute()
}

func runLoop(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(dataDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.APIURL == "" {
		if err := runSetupPrompt(cfg); err != nil {
			return err
		}
	}
	if interval > 0 {
		cfg.RefreshInterval = interval
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lf, err := logfile.Open(cfg.LogFile, cfg.LogMaxLines)
	if err != nil {
		return err
	}
	defer lf.Close()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := lf.Logger(level)

	sess, err := newSession(cfg, logger, lf)
	if err != nil {
		return err
	}

	logger.Info("starting labstatus",
		"version", version,
		"api_url", cfg.APIURL,
		"webhook", cfg.Webhook != "",
		"refresh_interval", cfg.RefreshInterval)
	if err := ui.Run(sess); err != nil {
		logger.Error("terminal UI failed", "err", err)
		return fmt.Errorf("running terminal UI: %w", err)
	}
	logger.Info("labstatus stopped")
	return nil
}
