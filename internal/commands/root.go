package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/balkashynov/pomo/internal/alert"
	"github.com/balkashynov/pomo/internal/config"
	"github.com/balkashynov/pomo/internal/db"
	"github.com/balkashynov/pomo/internal/logging"
	"github.com/balkashynov/pomo/internal/schedule"
	"github.com/balkashynov/pomo/internal/session"
	"github.com/balkashynov/pomo/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "A terminal pomodoro timer",
	Long: `pomo is a pomodoro timer for the terminal.
Focus for a while, take a short break, and every fourth pomodoro take a long one.
Settings and today's stats are kept in a local database.`,
	Args: cobra.NoArgs,
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		if err := tui.RunTimerTUI(a.ctrl); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

// app holds everything a command needs once config, logging and the database are open
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *db.Store
	ctrl     *session.Controller
	closeLog func() error
}

// openApp loads the config, opens the log file and the database and builds the controller
func openApp() (*app, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	store, err := db.Open(cfg.DatabasePath)
	if err != nil {
		closeLog()
		return nil, err
	}

	var alerter session.Alerter = alert.Silent{}
	if cfg.SoundEnabled() {
		alerter = alert.NewPlayer(alert.DefaultTone(), cfg.Volume, os.Stdout, logger)
	}

	ctrl := session.New(store, schedule.NewClock(),
		session.WithAlerter(alerter),
		session.WithLogger(logger),
	)

	logger.Debug("app opened", "config", path, "database", cfg.DatabasePath)
	return &app{cfg: cfg, logger: logger, store: store, ctrl: ctrl, closeLog: closeLog}, nil
}

// Close stops the controller and releases the database and the log file
func (a *app) Close() {
	a.ctrl.Close()
	if err := a.store.Close(); err != nil {
		a.logger.Warn("close database", "error", err)
	}
	a.closeLog()
}

// withApp wraps a command function to open the app first
func withApp(fn func(*app, *cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		defer a.Close()
		fn(a, cmd, args)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pomo %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.pomo/config.yaml)")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
