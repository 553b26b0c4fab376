package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sadopc/staffr/internal/config"
	"github.com/sadopc/staffr/internal/store"
	"github.com/sadopc/staffr/internal/tui"
)

const appName = "staffr"

var rootFlags struct {
	configPath string
	logLevel   string
	logJSON    bool
	logFile    string
	empty      bool
}

// logOut is the open --log-file, closed after the command runs.
var logOut io.Closer

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Timesheets, staffing and project follow-up in the terminal",
	Long: `staffr keeps collaborators, clients, projects and time entries in an
in-memory store and derives dashboards, reports and a working-day calendar
from them.

Run without a sub-command to open the interactive console. Data lives only
for the duration of the process; the reference data set is loaded unless
--empty is given.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
	RunE:               runTUI,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		_ = closeLogging(nil, nil)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configPath, "config", config.DefaultPath(), "path to the INI configuration file")
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.BoolVar(&rootFlags.logJSON, "log-json", false, "write logs as JSON")
	pf.StringVar(&rootFlags.logFile, "log-file", "", "write logs to this file (default stderr, or nowhere in the console)")
	pf.BoolVar(&rootFlags.empty, "empty", false, "start from an empty store instead of the reference data")
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(rootFlags.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", rootFlags.logLevel, err)
	}

	var out io.Writer = os.Stderr
	path := rootFlags.logFile
	if path == "" && !cmd.HasParent() {
		// The console owns the terminal.
		path = os.DevNull
	}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logOut = f
		out = f
	}

	slog.SetDefault(newLogger(out, level, rootFlags.logJSON))
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) error {
	if logOut == nil {
		return nil
	}
	err := logOut.Close()
	logOut = nil
	return err
}

func newLogger(w io.Writer, level slog.Level, asJSON bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// session is what every command works on.
type session struct {
	store *store.Store
	cfg   *config.Config
	now   time.Time
}

func openSession() (*session, error) {
	cfg, err := config.Load(rootFlags.configPath)
	if err != nil {
		return nil, err
	}

	opts := []store.Option{store.WithLogger(slog.Default())}
	if !rootFlags.empty {
		opts = append(opts, store.WithSeed())
	}
	s, err := store.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	slog.Debug("session opened", "config", rootFlags.configPath, "seeded", !rootFlags.empty)
	return &session{store: s, cfg: cfg, now: time.Now()}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}

func runTUI(_ *cobra.Command, _ []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	p := tea.NewProgram(tui.NewApp(sess.store, sess.cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run console: %w", err)
	}
	return nil
}
