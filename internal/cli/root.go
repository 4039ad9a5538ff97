// Package cli implements the jobdesk command line client. It talks to
// the same portal API as the web dashboard and shares its credential
// store, so a login in one is a login in both.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/me/jobdesk/internal/auth"
	"github.com/me/jobdesk/internal/config"
	"github.com/me/jobdesk/internal/logging"
	"github.com/me/jobdesk/internal/store"
	"github.com/me/jobdesk/pkg/jobportal"
)

var (
	flagAPI       string
	flagDB        string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger   *slog.Logger
	client   *jobportal.Client
	sessions *auth.Manager
	st       *store.SQLiteStore
)

// defaultAPI returns the portal URL, checking JOBDESK_API_URL first.
func defaultAPI() string {
	if s := os.Getenv("JOBDESK_API_URL"); s != "" {
		return s
	}
	return config.Default().APIBaseURL
}

// NewRootCmd creates the root cobra command for the jobdesk CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jobdesk",
		Short: "JobDesk — job board client",
		Long:  "JobDesk browses postings, manages applications, and keeps your job-portal session from the terminal.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.New(logging.ParseLevel(flagLogLevel), flagLogFormat)

			dbPath := flagDB
			if dbPath == "" {
				var err error
				dbPath, err = (config.Config{}).ResolveDBPath()
				if err != nil {
					return err
				}
			}

			var err error
			st, err = store.NewSQLiteStore(dbPath, logger)
			if err != nil {
				return fmt.Errorf("open credential store: %w", err)
			}
			if err := st.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migrate credential store: %w", err)
			}

			client = jobportal.NewClient(jobportal.DefaultConfig().WithBaseURL(flagAPI), logger)
			sessions = auth.NewManager(client, auth.NewTokenStore(st), logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if st != nil {
				st.Close()
			}
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagAPI, "api", defaultAPI(), "Job portal API URL (or JOBDESK_API_URL env)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "Credential database path (default ~/.jobdesk/jobdesk.db)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newJobsCmd(),
		newApplyCmd(),
		newApplicationsCmd(),
	)

	return root
}

// resumeSession restores the persisted session and fails when nobody
// is signed in.
func resumeSession(ctx context.Context) (*jobportal.User, error) {
	sessions.Resume(ctx)
	sess := sessions.Snapshot()
	if sess.User == nil {
		return nil, fmt.Errorf("not signed in, run 'jobdesk login' first")
	}
	return sess.User, nil
}
