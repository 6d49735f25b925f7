package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/curtisbraxdale/taday-front/internal/api"
	"github.com/curtisbraxdale/taday-front/internal/config"
	"github.com/curtisbraxdale/taday-front/internal/localstore"
	"github.com/curtisbraxdale/taday-front/internal/notify"
	"github.com/curtisbraxdale/taday-front/internal/session"
	"github.com/curtisbraxdale/taday-front/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Shared application state, built once per invocation by initApp.
var (
	logger *slog.Logger
	client *api.Client
	cache  *localstore.SQLite
	sess   *session.Session
	events *store.Events
	todos  *store.Todos
)

var rootCmd = &cobra.Command{
	Use:   "taday",
	Short: "A CLI for the Taday task and calendar service",
	Long: `taday is a terminal client for the Taday service: manage your
events, todos and tags from the command line, with your account and
data living on the Taday backend.`,
}

// initApp wires the client, session and stores, and panics on failure
func initApp() {
	cfg := config.Load()

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	var err error
	client, err = api.New(cfg.APIBaseURL, logger)
	if err != nil {
		panic(err)
	}

	cache, err = localstore.Open(cfg.DataDir)
	if err != nil {
		panic(err)
	}

	notifier := notify.NewTerminal()
	sess = session.New(client, cache, notifier, logger)
	events = store.NewEvents(client, notifier, logger)
	todos = store.NewTodos(client, notifier, logger)
}

// withApp wraps a command function to wire the application first
func withApp(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initApp()
		fn(cmd, args)
	}
}

// withSession additionally restores the session and refuses to run
// signed out
func withSession(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return withApp(func(cmd *cobra.Command, args []string) {
		sess.Restore(context.Background())
		if !sess.IsAuthenticated() {
			cmd.PrintErrln("You're not logged in. Run 'taday login' first.")
			return
		}
		fn(cmd, args)
	})
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
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(todoCmd)
	rootCmd.AddCommand(eventCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(agendaCmd)
	rootCmd.AddCommand(versionCmd)
}
