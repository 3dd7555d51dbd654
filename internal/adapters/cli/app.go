// Package cli implements the newsctl subcommands.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"sportsnews/internal/adapters/discord"
	"sportsnews/internal/config"
	"sportsnews/internal/domain"
	"sportsnews/internal/infrastructure/database"
	"sportsnews/internal/infrastructure/rest"
	"sportsnews/internal/ports/output"
)

// ErrUsage is returned for unknown commands or bad flags.
var ErrUsage = errors.New("usage")

type command struct {
	summary string
	run     func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"audit":     {"report reference keys missing from each dictionary", (*App).runAudit},
	"backfill":  {"insert default keys into dictionaries lacking them", (*App).runBackfill},
	"headlines": {"print localized headlines from the article source", (*App).runHeadlines},
	"schema":    {"list table columns of the content database", (*App).runSchema},
	"migrate":   {"apply the development schema migrations", (*App).runMigrate},
}

// App wires configuration and adapters to the use cases.
type App struct {
	cfg    *config.Config
	t      output.T
	out    io.Writer
	errOut io.Writer

	// Adapter factories; tests replace them.
	openArticles func(ctx context.Context) (output.ArticleRepository, func(), error)
	openDB       func(ctx context.Context) (database.Querier, func(), error)
	newNotifier  func(locale string) (output.AuditNotifier, error)
	migrate      func(dsn, path string) (uint, error)
}

func NewApp(cfg *config.Config, t output.T, out, errOut io.Writer) *App {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	a := &App{cfg: cfg, t: t, out: out, errOut: errOut, migrate: database.RunMigrations}
	a.openArticles = a.defaultArticles
	a.openDB = a.defaultDB
	a.newNotifier = a.defaultNotifier
	return a
}

// Run dispatches args[0] to its subcommand.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.usage()
		if len(args) == 0 {
			return ErrUsage
		}
		return nil
	}
	cmd, ok := commands[args[0]]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return cmd.run(a, ctx, args[1:])
}

// Describe renders err for the terminal, prefixing the localized message of
// domain errors.
func (a *App) Describe(err error, locale string) string {
	if code := domain.Code(err); code != "" {
		return fmt.Sprintf("%s (%v)", a.t.T(locale, "error_"+code, nil), err)
	}
	return err.Error()
}

func (a *App) usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(a.errOut, "usage: newsctl <command> [flags]")
	fmt.Fprintln(a.errOut)
	for _, name := range names {
		fmt.Fprintf(a.errOut, "  %-10s %s\n", name, commands[name].summary)
	}
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

func (a *App) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

func (a *App) defaultArticles(ctx context.Context) (output.ArticleRepository, func(), error) {
	switch a.cfg.ArticleSource {
	case config.SourcePostgres:
		db, closeDB, err := a.openDB(ctx)
		if err != nil {
			return nil, nil, err
		}
		return database.NewArticleRepository(db), closeDB, nil
	default:
		if err := a.cfg.RequireREST(); err != nil {
			return nil, nil, err
		}
		repo, err := rest.NewArticleRepository(a.cfg.SupabaseURL, a.cfg.SupabaseAnonKey, nil)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}

func (a *App) defaultDB(ctx context.Context) (database.Querier, func(), error) {
	if err := a.cfg.RequireDatabase(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrDatabaseRequired, err)
	}
	pool, err := database.NewPool(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	return pool, pool.Close, nil
}

func (a *App) defaultNotifier(locale string) (output.AuditNotifier, error) {
	if strings.TrimSpace(a.cfg.DiscordWebhookURL) == "" {
		return nil, errors.New("-notify needs DISCORD_WEBHOOK_URL")
	}
	return discord.NewAuditNotifier(a.cfg.DiscordWebhookURL, a.t, locale)
}
