package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"sportsnews/internal/domain"
	"sportsnews/internal/infrastructure/database"
)

func (a *App) runSchema(ctx context.Context, args []string) error {
	fs := a.flagSet("schema")
	schema := fs.String("schema", "public", "database schema")
	tables := fs.String("tables", "articles", "comma-separated tables (empty = all)")
	uiLang := fs.String("ui-lang", a.cfg.UILanguage, "language of labels")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	db, closeDB, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	cols, err := database.NewSchemaInspector(db).Columns(ctx, *schema, splitList(*tables))
	if err != nil {
		return err
	}
	if len(cols) == 0 {
		fmt.Fprintln(a.out, a.t.T(*uiLang, "schema_empty", nil))
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TABLE\tCOLUMN\tTYPE\tNULL\tDEFAULT")
	for _, c := range cols {
		null := "NO"
		if c.Nullable {
			null = "YES"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.Table, c.Column, c.DataType, null, c.Default)
	}
	return w.Flush()
}

func (a *App) runMigrate(_ context.Context, args []string) error {
	fs := a.flagSet("migrate")
	path := fs.String("path", a.cfg.MigrationsPath, "migrations directory")
	uiLang := fs.String("ui-lang", a.cfg.UILanguage, "language of labels")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if err := a.cfg.RequireDatabase(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDatabaseRequired, err)
	}
	version, err := a.migrate(a.cfg.DatabaseURL, *path)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.t.T(*uiLang, "migrate_done", map[string]any{"Version": version}))
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
