package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"sportsnews/internal/application"
	"sportsnews/internal/domain"
	"sportsnews/internal/domain/entities"
	"sportsnews/internal/infrastructure/dictionary"
)

func (a *App) runAudit(ctx context.Context, args []string) error {
	fs := a.flagSet("audit")
	dir := fs.String("dir", a.cfg.LocalesDir, "directory holding <language>.json dictionaries")
	ref := fs.String("ref", a.cfg.ReferenceLanguage, "reference language")
	asJSON := fs.Bool("json", false, "print the report as JSON")
	failOnMissing := fs.Bool("fail-on-missing", false, "exit non-zero when any key is missing")
	notify := fs.Bool("notify", false, "post the summary to DISCORD_WEBHOOK_URL")
	uiLang := fs.String("ui-lang", a.cfg.UILanguage, "language of the console report")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	svc := application.NewDictionaryService(dictionary.NewFileStore(*dir))
	report, err := svc.Audit(*ref)
	if err != nil {
		return err
	}

	if *asJSON {
		if err := writeJSON(a, report); err != nil {
			return err
		}
	} else {
		a.printAudit(report, *uiLang)
	}

	if *notify {
		n, err := a.newNotifier(*uiLang)
		if err != nil {
			return err
		}
		if err := n.NotifyAudit(ctx, report); err != nil {
			return err
		}
	}

	if *failOnMissing && report.MissingCount() > 0 {
		return fmt.Errorf("%w: %d key(s)", domain.ErrMissingTranslations, report.MissingCount())
	}
	return nil
}

func (a *App) printAudit(report *entities.AuditReport, locale string) {
	fmt.Fprintln(a.out, a.t.T(locale, "audit_header", map[string]any{
		"Reference": report.Reference,
		"Count":     report.ReferenceKeys,
	}))
	for _, l := range report.Languages {
		if len(l.Missing) == 0 {
			fmt.Fprintln(a.out, a.t.T(locale, "audit_language_ok", map[string]any{"Language": l.Language}))
		} else {
			fmt.Fprintln(a.out, a.t.T(locale, "audit_language_missing", map[string]any{
				"Language": l.Language,
				"Count":    len(l.Missing),
			}))
			for _, key := range l.Missing {
				fmt.Fprintf(a.out, "   - %s\n", key)
			}
		}
		if len(l.Extra) > 0 {
			fmt.Fprintln(a.out, a.t.T(locale, "audit_language_extra", map[string]any{"Count": len(l.Extra)}))
		}
	}
	if n := report.MissingCount(); n > 0 {
		fmt.Fprintln(a.out, a.t.T(locale, "audit_summary_missing", map[string]any{"Count": n}))
	} else {
		fmt.Fprintln(a.out, a.t.T(locale, "audit_summary_ok", nil))
	}
}

func writeJSON(a *App, v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
