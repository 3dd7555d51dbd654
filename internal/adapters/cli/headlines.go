package cli

import (
	"context"
	"fmt"
	"strings"

	"sportsnews/internal/application"
	"sportsnews/internal/domain/entities"
	"sportsnews/pkg/tz"
)

const dateLayout = "02/01/2006 15:04"

func (a *App) runHeadlines(ctx context.Context, args []string) error {
	fs := a.flagSet("headlines")
	lang := fs.String("lang", a.cfg.ReferenceLanguage, "content language")
	limit := fs.Int("limit", application.DefaultHeadlineLimit, "number of articles")
	slug := fs.String("slug", "", "render a single article")
	explain := fs.Bool("explain", false, "show which translations nesting each title came from")
	asJSON := fs.Bool("json", false, "print articles as JSON")
	uiLang := fs.String("ui-lang", a.cfg.UILanguage, "language of labels")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	loc, err := tz.Load(a.cfg.SiteTimezone)
	if err != nil {
		return err
	}
	repo, closeRepo, err := a.openArticles(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	svc := application.NewArticleService(repo, loc)
	var articles []entities.LocalizedArticle
	if *slug != "" {
		one, err := svc.Article(ctx, *slug, *lang)
		if err != nil {
			return err
		}
		articles = []entities.LocalizedArticle{*one}
	} else {
		articles, err = svc.Headlines(ctx, *lang, *limit)
		if err != nil {
			return err
		}
	}

	if *asJSON {
		return writeJSON(a, articles)
	}
	if len(articles) == 0 {
		fmt.Fprintln(a.out, a.t.T(*uiLang, "headlines_empty", nil))
		return nil
	}
	for _, art := range articles {
		a.printArticle(art, *uiLang, *explain)
	}
	return nil
}

func (a *App) printArticle(art entities.LocalizedArticle, locale string, explain bool) {
	var b strings.Builder
	if art.Category != "" {
		b.WriteString("[" + art.Category + "] ")
	}
	b.WriteString(art.Title)
	if art.PublishedAt.IsZero() {
		b.WriteString(" · " + a.t.T(locale, "headlines_draft", nil))
	} else {
		b.WriteString(" · " + a.t.T(locale, "headlines_published", map[string]any{
			"Date": art.PublishedAt.Format(dateLayout),
		}))
	}
	if explain {
		b.WriteString(fmt.Sprintf(" (%s)", art.TitleSource))
	}
	fmt.Fprintln(a.out, b.String())
	if art.Excerpt != "" {
		fmt.Fprintf(a.out, "    %s\n", art.Excerpt)
	}
}
