// Package site emits the planned pages to disk: one article page per
// (language, id), then the aggregate pages (home, hubs, tags, archives,
// feeds, sitemaps) derived purely from the plan's indices.
//
// The plan is immutable by the time an Emitter sees it, so emission order is
// free to change without affecting link correctness. Article pages are
// written in ascending id order because the checkpoint records the highest
// id fully emitted in every language.
package site

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/trustdealzz/sitegen/internal/config"
	"github.com/trustdealzz/sitegen/internal/content"
	"github.com/trustdealzz/sitegen/internal/errors"
	"github.com/trustdealzz/sitegen/internal/links"
	"github.com/trustdealzz/sitegen/internal/logging"
	"github.com/trustdealzz/sitegen/internal/plan"
	"github.com/trustdealzz/sitegen/internal/render"
)

// Emitter writes one generation run to the output root.
type Emitter struct {
	cfg       *config.Config
	plan      *plan.Plan
	banks     *content.Banks
	renderer  *render.Renderer
	logger    logging.Logger
	collector *errors.ErrorCollector
	rng       *rand.Rand
}

// New creates an emitter over a fully built plan.
func New(cfg *config.Config, p *plan.Plan, banks *content.Banks, renderer *render.Renderer, logger logging.Logger, rng *rand.Rand) *Emitter {
	return &Emitter{
		cfg:       cfg,
		plan:      p,
		banks:     banks,
		renderer:  renderer,
		logger:    logger.WithComponent("emitter"),
		collector: errors.NewErrorCollector(),
		rng:       rng,
	}
}

// Collector exposes the per-page error collector for reporting after a run.
func (e *Emitter) Collector() *errors.ErrorCollector { return e.collector }

// Run emits the whole site. Page write failures are collected and skipped;
// failures while preparing shared output (assets, directories) abort the
// run. Cancelling the context stops cleanly at the next id boundary without
// corrupting the plan or the checkpoint.
func (e *Emitter) Run(ctx context.Context) error {
	if err := writeAssets(e.cfg.Output.Root); err != nil {
		return err
	}
	if err := writeRobots(e.cfg.Output.Root, e.plan.BaseURL()); err != nil {
		return err
	}

	checkpoint, err := LoadCheckpoint(e.cfg.Output.Root)
	if err != nil {
		return err
	}
	startID := checkpoint.LastIndex + 1
	if startID > 1 {
		e.logger.Info(ctx, "resuming from checkpoint", "start_id", startID, "run_id", checkpoint.RunID)
	}

	for id := startID; id <= e.plan.Total(); id++ {
		select {
		case <-ctx.Done():
			e.logger.Warn(ctx, ctx.Err(), "emission cancelled", "last_id", id-1)
			return ctx.Err()
		default:
		}

		for _, lang := range e.plan.Languages() {
			if err := e.emitArticle(lang, id); err != nil {
				rec := e.plan.Record(lang, id)
				e.collector.Add(errors.PageError{
					Lang:     lang,
					ID:       id,
					Path:     rec.Path,
					Message:  err.Error(),
					Severity: errors.ErrorSeverityError,
				})
				e.logger.Warn(ctx, err, "page emission failed", "lang", lang, "id", id)
			}
		}

		if id%e.cfg.Generate.Batch == 0 {
			checkpoint.LastIndex = id
			if err := checkpoint.Save(e.cfg.Output.Root); err != nil {
				return fmt.Errorf("save checkpoint: %w", err)
			}
			e.logger.Info(ctx, "checkpoint saved", "id", id, "total", e.plan.Total())
		}
	}

	if err := e.writeHome(); err != nil {
		return err
	}
	if err := e.writeHubs(); err != nil {
		return err
	}
	if err := e.writeTags(); err != nil {
		return err
	}
	if err := e.writeArchives(); err != nil {
		return err
	}
	if err := writeFeeds(e.cfg.Output.Root, e.plan.BaseURL(), e.plan); err != nil {
		return err
	}
	if _, err := WriteSitemaps(e.cfg.Output.Root, e.plan.BaseURL(), e.plan.URLs(), time.Now()); err != nil {
		return err
	}

	checkpoint.LastIndex = e.plan.Total()
	if err := checkpoint.Save(e.cfg.Output.Root); err != nil {
		return fmt.Errorf("save final checkpoint: %w", err)
	}

	e.logger.Info(ctx, "generation complete",
		"pages", e.plan.Total()*len(e.plan.Languages()),
		"page_errors", e.collector.Count())
	return nil
}

// emitArticle renders and writes one article page.
func (e *Emitter) emitArticle(lang string, id int) error {
	rec := e.plan.Record(lang, id)

	data := render.PageData{
		Record:     rec,
		Prev:       e.plan.Prev(lang, id),
		Next:       e.plan.Next(lang, id),
		Alternates: e.plan.Alternates(id),
		Internal: links.SampleInternal(e.plan, lang, id,
			e.cfg.Links.InternalPerPage, e.banks.Anchors(lang), e.rng),
		External: links.SampleExternal(content.ExternalCatalog,
			e.cfg.Links.ExternalMin, e.cfg.Links.ExternalMax, e.rng),
		Variant: render.Variants[e.rng.Intn(len(render.Variants))],
	}

	page := e.renderer.ArticlePage(data, e.rng)
	return e.writeFile(rec.Path, page)
}
