package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/dabingnn/QSanguosha/internal/assets"
	"github.com/dabingnn/QSanguosha/internal/config"
	"github.com/dabingnn/QSanguosha/internal/engine"
	"github.com/dabingnn/QSanguosha/internal/errors"
	"github.com/dabingnn/QSanguosha/internal/orchestrators/general"
	"github.com/dabingnn/QSanguosha/internal/redis"
	"github.com/dabingnn/QSanguosha/internal/repositories/packages"
	"github.com/dabingnn/QSanguosha/internal/translation"
)

// app is the wired object graph shared by the commands
type app struct {
	cfg      *config.Config
	engine   *engine.Engine
	catalog  *translation.Catalog
	store    translation.Store
	audio    *assets.AudioLibrary
	generals general.Service

	// localCatalog holds only the tables read from the data directory
	localCatalog *translation.Catalog
	redisClient  redis.Client
}

// newApp loads translations and packages from the data directory and wires
// the services on top of them.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	a := &app{cfg: cfg}

	assetStore, err := assets.NewFSStore(&assets.FSStoreConfig{Root: cfg.AssetRoot})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create asset store")
	}

	a.audio, err = assets.NewAudioLibrary(&assets.AudioLibraryConfig{Store: assetStore})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create audio library")
	}

	dataFS := os.DirFS(cfg.DataDir)
	a.catalog, err = loadCatalog(cfg.Locale, dataFS)
	if err != nil {
		return nil, err
	}
	a.localCatalog, err = loadCatalog(cfg.Locale, dataFS)
	if err != nil {
		return nil, err
	}

	if cfg.RedisEnabled() {
		if err := a.connectStore(ctx); err != nil {
			return nil, err
		}
	}

	a.engine, err = engine.New(&engine.Config{
		EventBus:   events.NewBus(),
		DiceRoller: dice.DefaultRoller,
		Translator: a.catalog,
		Audio:      a.audio,
		Assets:     assetStore,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	repo, err := packages.NewFS(&packages.FSConfig{FS: dataFS, Installer: a.engine})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create package repository")
	}
	if err := loadPackages(ctx, repo); err != nil {
		return nil, err
	}

	a.generals, err = general.NewOrchestrator(&general.Config{
		Catalog:    a.engine,
		Translator: a.catalog,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create general orchestrator")
	}

	return a, nil
}

// connectStore opens the shared translation store and merges the table of
// the served locale into the catalog. A missing table is not an error.
func (a *app) connectStore(ctx context.Context) error {
	client, err := redis.NewClient(a.cfg.RedisAddr, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create redis client")
	}
	a.redisClient = client

	a.store, err = translation.NewRedis(&translation.RedisConfig{Client: client})
	if err != nil {
		return errors.Wrap(err, "failed to create translation store")
	}

	locale := a.catalog.Locale()
	if locale == "" {
		locale = a.cfg.Locale
	}

	out, err := a.store.Load(ctx, translation.LoadInput{Locale: locale})
	switch {
	case errors.IsNotFound(err):
		slog.DebugContext(ctx, "no shared translations", "locale", locale)
		return nil
	case err != nil:
		slog.WarnContext(ctx, "shared translations unavailable", "locale", locale, "error", err)
		return nil
	}

	if err := a.catalog.Merge(out.Locale, out.Messages); err != nil {
		return errors.Wrap(err, "failed to merge shared translations")
	}
	return nil
}

func loadCatalog(locale string, fsys fs.FS) (*translation.Catalog, error) {
	catalog, err := translation.NewCatalog(&translation.CatalogConfig{Locale: locale})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create translation catalog")
	}
	if err := catalog.LoadFS(fsys, translation.DefaultPattern); err != nil {
		return nil, errors.Wrap(err, "failed to load translations")
	}
	return catalog, nil
}

func loadPackages(ctx context.Context, repo packages.Repository) error {
	list, err := repo.List(ctx, packages.ListInput{})
	if err != nil {
		return errors.Wrap(err, "failed to list packages")
	}
	if len(list.Paths) == 0 {
		slog.WarnContext(ctx, "no package files found", "pattern", packages.DefaultPattern)
	}

	for _, path := range list.Paths {
		if _, err := repo.Load(ctx, packages.LoadInput{Path: path}); err != nil {
			return errors.Wrapf(err, "failed to load %s", path)
		}
	}
	return nil
}

// Close releases the redis connection, if any
func (a *app) Close() error {
	if a.redisClient == nil {
		return nil
	}
	return a.redisClient.Close()
}
