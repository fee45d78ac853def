package app

import (
	"context"
	"path/filepath"

	"keywarden/internal/domain"
	"keywarden/internal/protocol/activation"
	"keywarden/internal/registryhttp"
	"keywarden/internal/services/registry"
	"keywarden/internal/store"
	"keywarden/internal/store/sqlite"
)

// Wire bundles the stores, services, and clients the CLI runs against.
type Wire struct {
	Keys     domain.KeyStore
	Registry domain.Registry

	client *registryhttp.Client
	local  *registry.Service
	events domain.EventLog
	db     *sqlite.Store
}

// NewWire constructs the dependency graph from cfg. In local mode the
// registry runs in-process over a sqlite store under cfg.Home; with a
// ServerURL set, registry calls go to the remote daemon instead.
func NewWire(cfg Config) (*Wire, error) {
	w := &Wire{Keys: store.NewFileKeyStore(cfg.Home)}

	if cfg.ServerURL != "" {
		w.client = registryhttp.NewClient(cfg.ServerURL)
		w.Registry = w.client
		return w, nil
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = filepath.Join(cfg.Home, "registry.db")
	}
	db, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, err
	}
	w.db = db
	w.events = db
	w.local = registry.New(db, db, cfg.ContextID)
	w.Registry = w.local
	return w, nil
}

// Digest returns the activation digest for target plus the deployment
// context it is bound to, computed locally or fetched from the daemon.
func (w *Wire) Digest(ctx context.Context, target domain.Address) ([]byte, domain.ContextID, error) {
	if w.client != nil {
		return w.client.Digest(ctx, target)
	}
	digest := activation.Digest(target, w.local.ContextID())
	return digest[:], w.local.ContextID(), nil
}

// Events returns the registry audit log.
func (w *Wire) Events(ctx context.Context) ([]domain.Event, error) {
	if w.client != nil {
		return w.client.Events(ctx)
	}
	return w.events.Events(ctx, 0)
}

// Close releases the local store, if any.
func (w *Wire) Close() error {
	if w.db != nil {
		return w.db.Close()
	}
	return nil
}
