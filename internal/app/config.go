package app

import "keywarden/internal/domain"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string           // config directory, e.g. $HOME/.keywarden
	ServerURL string           // registryd base URL; empty means local mode
	DBPath    string           // local registry db; defaults to Home/registry.db
	ContextID domain.ContextID // deployment context for activation digests
}
