// Command registryd serves the backup-key registry over JSON HTTP.
//
// Configuration comes from the environment:
//
//	REGISTRYD_ADDR        listen address (default :8080)
//	REGISTRYD_DB_PATH     sqlite database path (default data/registry.db)
//	REGISTRYD_CONTEXT_ID  deployment context bound into activation digests
package main
