// Package app wires application dependencies for the CLI.
//
// It builds the keystore, the registry (a local sqlite-backed service, or a
// client for a remote registryd) and exposes them via the Wire struct for
// commands to use.
package app
