// Package commands defines the keywarden CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - init           Generate a signing key into the encrypted keystore
//   - keys           List keystore addresses
//   - register       Create your registry record
//   - bind           Bind a mutual recovery partner
//   - update-backup  Replace your backup credential
//   - details        Show a registry record
//   - digest         Print the activation digest a signer must sign
//   - sign           Sign an activation for a target with a keystore key
//   - activate       Submit an activation signature for your partner
//   - events         Print the registry audit log
//
// # Implementation
//
// The root command builds a dependency graph (keystore, registry service or
// remote client) before any subcommand runs, so handlers share one app
// context. With --server set, registry operations go to a registryd daemon;
// otherwise they run against a local sqlite store under --home.
package commands
