// Package domain defines the core types, interfaces and failure taxonomy of
// the mutual backup-key registry.
//
// Types live in the types subpackage, storage and service contracts in the
// interfaces subpackage; both are re-exported here so the rest of the module
// imports a single package.
package domain
