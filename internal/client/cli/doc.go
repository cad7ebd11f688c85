// Package cli provides the interactive calckeeper command-line client.
//
// It wires configuration, the HTTP API client and an interactive REPL.
// Typical flow: register or log in, then add, list, show, edit and delete
// calculations while a background watcher tracks server reachability.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
