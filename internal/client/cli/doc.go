// Package cli provides the interactive authctl command-line client.
//
// It wires configuration, the local session store, the API client and an
// interactive REPL. Typical flow: restore the stored session if the server
// still accepts it, start a background connectivity watcher, and execute
// user commands.
//
// Key features:
//   - Register / Login / Logout
//   - WhoAmI (resolves the stored token through GET /auth/me)
//   - Online/offline indicator in the prompt
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
