// Package cli provides the interactive Garden command-line client.
//
// It wires configuration, the local session store, API services, the query
// cache and the pagination controller behind a small REPL. The terminal
// viewport stands in for a browser window: moving it emits scroll events
// that make the controller load the next page once the end is near.
//
// Key features:
//   - Register / Login / Logout, with the session resumed on start
//   - Browse the garden of everyone or of one author
//   - Plant seeds, like and unlike them
//   - Upload an avatar
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
