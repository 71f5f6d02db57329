// Package commands implements the demo CLI.
//
// Every invocation builds a fresh app.App, so todo and user state lives only
// as long as the process:
//
//	demo todo                       interactive todo list
//	demo todo --add "Buy milk" -p   one-shot batch, printed as a panel
//	demo users                      fetch and browse users
//	demo users --plain              fetch, wait, print
package commands
