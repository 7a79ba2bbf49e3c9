// Package client implements the interactive application runtime.
//
// It wires the terminal UI and the account/session store into a single
// process lifecycle: seed defaults, restore any persisted session, run the
// UI.
package client
