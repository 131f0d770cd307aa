// Package controller owns the per-user search session state machine: start
// a search, advance or retreat the page cursor, resolve a result index to a
// detail fetch. It reads and mutates sessions through core.SessionStore,
// performs lookups through core.CatalogClient and produces transport-neutral
// core.Reply values for the chat adapter to deliver.
//
// Every per-event failure is converted into a user-visible reply inside the
// handler that produced it; nothing propagates to crash the dispatch loop or
// affect other users' sessions.
package controller
