// Package core provides the foundational domain types and interfaces used by
// scriptscout. It defines the core abstractions for:
//
//   - Sessions (per-user search state: query, page cursor, last result set)
//   - ScriptSummary / ScriptDetail (catalog entries at two levels of detail)
//   - CatalogClient (read-only lookups against the upstream script catalog)
//   - SessionStore (pluggable per-user session persistence)
//   - Replies (transport-neutral rendered messages with button keyboards)
//   - Interaction tokens (the wire shapes attached to rendered buttons)
//
// The package intentionally keeps implementation concerns (HTTP plumbing,
// concrete stores, the Telegram transport) out of scope, exposing small
// interfaces to enable custom backends and extensions.
package core
