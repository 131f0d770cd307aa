// Package catalog contains the concrete CatalogClient implementation for the
// ScriptBlox HTTP API. The interface itself (and the ScriptSummary /
// ScriptDetail types) live in the core package to centralize domain
// contracts. Depend on core.CatalogClient in calling code and select this
// implementation at wiring time.
package catalog
