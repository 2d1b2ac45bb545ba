// Package catalog provides the embedded deck and spread catalogs.
// Card data and spread templates live in TOML files compiled into the
// binary; the loaders validate them once at startup and serve
// immutable snapshots after that. Languages without a card catalog
// fall back to English.
package catalog
