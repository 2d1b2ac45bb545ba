// Package domain contains the core business entities for the tarot
// reading engine: cards and decks, spread templates, draws, persisted
// readings with their interpretations and augmented insights, and the
// per-installation settings record.
//
// The domain layer has no dependencies on adapters or infrastructure.
// All persistence shapes use JSON tags matching the stored document
// format so records written by earlier versions keep parsing.
package domain
