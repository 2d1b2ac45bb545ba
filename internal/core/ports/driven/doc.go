// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - KVStore: durable whole-document persistence for readings and settings
//   - DeckRepository: read-only language-keyed card catalogs
//   - SpreadCatalog: read-only spread templates
//   - ConfigStore: operator-facing application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - InsightService: external narrative generation. Without it, readings
//     carry only the locally assembled interpretation.
//
// # Capabilities
//
//   - Translator: localized string lookup supplied by the presentation layer
//   - RandomSource: injectable randomness for reproducible draws
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
