// Package file provides the TOML-backed application configuration
// store. It holds operator-facing knobs (storage backend, insight
// credentials, log level) as opposed to the user-facing reading
// settings, which live in the domain settings record.
package file
