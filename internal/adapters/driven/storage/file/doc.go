// Package file provides a file-based implementation of the key-value
// store port. Each key maps to one JSON document in the data
// directory; writes are atomic (temp file plus rename) and a
// filesystem watcher keeps the read cache honest when another process
// rewrites a document.
package file
