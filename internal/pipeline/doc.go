// Package pipeline runs enrichment passes over the course store.
//
// A pass plans a list of (id, field, value) updates from the current store,
// merges them in order, and writes the whole store back. Planning is pure:
// ingest matches corpus entries to records, enrich derives fields from each
// record's own text. Merge reports what changed so a rerun with the same
// input is visibly a no-op.
package pipeline
