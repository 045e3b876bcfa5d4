// Package cli implements the course-catalog command-line interface.
//
// Each subcommand is one pass over the course store: ingest attaches corpus
// descriptions, enrich derives fields from a record's own text, igolf add
// generates filler records, yardage fills course facts from the Golf Course
// API, studio marks the studio courses, and dedupe cleans legacy stores. check and publish only read the
// store. Results are printed as text (lipgloss headings) or JSON.
package cli
