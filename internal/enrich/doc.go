// Package enrich derives catalog fields from a record's own text.
//
// Each enricher scans fixed, ordered lookup tables: architect names and
// course types from the description and blurb, the continent and an
// approximate position from the location, and the founding year from
// phrases like "founded in 1921". Tables are plain data and can be replaced
// from configuration. An enricher that finds nothing returns nil; it never
// guesses.
package enrich
