// Package igolf generates filler records for radar-mapped courses that only
// appear in search results.
//
// Records are built from a YAML seed list. The id is "igolf-" plus a slug of
// the name, and rating and yardage are derived from the id so a rerun
// produces the same record. Seeds whose id already exists are skipped.
package igolf
