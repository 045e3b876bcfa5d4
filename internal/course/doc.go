// Package course defines the catalog record model and the name normalization
// used to compare free-text course names against catalog records.
//
// A Course keeps every key it was decoded with, in order, and only rewrites
// the values a pass changes. A Catalog is the ordered record set with an id
// index, uniqueness validation and first-wins deduplication.
//
// Example usage:
//
//	base, variant := course.SplitVariant("Whistling Straits (Irish Course)")
//	key := course.Normalize("Pebble Beach Golf Links") // "pebble beach"
package course
