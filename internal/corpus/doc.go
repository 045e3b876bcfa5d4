// Package corpus parses the free-text course description corpus.
//
// The corpus is a sequence of entries, each a course-name line followed by
// "Paragraph 1:" and "Paragraph 2:" sections:
//
//	Pebble Beach Golf Links
//	Paragraph 1: Perched on the cliffs of Carmel Bay...
//	Paragraph 2: The small greens...
//
// Paragraph text may continue on following lines; continuation lines are
// joined with single spaces. Entries missing either paragraph are dropped.
// Optional batch headers ("Batch 3: Classic American Golden Age Designs")
// label every entry that follows them. HTML corpora are flattened to lines
// with goquery before parsing.
package corpus
