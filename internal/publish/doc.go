// Package publish produces the public, read-only copy of the course store.
//
// Each record in the copy gets an images block built from files named
// <id>_hero, <id>_1 and <id>_2 in the images directory, plus the legacy
// hasImage and imageUrl fields. The copy can also be written brotli-compressed
// and uploaded over SFTP.
package publish
