// Package storage reads and writes the course store.
//
// The store is a single JSON array of course records. Every pass loads the
// whole document, mutates it in memory and writes it back through a temp
// file that is renamed over the original. Records keep their order and their
// key order; new keys are appended. After each write the derived-descriptions
// side file (id to blurb) is regenerated from the store.
package storage
