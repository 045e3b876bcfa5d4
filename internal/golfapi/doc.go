// Package golfapi looks up course facts (championship yardage, coordinates)
// from external course directories: the Golf Course API at
// api.golfcourseapi.com and the public USGA Course Rating Database.
//
// Lookups are cached on disk so repeated passes do not hit a directory
// again, and a small offline table of well-known courses answers when no
// API key is configured.
package golfapi
