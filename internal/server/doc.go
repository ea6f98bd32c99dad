// Package server exposes the razzie HTTP API.
//
// Routes live under /api: movie CRUD and listing, the producer win
// interval report, and a health probe. Handlers translate query
// parameters into store filters, delegate to the api services, and
// render JSON. Every request is tagged with a generated request ID and
// logged with method, path, status, and duration.
package server
