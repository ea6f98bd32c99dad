// Package api defines wire-format types and the services behind the
// HTTP layer. It translates internal movie and awards models into
// transport-friendly DTOs so handlers never couple to storage types.
//
// # Key Types
//
// MovieItem: transport representation of an award record.
//
// MovieListResponse: paged record listing with pagination metadata.
//
// IntervalsResponse: the min/max producer win interval payload. Field
// names (producer, interval, previousWin, followingWin) are part of the
// public contract and must not change.
//
// # Services
//
// MovieService wraps record CRUD and listing behind small store
// interfaces. AwardsService runs the winners query through the interval
// engine. Both return DTOs directly.
//
// # Design Notes
//
// DTOs use camelCase JSON tags. Timestamps use RFC3339. Empty interval
// selections serialize as {"min":[],"max":[]}, never null, because the
// intervals endpoint always answers 200 with a well-formed body.
package api
