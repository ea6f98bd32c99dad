// Package ingest bulk-loads the awards CSV into the movie store.
//
// The expected layout is the published awards list: a header row
// followed by year;title;studios;producers;winner rows, where the
// winner column holds the literal "yes" for winning entries. Rows that
// cannot be parsed are logged and skipped; one bad row never aborts the
// load.
package ingest
