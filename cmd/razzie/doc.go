// Command razzie serves and inspects Golden Raspberry award data.
//
// `razzie serve` runs the HTTP API, `razzie load` bulk-imports the
// awards CSV, and `razzie movies`/`razzie intervals` query the store
// from the terminal.
package main
