// Package logging constructs the slog loggers used across razzie.
//
// It offers a console handler with compact key=value rendering for
// interactive use and a JSON handler for machine consumption, selected
// through configuration. Helper constructors keep attribute keys
// consistent between packages.
package logging
