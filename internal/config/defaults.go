package config

const (
	defaultBind                = "127.0.0.1:8163"
	defaultReadTimeoutSeconds  = 15
	defaultWriteTimeoutSeconds = 30
	defaultDatabaseDir         = "~/.local/share/razzie"
	defaultCSVDelimiter        = ";"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			Bind:                defaultBind,
			ReadTimeoutSeconds:  defaultReadTimeoutSeconds,
			WriteTimeoutSeconds: defaultWriteTimeoutSeconds,
		},
		Database: Database{
			Dir: defaultDatabaseDir,
		},
		Ingest: Ingest{
			Delimiter:   defaultCSVDelimiter,
			LoadOnStart: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
