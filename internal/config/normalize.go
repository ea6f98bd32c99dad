package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	var err error
	if strings.TrimSpace(c.Database.Dir) == "" {
		c.Database.Dir = defaultDatabaseDir
	}
	if c.Database.Dir, err = expandPath(c.Database.Dir); err != nil {
		return fmt.Errorf("database.dir: %w", err)
	}
	if strings.TrimSpace(c.Ingest.CSVPath) != "" {
		if c.Ingest.CSVPath, err = expandPath(c.Ingest.CSVPath); err != nil {
			return fmt.Errorf("ingest.csv_path: %w", err)
		}
	}
	if strings.TrimSpace(c.Ingest.Delimiter) == "" {
		c.Ingest.Delimiter = defaultCSVDelimiter
	}
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
