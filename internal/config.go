package internal

import "fmt"

const (
	BackendFile   = "file"
	BackendBadger = "badger"
)

// Config is read once from the environment at process start and never
// changes at runtime.
type Config struct {
	Port           int    `env:"PORT,default=8080"`
	StorageBackend string `env:"STORAGE_BACKEND,default=file"`
	DataFilepath   string `env:"DATA_FILEPATH,default=data/items.json"`
	BadgerFilepath string `env:"BADGER_FILEPATH"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
}

func (c Config) Validate() error {
	switch c.StorageBackend {
	case BackendFile:
	case BackendBadger:
		if c.BadgerFilepath == "" {
			return fmt.Errorf("BADGER_FILEPATH is required when STORAGE_BACKEND is %q", BackendBadger)
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", BackendFile, BackendBadger, c.StorageBackend)
	}
	return nil
}
