package configutil

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotenv loads the given .env files into the process environment,
// variables that are already set are left alone. missing files are skipped.
func LoadDotenv(files ...string) error {
	for _, f := range files {
		err := godotenv.Load(f)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return err
		}
		slog.Debug("loaded env file", "file", f)
	}
	return nil
}

// EnvPort reads a TCP port from the environment variable `key`. if the
// variable is unset `fallback` is returned, if it is set to something that
// isn't a port a warning is logged and `fallback` is returned.
func EnvPort(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	port, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		slog.Warn(
			"failed to parse port from env, using fallback",
			"key", key,
			"value", raw,
			"fallback", fallback,
		)
		return fallback
	}
	return int(port)
}

// EnvString returns the environment variable `key`, or `fallback` if it is
// unset or empty.
func EnvString(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
