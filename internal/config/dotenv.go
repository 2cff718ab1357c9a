package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the dotenv file read from the working directory.
const DefaultEnvFile = ".env"

// DotEnvLookup returns a lookup that asks next first and falls back to the
// variables defined in the dotenv file at path. Values set in next win, as
// with godotenv.Load. A missing file returns next unchanged.
func DotEnvLookup(path string, next func(string) (string, bool)) (func(string) (string, bool), error) {
	if path == "" {
		return next, nil
	}

	vars, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return next, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}

	return func(key string) (string, bool) {
		if v, ok := next(key); ok && v != "" {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}, nil
}
