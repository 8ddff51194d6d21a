package repository

import "os"

// getenvDefault resolves a table name from the environment, falling back
// to the repository's default so local runs need no configuration.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
