package config

import (
	"os"
	"path/filepath"
)

func GetRuntimePath() string {
	path := os.Getenv("CSVREPL_RUNTIME_PATH")
	if path == "" {
		path = ".csvrepl"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}

// EnvPath is the location of the optional .env file inside runtimePath.
func EnvPath(runtimePath string) string {
	return filepath.Join(runtimePath, ".env")
}

// LogPath is the log file interactive shells write to.
func LogPath(runtimePath string) string {
	return filepath.Join(runtimePath, "csvrepl.log")
}
