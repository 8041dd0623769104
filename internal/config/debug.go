package config

import "os"

func IsDebug() bool {
	return os.Getenv("CSVREPL_DEBUG") == "1"
}
