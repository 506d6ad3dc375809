package config

import "os"

func LogFile() string {
	return os.Getenv("LOG_FILE")
}

// ViewerAddr is the listen address of the live viewer; empty disables it.
func ViewerAddr() string {
	return os.Getenv("VIEWER_ADDR")
}
