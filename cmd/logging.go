package cmd

import (
	"log"
	"os"
)

// logger carries diagnostics on stderr so stdout stays a clean table
var logger = log.New(os.Stderr, "", log.LstdFlags)

// InfoLog logs informational messages with timestamps
func InfoLog(format string, v ...any) {
	logger.Printf("[INFO] "+format, v...)
}

func ErrorLog(format string, v ...any) {
	logger.Printf("[ERROR] "+format, v...)
}
