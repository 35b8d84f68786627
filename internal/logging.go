package internal

import (
	"log"
	"os"
)

// InitLogging points the process logger at stdout with timestamps precise
// enough to line up fetch cycles.
func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
