// Command usartctl is the host companion of the USART firmware: it computes
// BAUD register values, runs the driver against the register simulator and
// monitors a board's serial output.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("usartctl failed")
		os.Exit(1)
	}
}
