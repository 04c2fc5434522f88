package main

import (
	"fmt"
	"io"
	"math"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jangala-dev/tinygo-usart/usart"
)

// maxRateError is the usual tolerance for an 8N1 link between two devices.
const maxRateError = 0.02

func newBaudCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "baud",
		Short: "Compute the BAUD register value for --clock and --rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeBaudReport(cmd.OutOrStdout(), opts.clockHz, opts.baudRate)
		},
	}
}

func writeBaudReport(w io.Writer, clockHz, baudRate uint32) error {
	reg, err := usart.CheckBaud(clockHz, baudRate)
	if err != nil {
		return fmt.Errorf("clock=%d rate=%d: %w", clockHz, baudRate, err)
	}
	actual := usart.ActualRate(clockHz, reg)
	rel := usart.RateError(clockHz, baudRate)

	fields := log.Fields{"clock": clockHz, "rate": baudRate, "baud": reg}
	if math.Abs(rel) > maxRateError {
		log.WithFields(fields).Warnf("rate error %.2f%% exceeds %.0f%%", rel*100, maxRateError*100)
	} else {
		log.WithFields(fields).Debug("baud computed")
	}

	_, err = fmt.Fprintf(w, "BAUD   = %d (0x%04x)\nactual = %.1f baud\nerror  = %+.3f%%\n",
		reg, reg, actual, rel*100)
	return err
}
