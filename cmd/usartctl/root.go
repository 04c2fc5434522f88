package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jangala-dev/tinygo-usart/usart"
)

type globalOpts struct {
	clockHz  uint32
	baudRate uint32
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{}
	root := &cobra.Command{
		Use:           "usartctl",
		Short:         "Host tools for the tinyAVR USART transmitter",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := log.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			log.SetLevel(lvl)
			log.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.Uint32Var(&opts.clockHz, "clock", usart.DefaultClockHz, "peripheral clock (CLK_PER) in Hz")
	pf.Uint32Var(&opts.baudRate, "rate", usart.DefaultBaudRate, "line rate in baud")
	pf.StringVar(&opts.logLevel, "log-level", "info", "logrus level (debug, info, warn, error)")

	root.AddCommand(newBaudCmd(opts), newSimCmd(opts), newMonitorCmd(opts))
	return root
}
