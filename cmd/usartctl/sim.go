package main

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jangala-dev/tinygo-usart/usart"
)

type simOpts struct {
	instance string
	location string
	text     string
}

func newSimCmd(opts *globalOpts) *cobra.Command {
	so := &simOpts{}
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run the driver against the register simulator and echo the line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inst, err := usart.ParseInstance(so.instance)
			if err != nil {
				return err
			}
			loc, err := usart.ParseLocation(so.location)
			if err != nil {
				return err
			}
			return runSim(cmd.OutOrStdout(), inst, usart.Config{
				BaudRate: opts.baudRate,
				ClockHz:  opts.clockHz,
				Location: loc,
			}, so.text)
		},
	}
	f := cmd.Flags()
	f.StringVar(&so.instance, "instance", "USART1", "USART instance (USART0, USART1)")
	f.StringVar(&so.location, "location", "USART_LOCATION_DEFAULT", "pin route (USART_LOCATION_DEFAULT, USART_LOCATION_ALT1)")
	f.StringVar(&so.text, "text", "Hello World!\n", "text written through the bound stdout")
	return cmd
}

// runSim configures a simulated USART, dumps its registers to w and then
// sends text through a Stdio bound by Init. The simulated line is w; a failed
// write to it is returned.
func runSim(w io.Writer, inst usart.Instance, cfg usart.Config, text string) error {
	sim := usart.NewSim()
	sim.AutoReady = true
	sim.Line = w

	out := &usart.Stdio{}
	cfg.Stdout = out
	u := usart.New(sim.Bus(), inst)
	u.Init(cfg)

	b := sim.Bus()
	pin := usart.TXPin(inst, cfg.Location)
	log.WithFields(log.Fields{
		"instance": inst,
		"location": cfg.Location,
		"tx":       pin,
	}).Info("simulated USART configured")

	if _, err := fmt.Fprintf(w,
		"%s CTRLB=0x%02x CTRLC=0x%02x BAUD=%d DIR=0x%02x USARTROUTEA=0x%02x TX=%s\n",
		inst, b.CTRLB.Get(), b.CTRLC.Get(), b.BAUD.Get(), sim.Dir(pin.Port), b.USARTROUTEA.Get(), pin); err != nil {
		return err
	}
	if _, err := out.WriteString(text); err != nil {
		return err
	}
	if err := sim.LineErr(); err != nil {
		return fmt.Errorf("simulated line: %w", err)
	}
	log.WithField("bytes", len(sim.Writes())).Debug("simulated transmission done")
	return nil
}
