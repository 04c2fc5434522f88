package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tarm/serial"
)

type monitorOpts struct {
	port        string
	readTimeout time.Duration
}

func newMonitorCmd(opts *globalOpts) *cobra.Command {
	mo := &monitorOpts{}
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Copy a board's serial output (8N1) to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if mo.port == "" {
				return errors.New("--port is required")
			}
			p, err := serial.OpenPort(&serial.Config{
				Name:        mo.port,
				Baud:        int(opts.baudRate),
				Size:        8,
				Parity:      serial.ParityNone,
				StopBits:    serial.Stop1,
				ReadTimeout: mo.readTimeout,
			})
			if err != nil {
				return fmt.Errorf("open %s: %w", mo.port, err)
			}
			defer p.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			log.WithFields(log.Fields{"port": mo.port, "rate": opts.baudRate}).Info("monitoring")
			return monitor(ctx, p, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringVar(&mo.port, "port", "", "serial device (e.g. /dev/ttyUSB0, COM3)")
	f.DurationVar(&mo.readTimeout, "read-timeout", 250*time.Millisecond, "poll interval for cancellation")
	return cmd
}

// monitor copies r to w until ctx is done or r fails. Zero-length reads and
// io.EOF are read timeouts on an idle line, not the end of the stream.
func monitor(ctx context.Context, r io.Reader, w io.Writer) error {
	buf := make([]byte, 256)
	total := 0
	for {
		select {
		case <-ctx.Done():
			log.WithField("bytes", total).Info("monitor stopped")
			return nil
		default:
		}
		n, err := r.Read(buf)
		if n > 0 {
			total += n
			if _, werr := w.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read: %w", err)
		}
	}
}
