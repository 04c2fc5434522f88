package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jangala-dev/tinygo-usart/usart"
)

func TestWriteBaudReport(t *testing.T) {
	var out bytes.Buffer
	if err := writeBaudReport(&out, usart.DefaultClockHz, usart.DefaultBaudRate); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.String()
	for _, want := range []string{"BAUD   = 116 (0x0074)", "actual = 114942.5 baud", "error  = -0.224%"} {
		if !strings.Contains(got, want) {
			t.Fatalf("report missing %q:\n%s", want, got)
		}
	}
}

func TestWriteBaudReport_OutOfRange(t *testing.T) {
	err := writeBaudReport(io.Discard, usart.DefaultClockHz, 1000000)
	if !errors.Is(err, usart.ErrBaudRange) {
		t.Fatalf("err=%v; want ErrBaudRange", err)
	}
	var out bytes.Buffer
	err = writeBaudReport(&out, 3221226222, 3)
	if !errors.Is(err, usart.ErrBaudRange) || out.Len() != 0 {
		t.Fatalf("err=%v out=%q; want ErrBaudRange and no report", err, out.String())
	}
}

func TestRunSim(t *testing.T) {
	var out bytes.Buffer
	err := runSim(&out, usart.USART0, usart.Config{Location: usart.LocationAlt1}, "hi\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "USART0 CTRLB=0x40 CTRLC=0x03 BAUD=116 DIR=0x02 USARTROUTEA=0x01 TX=PA1\nhi\n"
	if got := out.String(); got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

// failAfter accepts limit bytes and then fails every write.
type failAfter struct {
	limit int
	err   error
}

func (f *failAfter) Write(p []byte) (int, error) {
	if f.limit < len(p) {
		return 0, f.err
	}
	f.limit -= len(p)
	return len(p), nil
}

func TestRunSim_LineWriteError(t *testing.T) {
	broken := errors.New("pipe closed")
	// Room for the register dump line only.
	w := &failAfter{limit: 71, err: broken}
	err := runSim(w, usart.USART0, usart.Config{Location: usart.LocationAlt1}, "hi\n")
	if !errors.Is(err, broken) {
		t.Fatalf("err=%v; want %v", err, broken)
	}
}

func TestBaudCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"baud", "--clock", "16000000", "--rate", "9600"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "BAUD   = 6667") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestSimCommand_BadInstance(t *testing.T) {
	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"sim", "--instance", "usart7"})
	if err := root.Execute(); !errors.Is(err, usart.ErrUnknownInstance) {
		t.Fatalf("err=%v; want ErrUnknownInstance", err)
	}
}

// scriptedReader returns chunks in order, then io.EOF (an idle line). After
// idleLimit idle reads it calls cancel.
type scriptedReader struct {
	chunks    []string
	err       error
	idle      int
	idleLimit int
	cancel    context.CancelFunc
}

func (r *scriptedReader) Read(p []byte) (int, error) {
	if len(r.chunks) > 0 {
		n := copy(p, r.chunks[0])
		r.chunks = r.chunks[1:]
		return n, nil
	}
	if r.err != nil {
		return 0, r.err
	}
	r.idle++
	if r.idle >= r.idleLimit && r.cancel != nil {
		r.cancel()
	}
	return 0, io.EOF
}

func TestMonitor_CopiesUntilCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := &scriptedReader{chunks: []string{"Hello ", "World!\n"}, idleLimit: 3, cancel: cancel}

	var out bytes.Buffer
	if err := monitor(ctx, r, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := out.String(); got != "Hello World!\n" {
		t.Fatalf("got %q", got)
	}
}

func TestMonitor_ReadError(t *testing.T) {
	boom := errors.New("device unplugged")
	r := &scriptedReader{chunks: []string{"abc"}, err: boom}

	var out bytes.Buffer
	err := monitor(context.Background(), r, &out)
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v; want %v", err, boom)
	}
	if out.String() != "abc" {
		t.Fatalf("got %q before error", out.String())
	}
}
