package usart

import (
	"errors"
	"math"
	"testing"
)

func TestBaudValue(t *testing.T) {
	tests := []struct {
		clock, rate uint32
		want        uint32
	}{
		{3333333, 115200, 116},  // 115.74
		{3333333, 9600, 1389},   // 1388.89
		{16000000, 9600, 6667},  // 6666.67
		{20000000, 115200, 694}, // 694.44
		{3333333, 57600, 231},   // 231.48
	}
	for _, tc := range tests {
		if got := BaudValue(tc.clock, tc.rate); got != tc.want {
			t.Fatalf("BaudValue(%d, %d) = %d; want %d", tc.clock, tc.rate, got, tc.want)
		}
	}
}

func TestCheckBaud(t *testing.T) {
	if v, err := CheckBaud(DefaultClockHz, DefaultBaudRate); err != nil || v != 116 {
		t.Fatalf("CheckBaud(default) = %d, %v; want 116, nil", v, err)
	}
	if _, err := CheckBaud(DefaultClockHz, 0); !errors.Is(err, ErrZeroRate) {
		t.Fatalf("zero rate: err=%v; want ErrZeroRate", err)
	}
	if _, err := CheckBaud(0, 9600); !errors.Is(err, ErrZeroRate) {
		t.Fatalf("zero clock: err=%v; want ErrZeroRate", err)
	}
	// 1 MBd from 3.33 MHz needs BAUD=13, below the normal-mode minimum.
	if _, err := CheckBaud(DefaultClockHz, 1000000); !errors.Is(err, ErrBaudRange) {
		t.Fatalf("too fast: err=%v; want ErrBaudRange", err)
	}
	// 300 Bd from 20 MHz needs BAUD=266667, wider than the register.
	if _, err := CheckBaud(20000000, 300); !errors.Is(err, ErrBaudRange) {
		t.Fatalf("too slow: err=%v; want ErrBaudRange", err)
	}
	// Quotients past 2^32 must not wrap into the valid range.
	for _, tc := range []struct{ clock, rate uint32 }{
		{3221226222, 3}, // 4294968296, wraps to 1000 as uint32
		{math.MaxUint32, 1},
	} {
		if v, err := CheckBaud(tc.clock, tc.rate); !errors.Is(err, ErrBaudRange) {
			t.Fatalf("CheckBaud(%d, %d) = %d, %v; want ErrBaudRange", tc.clock, tc.rate, v, err)
		}
		if e := RateError(tc.clock, tc.rate); e != 0 {
			t.Fatalf("RateError(%d, %d) = %f; want 0", tc.clock, tc.rate, e)
		}
	}
}

func TestActualRateAndError(t *testing.T) {
	got := ActualRate(DefaultClockHz, 116)
	if math.Abs(got-114942.5) > 0.1 {
		t.Fatalf("ActualRate = %f; want ~114942.5", got)
	}
	e := RateError(DefaultClockHz, DefaultBaudRate)
	if e > -0.0021 || e < -0.0023 {
		t.Fatalf("RateError = %f; want ~-0.0022", e)
	}
	if ActualRate(DefaultClockHz, 0) != 0 {
		t.Fatal("ActualRate with zero register should be 0")
	}
	if RateError(DefaultClockHz, 0) != 0 {
		t.Fatal("RateError with zero rate should be 0")
	}
}
