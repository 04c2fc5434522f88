// usart/stdio.go

package usart

import "fmt"

// Stdout is the firmware-wide standard output. The board's Init binds it to
// the configured USART; until then output is dropped.
var Stdout = &Stdio{}

// Stdio is a write-only character stream backed by a ByteSink.
type Stdio struct {
	sink ByteSink
}

// Bind routes the stream to sink. A nil sink unbinds it.
func (s *Stdio) Bind(sink ByteSink) { s.sink = sink }

// Sink returns the bound ByteSink, or nil.
func (s *Stdio) Sink() ByteSink { return s.sink }

// Write sends p byte by byte. Unbound streams report success and drop the data.
func (s *Stdio) Write(p []byte) (int, error) {
	if s.sink == nil {
		return len(p), nil
	}
	for i, c := range p {
		if err := s.sink.WriteByte(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// WriteString is Write for strings without the conversion.
func (s *Stdio) WriteString(str string) (int, error) {
	if s.sink == nil {
		return len(str), nil
	}
	for i := 0; i < len(str); i++ {
		if err := s.sink.WriteByte(str[i]); err != nil {
			return i, err
		}
	}
	return len(str), nil
}

func (s *Stdio) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(s, format, args...)
}

func (s *Stdio) Println(args ...any) (int, error) {
	return fmt.Fprintln(s, args...)
}
