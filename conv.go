package bigint

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/tmthrgd/go-hex"
)

// Hex returns i in base 16 using lowercase digits. The most-significant word
// is written without leading zeros and every following word is padded to 16
// digits. Negative values are prefixed with '-'; zero is always "0".
func (i Int) Hex() string {
	s := hexMag(i.words, false)
	if i.isNeg() {
		return "-" + s
	}
	return s
}

// String returns i in base 10. Negative values are prefixed with '-'.
func (i Int) String() string {
	return decMag(i.words, i.isNeg())
}

func hexMag(x nat, upper bool) string {
	m := x.mszw()
	if m == 0 {
		return "0"
	}

	buf := make([]byte, m*wordBytes)
	for j := 0; j < m; j++ {
		binary.BigEndian.PutUint64(buf[(m-1-j)*wordBytes:], x[j])
	}

	var s string
	if upper {
		s = hex.EncodeUpperToString(buf)
	} else {
		s = hex.EncodeToString(buf)
	}

	// x[m-1] is not zero, so this only eats into the first word's digits:
	return strings.TrimLeft(s, "0")
}

// decMag renders x in base 10 by repeatedly dividing it by ten. Each pass
// yields the next least-significant digit, so the buffer is filled from the
// back.
func decMag(x nat, neg bool) string {
	x = x.norm()
	if x.isZero() {
		return "0"
	}

	// bits * log10(2), plus room for rounding and the sign:
	buf := make([]byte, x.bitLen()*30103/100000+3)
	pos := len(buf)

	var r uint64
	for !x.isZero() {
		x, r = divWordMag(x, 10)
		pos--
		buf[pos] = byte('0' + r)
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// Format implements fmt.Formatter. It supports the verbs 'd', 's', 'v', 'x'
// and 'X', the '+', ' ', '-', '0' and '#' flags, and a width.
func (i Int) Format(s fmt.State, c rune) {
	var digits, prefix string
	switch c {
	case 'd', 's', 'v':
		digits = decMag(i.words, false)
	case 'x':
		digits = hexMag(i.words, false)
		if s.Flag('#') {
			prefix = "0x"
		}
	case 'X':
		digits = hexMag(i.words, true)
		if s.Flag('#') {
			prefix = "0X"
		}
	default:
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", c, i.String())
		return
	}

	var sign string
	if i.isNeg() {
		sign = "-"
	} else if s.Flag('+') {
		sign = "+"
	} else if s.Flag(' ') {
		sign = " "
	}

	out := sign + prefix + digits
	if w, ok := s.Width(); ok && len(out) < w {
		pad := w - len(out)
		switch {
		case s.Flag('-'):
			out += strings.Repeat(" ", pad)
		case s.Flag('0'):
			out = sign + prefix + strings.Repeat("0", pad) + digits
		default:
			out = strings.Repeat(" ", pad) + out
		}
	}
	_, _ = io.WriteString(s, out)
}

func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}
