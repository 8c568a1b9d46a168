package color

const hexDigits = "0123456789abcdef"

// ParseHex parses "#RRGGBB" or "RRGGBB" (case-insensitive).
// ok is false for any other input.
func ParseHex(s string) (r, g, b uint8, ok bool) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	var v [3]uint8
	for i := range v {
		hi, ok1 := hexNibble(s[2*i])
		lo, ok2 := hexNibble(s[2*i+1])
		if !ok1 || !ok2 {
			return 0, 0, 0, false
		}
		v[i] = hi<<4 | lo
	}
	return v[0], v[1], v[2], true
}

// hexNibble decodes one hex digit.
func hexNibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// FormatHex encodes a byte triple as lowercase "#rrggbb".
func FormatHex(r, g, b uint8) string {
	buf := [7]byte{'#'}
	for i, v := range [3]uint8{r, g, b} {
		buf[1+2*i] = hexDigits[v>>4]
		buf[2+2*i] = hexDigits[v&0x0f]
	}
	return string(buf[:])
}
