// Package conv formats integers for firmware that prints with println and
// keeps fmt out of the image.
package conv

const digits = "0123456789abcdef"

// Hex renders v as 0x-prefixed lowercase hex, zero-padded to width digits.
func Hex(v uint64, width int) string {
	var buf [2 + 16]byte
	i := len(buf)
	for n := 0; v != 0 || n < width || n == 0; n++ {
		if i == 2 {
			break
		}
		i--
		buf[i] = digits[v&0xF]
		v >>= 4
	}
	i--
	buf[i] = 'x'
	i--
	buf[i] = '0'
	return string(buf[i:])
}

// Dec renders v in base 10.
func Dec(v int) string {
	var buf [20]byte
	i := len(buf)
	u := uint64(v)
	if v < 0 {
		u = uint64(-int64(v))
	}
	for {
		i--
		buf[i] = digits[u%10]
		u /= 10
		if u == 0 {
			break
		}
	}
	if v < 0 {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
