// Package fixfmt renders small non-negative readings as fixed-width
// two-decimal text for the charger's measurement slots.
package fixfmt

// Width is the number of bytes Format writes.
const Width = 6

// Format writes v into dst[0:Width] as a two-decimal number with a comma
// separator and the integer part right-justified with spaces, e.g.
// " 12,34". The value is scaled by 100 and truncated toward zero, not
// rounded.
//
// Values are expected to be non-negative and below 1000; the measurement
// conversion upstream guarantees the range.
func Format(dst []byte, v float32) {
	n := uint32(v * 100)

	dst[5] = byte(n%10) + '0'
	n /= 10
	dst[4] = byte(n%10) + '0'
	n /= 10

	dst[3] = ','

	i := 2
	if n == 0 {
		dst[i] = '0'
		i--
	} else {
		for n > 0 && i >= 0 {
			dst[i] = byte(n%10) + '0'
			n /= 10
			i--
		}
	}

	for i >= 0 {
		dst[i] = ' '
		i--
	}
}
