package unzip

import (
	"errors"
)

// Compressed payloads are embedded in line oriented files. To prevent
// them from containing tabs and newlines, they are stored using a
// 7-bit encoding. Every group of up to seven bytes is stored as the
// lower seven bits of each byte, followed by a single byte holding the
// upper bits of the group. All encoded bytes have their upper bit set.

var errTruncatedGroup = errors.New("7-bit encoded data ends with a group that contains no data bytes")

// To7Bit appends the 7-bit encoding of src to dst.
func To7Bit(dst, src []byte) []byte {
	for len(src) > 0 {
		n := min(7, len(src))
		var high byte
		for i, b := range src[:n] {
			dst = append(dst, b|0x80)
			high |= (b >> 7) << i
		}
		dst = append(dst, high|0x80)
		src = src[n:]
	}
	return dst
}

// To8BitInPlace decodes 7-bit encoded data, overwriting the input. It
// returns the length of the decoded data, which is stored at the start
// of buf.
func To8BitInPlace(buf []byte) (int, error) {
	out := 0
	for in := 0; in < len(buf); {
		n := min(8, len(buf)-in)
		if n < 2 {
			return 0, errTruncatedGroup
		}
		high := buf[in+n-1]
		for i := 0; i < n-1; i++ {
			// The output position never exceeds the input
			// position, so it is safe to decode in place.
			buf[out] = buf[in+i]&0x7f | (high>>i&1)<<7
			out++
		}
		in += n
	}
	return out, nil
}
