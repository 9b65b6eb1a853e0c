package source

import (
	"fmt"
)

// ToEnd is the length of a RequestRange that extends to the end of
// the resource.
const ToEnd int64 = -1

// RequestRange is a range of bytes within a resource that needs to be
// read.
type RequestRange struct {
	First  int64
	Length int64
}

// FullRange returns a RequestRange that covers the entire resource.
func FullRange() RequestRange {
	return RequestRange{Length: ToEnd}
}

// RangeFromFirstLength returns a RequestRange that starts at a given
// offset. Negative offsets are treated as zero.
func RangeFromFirstLength(first, length int64) RequestRange {
	if first < 0 {
		first = 0
	}
	if length < 0 {
		length = ToEnd
	}
	return RequestRange{First: first, Length: length}
}

// IsFull returns whether the range covers the entire resource.
func (r RequestRange) IsFull() bool {
	return r.First == 0 && r.Length == ToEnd
}

// IsEmpty returns whether the range contains no bytes.
func (r RequestRange) IsEmpty() bool {
	return r.Length == 0
}

// LimitTo clamps the range to a resource of a given size. The
// resulting range is empty if it starts at or past the end of the
// resource.
func (r RequestRange) LimitTo(size int64) RequestRange {
	if r.First >= size {
		return RequestRange{First: r.First, Length: 0}
	}
	if remaining := size - r.First; r.Length == ToEnd || r.Length > remaining {
		r.Length = remaining
	}
	return r
}

// Last returns the offset of the last byte in the range. It may only
// be called on non-empty ranges with a known length.
func (r RequestRange) Last() int64 {
	return r.First + r.Length - 1
}

// HTTPHeader returns the value of an HTTP "Range" header that requests
// the bytes in the range.
func (r RequestRange) HTTPHeader() string {
	if r.Length == ToEnd {
		return fmt.Sprintf("bytes=%d-", r.First)
	}
	return fmt.Sprintf("bytes=%d-%d", r.First, r.Last())
}

func (r RequestRange) String() string {
	if r.Length == ToEnd {
		return fmt.Sprintf("[%d, end)", r.First)
	}
	return fmt.Sprintf("[%d, %d)", r.First, r.First+r.Length)
}
