package unzip

import (
	"io"

	"github.com/gorpipe/gor-source/pkg/failure"
)

// InitialBufferSize is the initial capacity of the output buffer of an
// Unzipper.
const InitialBufferSize = 32768

// maximumEmptyReads is the number of times a decoder may return no
// data without reporting completion, before decompression is aborted.
const maximumEmptyReads = 100

// Unzipper decompresses blocks of a compressed GOR file. Every block
// is a line that starts with two tab separated fields, followed by a
// header byte and a 7-bit encoded compressed payload.
//
// The codec is determined by the header byte of the first block that
// is decompressed, and is used for all subsequent blocks. An Unzipper
// should therefore be used for a single stream only. It is not safe
// for concurrent use.
type Unzipper struct {
	path    string
	codec   Codec
	decoder blockDecoder
	out     []byte
}

// NewUnzipper creates an Unzipper for blocks of a given file. The path
// is only used to annotate errors.
func NewUnzipper(path string) *Unzipper {
	return &Unzipper{
		path: path,
		out:  make([]byte, InitialBufferSize),
	}
}

// Codec returns the codec of the stream, or CodecUnknown if no block
// has been decompressed yet.
func (u *Unzipper) Codec() Codec {
	return u.codec
}

// beginningOfBlock returns the offset at which the payload of a block
// starts. It detects the codec if this is the first block.
func (u *Unzipper) beginningOfBlock(raw []byte) (int, error) {
	idx := 0
	for tabs := 0; tabs < 2; idx++ {
		if idx >= len(raw) {
			return 0, failure.Newf(failure.DataFormat, u.path, "Could not find zipped block. Buffer contains %d bytes", len(raw))
		}
		if raw[idx] == '\t' {
			tabs++
		}
	}
	if idx >= len(raw) {
		return 0, failure.Newf(failure.DataFormat, u.path, "Could not find zipped block. Buffer contains %d bytes", len(raw))
	}

	if u.decoder == nil {
		u.codec = DetectCodec(raw[idx])
		u.decoder = newBlockDecoder(u.codec)
	}
	return idx + 1, nil
}

// UnzipBlock decompresses a single block. The raw block is modified in
// place. The returned slice refers to a buffer owned by the Unzipper.
// It remains valid until the next call to UnzipBlock(), which may
// replace the buffer with a larger one.
func (u *Unzipper) UnzipBlock(raw []byte) ([]byte, error) {
	blockIdx, err := u.beginningOfBlock(raw)
	if err != nil {
		return nil, err
	}
	payloadLength, err := To8BitInPlace(raw[blockIdx:])
	if err != nil {
		return nil, failure.Wrap(err, failure.DataFormat, u.path, "Invalid block encoding")
	}
	if err := u.decoder.setInput(raw[blockIdx : blockIdx+payloadLength]); err != nil {
		return nil, failure.Wrapf(err, failure.System, u.path, "Failed to set up %s decoder", u.codec)
	}

	totalRead, emptyReads := 0, 0
	for {
		done := false
		for totalRead < len(u.out) {
			n, finished, err := u.decoder.decompress(u.out[totalRead:])
			totalRead += n
			if err != nil {
				return nil, failure.Wrapf(err, failure.DataFormat, u.path, "Failed to decompress %s block", u.codec)
			}
			if finished {
				done = true
				break
			}
			if n == 0 {
				emptyReads++
				if emptyReads >= maximumEmptyReads {
					return nil, failure.Wrapf(io.ErrNoProgress, failure.DataFormat, u.path, "Failed to decompress %s block", u.codec)
				}
			}
		}
		if done || totalRead < len(u.out) {
			break
		}
		// The output buffer is full, while the decoder may still
		// have data to return. Continue in a larger buffer.
		u.out = growBuffer(u.out)
	}
	return u.out[:totalRead], nil
}

// Close releases the resources held by the decoder.
func (u *Unzipper) Close() {
	if u.decoder != nil {
		u.decoder.close()
	}
}

// growBuffer returns a buffer of twice the size, containing the data
// of the original buffer. The original buffer must no longer be used.
func growBuffer(buf []byte) []byte {
	grown := make([]byte, 2*len(buf))
	copy(grown, buf)
	return grown
}
