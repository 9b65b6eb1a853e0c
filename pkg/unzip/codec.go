package unzip

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// Codec is the compression algorithm used by the blocks of a stream.
type Codec int

const (
	// CodecUnknown is reported until the first block of a stream
	// has been inspected.
	CodecUnknown Codec = iota
	// CodecZlib blocks are compressed using zlib.
	CodecZlib
	// CodecZstd blocks are compressed using Zstandard.
	CodecZstd
)

func (c Codec) String() string {
	switch c {
	case CodecZlib:
		return "zlib"
	case CodecZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// codecZstdFlag is set in the header byte of blocks compressed using
// Zstandard.
const codecZstdFlag = 0x02

// DetectCodec returns the codec that corresponds to the header byte
// that precedes the payload of a block.
func DetectCodec(header byte) Codec {
	if header&codecZstdFlag == 0 {
		return CodecZlib
	}
	return CodecZstd
}

// HeaderByte returns the header byte that writers should emit in front
// of blocks compressed with this codec.
func (c Codec) HeaderByte() byte {
	if c == CodecZstd {
		return '0' | codecZstdFlag
	}
	return '0'
}

// blockDecoder is the part of Unzipper that differs between codecs.
type blockDecoder interface {
	// setInput starts decoding of a new block. Errors returned by
	// this function indicate that the decoder could not be set up.
	setInput(payload []byte) error
	// decompress writes decompressed data into out. It returns
	// whether the end of the block has been reached.
	decompress(out []byte) (int, bool, error)
	close()
}

func newBlockDecoder(codec Codec) blockDecoder {
	if codec == CodecZstd {
		return &zstdBlockDecoder{}
	}
	return &zlibBlockDecoder{}
}

// zlibBlockDecoder decodes blocks using a single zlib reader that is
// reset for every block.
type zlibBlockDecoder struct {
	input  bytes.Reader
	reader io.ReadCloser
	done   bool
}

func (d *zlibBlockDecoder) setInput(payload []byte) error {
	d.input.Reset(payload)
	d.done = false
	if d.reader == nil {
		r, err := zlib.NewReader(&d.input)
		if err != nil {
			return err
		}
		d.reader = r
		return nil
	}
	return d.reader.(zlib.Resetter).Reset(&d.input, nil)
}

func (d *zlibBlockDecoder) decompress(out []byte) (int, bool, error) {
	if d.done {
		return 0, true, nil
	}
	n, err := d.reader.Read(out)
	if err == io.EOF {
		d.done = true
		return n, true, nil
	}
	return n, false, err
}

func (d *zlibBlockDecoder) close() {
	if d.reader != nil {
		d.reader.Close()
		d.reader = nil
	}
}

// zstdBlockDecoder decodes every block using its own decoder, which is
// closed as soon as it reports the end of the block.
type zstdBlockDecoder struct {
	input   bytes.Reader
	decoder *zstd.Decoder
}

func (d *zstdBlockDecoder) setInput(payload []byte) error {
	d.close()
	d.input.Reset(payload)
	decoder, err := zstd.NewReader(
		&d.input,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true))
	if err != nil {
		return err
	}
	d.decoder = decoder
	return nil
}

func (d *zstdBlockDecoder) decompress(out []byte) (int, bool, error) {
	if d.decoder == nil {
		return 0, true, nil
	}
	n, err := d.decoder.Read(out)
	if err == io.EOF {
		d.close()
		return n, true, nil
	}
	return n, false, err
}

func (d *zstdBlockDecoder) close() {
	if d.decoder != nil {
		d.decoder.Close()
		d.decoder = nil
	}
}
