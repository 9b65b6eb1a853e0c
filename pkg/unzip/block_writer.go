package unzip

import (
	"bytes"
	"io"
	"strconv"

	"github.com/gorpipe/gor-source/pkg/failure"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// BlockWriter writes compressed GOR files that can be read back using
// NewBlockReader.
type BlockWriter struct {
	w          io.Writer
	codec      Codec
	compressed bytes.Buffer
	zlibWriter *zlib.Writer
	zstdWriter *zstd.Encoder
	line       []byte
}

// NewBlockWriter creates a BlockWriter that compresses blocks using
// the provided codec.
func NewBlockWriter(w io.Writer, codec Codec) (*BlockWriter, error) {
	bw := &BlockWriter{w: w, codec: codec}
	switch codec {
	case CodecZlib:
		bw.zlibWriter = zlib.NewWriter(&bw.compressed)
	case CodecZstd:
		encoder, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		bw.zstdWriter = encoder
	default:
		return nil, failure.Newf(failure.System, "", "Unsupported codec %s", codec)
	}
	return bw, nil
}

// WriteHeader writes a header line. A leading '#' is added if absent.
func (bw *BlockWriter) WriteHeader(header string) error {
	bw.line = bw.line[:0]
	if len(header) == 0 || header[0] != '#' {
		bw.line = append(bw.line, '#')
	}
	bw.line = append(bw.line, header...)
	bw.line = append(bw.line, '\n')
	_, err := bw.w.Write(bw.line)
	return err
}

// WriteBlock compresses a set of rows and writes them as a single
// block. The chromosome and position are those of the last row in the
// block.
func (bw *BlockWriter) WriteBlock(chromosome string, position int, rows []byte) error {
	bw.compressed.Reset()
	if bw.zstdWriter != nil {
		bw.compressed.Write(bw.zstdWriter.EncodeAll(rows, nil))
	} else {
		bw.zlibWriter.Reset(&bw.compressed)
		if _, err := bw.zlibWriter.Write(rows); err != nil {
			return err
		}
		if err := bw.zlibWriter.Close(); err != nil {
			return err
		}
	}

	bw.line = append(bw.line[:0], chromosome...)
	bw.line = append(bw.line, '\t')
	bw.line = strconv.AppendInt(bw.line, int64(position), 10)
	bw.line = append(bw.line, '\t', bw.codec.HeaderByte())
	bw.line = To7Bit(bw.line, bw.compressed.Bytes())
	bw.line = append(bw.line, '\n')
	_, err := bw.w.Write(bw.line)
	return err
}

// Close releases the resources held by the encoder. It does not close
// the underlying writer.
func (bw *BlockWriter) Close() error {
	if bw.zstdWriter != nil {
		return bw.zstdWriter.Close()
	}
	return nil
}
