package unzip

import (
	"bufio"
	"io"
)

type blockReader struct {
	source   io.ReadCloser
	reader   *bufio.Reader
	unzipper *Unzipper
	line     []byte
	pending  []byte
	err      error
}

// NewBlockReader creates a reader that decompresses a compressed GOR
// file. Header lines, starting with '#', are passed through unmodified.
// All other lines are blocks, whose decompressed contents are returned.
func NewBlockReader(r io.ReadCloser, path string) io.ReadCloser {
	return &blockReader{
		source:   r,
		reader:   bufio.NewReader(r),
		unzipper: NewUnzipper(path),
	}
}

func (br *blockReader) readLine() ([]byte, error) {
	br.line = br.line[:0]
	for {
		fragment, err := br.reader.ReadSlice('\n')
		br.line = append(br.line, fragment...)
		if err != bufio.ErrBufferFull {
			return br.line, err
		}
	}
}

func (br *blockReader) fill() {
	line, err := br.readLine()
	if len(line) > 0 {
		if line[0] == '#' {
			br.pending = line
		} else {
			block := line
			if block[len(block)-1] == '\n' {
				block = block[:len(block)-1]
			}
			data, unzipErr := br.unzipper.UnzipBlock(block)
			if unzipErr != nil {
				br.err = unzipErr
				return
			}
			br.pending = data
		}
	}
	if err != nil {
		br.err = err
	}
}

func (br *blockReader) Read(p []byte) (int, error) {
	for len(br.pending) == 0 {
		if br.err != nil {
			return 0, br.err
		}
		br.fill()
	}
	n := copy(p, br.pending)
	br.pending = br.pending[n:]
	return n, nil
}

func (br *blockReader) Close() error {
	br.unzipper.Close()
	br.pending = nil
	if br.err == nil {
		br.err = io.ErrClosedPipe
	}
	return br.source.Close()
}
