package unzip_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/gorpipe/gor-source/pkg/failure"
	"github.com/gorpipe/gor-source/pkg/unzip"
	"github.com/stretchr/testify/require"
)

func TestBlockReaderRoundTrip(t *testing.T) {
	for _, codec := range []unzip.Codec{unzip.CodecZlib, unzip.CodecZstd} {
		t.Run(codec.String(), func(t *testing.T) {
			var file bytes.Buffer
			writer, err := unzip.NewBlockWriter(&file, codec)
			require.NoError(t, err)
			require.NoError(t, writer.WriteHeader("Chrom\tPos\tRef\tAlt"))
			block1 := rows(5000)
			require.NoError(t, writer.WriteBlock("chr1", 14999, block1))
			block2 := []byte("chr2\t1\tA\tC\nchr2\t2\tC\tG\n")
			require.NoError(t, writer.WriteBlock("chr2", 2, block2))
			require.NoError(t, writer.Close())

			reader := unzip.NewBlockReader(io.NopCloser(&file), "file.gorz")
			data, err := io.ReadAll(reader)
			require.NoError(t, err)
			require.NoError(t, reader.Close())

			expected := append([]byte("#Chrom\tPos\tRef\tAlt\n"), block1...)
			expected = append(expected, block2...)
			require.Equal(t, expected, data)
		})
	}
}

func TestBlockReaderCorruptBlock(t *testing.T) {
	reader := unzip.NewBlockReader(io.NopCloser(bytes.NewBufferString("#Chrom\tPos\nchr1\n")), "file.gorz")
	defer reader.Close()

	header := make([]byte, 11)
	_, err := io.ReadFull(reader, header)
	require.NoError(t, err)
	require.Equal(t, "#Chrom\tPos\n", string(header))

	_, err = reader.Read(header)
	require.True(t, failure.IsKind(err, failure.DataFormat))
	require.Contains(t, err.Error(), "file.gorz")
}
