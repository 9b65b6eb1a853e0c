package unzip_test

import (
	"math/rand"
	"testing"

	"github.com/gorpipe/gor-source/pkg/unzip"
	"github.com/stretchr/testify/require"
)

func TestTo7Bit(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		require.Empty(t, unzip.To7Bit(nil, nil))
	})

	t.Run("NoControlCharacters", func(t *testing.T) {
		encoded := unzip.To7Bit(nil, []byte("\t\n\x00\xff\x80\x7f\r\t\n"))
		require.Len(t, encoded, 11)
		for _, b := range encoded {
			require.NotZero(t, b&0x80)
		}
	})

	t.Run("Example", func(t *testing.T) {
		require.Equal(
			t,
			[]byte{0x80 | 'a', 0x80, 0x80, 0xff, 0x80 | 0x01, 0x80 | 0x02},
			unzip.To7Bit(nil, []byte{'a', 0x80, 0xff}))
	})
}

func TestTo8BitInPlace(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		random := rand.New(rand.NewSource(42))
		for length := 0; length < 64; length++ {
			original := make([]byte, length)
			random.Read(original)

			encoded := unzip.To7Bit([]byte("prefix"), original)
			n, err := unzip.To8BitInPlace(encoded[6:])
			require.NoError(t, err)
			require.Equal(t, original, encoded[6:6+n])
		}
	})

	t.Run("GroupWithoutData", func(t *testing.T) {
		encoded := unzip.To7Bit(nil, []byte("01234567"))
		require.Len(t, encoded, 10)
		_, err := unzip.To8BitInPlace(encoded[:9])
		require.Error(t, err)
	})
}
