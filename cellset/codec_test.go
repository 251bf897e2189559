package cellset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundtrip(t *testing.T) {
	origin := mustCell(t, "8928308280fffff")

	sets := map[string]*Set{
		"Empty": New(),
		"Small": Of(origin),
		"Disk":  Of(diskCells(t, origin, 10)...),
	}

	compressions := map[string]Compression{
		"None": CompressionNone,
		"LZ4":  CompressionLZ4,
		"ZSTD": CompressionZSTD,
	}

	for setName, s := range sets {
		for compName, comp := range compressions {
			t.Run(setName+"/"+compName, func(t *testing.T) {
				data, err := Marshal(s, comp)
				require.NoError(t, err)
				require.GreaterOrEqual(t, len(data), headerSize+blockHeaderSize)

				back, err := Unmarshal(data)
				require.NoError(t, err)

				assert.Equal(t, s.Cardinality(), back.Cardinality())
				assert.Equal(t, s.Cells(), back.Cells())
			})
		}
	}
}

func TestCodecHeader(t *testing.T) {
	s := Of(mustCell(t, "8928308280fffff"))

	t.Run("Magic", func(t *testing.T) {
		data, err := Marshal(s, CompressionNone)
		require.NoError(t, err)
		assert.Equal(t, codecMagic, string(data[:4]))
		assert.Equal(t, byte(codecVersion), data[4])
		assert.Equal(t, byte(CompressionNone), data[5])
	})

	t.Run("Truncated", func(t *testing.T) {
		data, err := Marshal(s, CompressionNone)
		require.NoError(t, err)

		_, err = Unmarshal(data[:headerSize+blockHeaderSize-1])
		assert.ErrorIs(t, err, ErrCodecHeader)

		_, err = Unmarshal(nil)
		assert.ErrorIs(t, err, ErrCodecHeader)
	})

	t.Run("BadMagic", func(t *testing.T) {
		data, err := Marshal(s, CompressionNone)
		require.NoError(t, err)

		data[0] = 'X'
		_, err = Unmarshal(data)
		assert.ErrorIs(t, err, ErrCodecHeader)
	})

	t.Run("BadVersion", func(t *testing.T) {
		data, err := Marshal(s, CompressionNone)
		require.NoError(t, err)

		data[4] = codecVersion + 1
		_, err = Unmarshal(data)
		assert.ErrorIs(t, err, ErrCodecVersion)
	})

	t.Run("UnknownCompression", func(t *testing.T) {
		_, err := Marshal(s, Compression(99))
		assert.Error(t, err)
	})
}

func TestCodecIncompressibleFallback(t *testing.T) {
	// a single cell is too small for compression to pay off, so the payload
	// is stored raw with CompressedSize zero
	s := Of(mustCell(t, "8928308280fffff"))

	for name, comp := range map[string]Compression{"LZ4": CompressionLZ4, "ZSTD": CompressionZSTD} {
		t.Run(name, func(t *testing.T) {
			data, err := Marshal(s, comp)
			require.NoError(t, err)

			compressedSize := uint32(data[headerSize+4]) |
				uint32(data[headerSize+5])<<8 |
				uint32(data[headerSize+6])<<16 |
				uint32(data[headerSize+7])<<24
			assert.Zero(t, compressedSize)

			back, err := Unmarshal(data)
			require.NoError(t, err)
			assert.Equal(t, s.Cells(), back.Cells())
		})
	}
}

func TestCodecCompressesLargeSets(t *testing.T) {
	// a wide disk of sequential indexes compresses well
	s := Of(diskCells(t, mustCell(t, "8928308280fffff"), 30)...)

	raw, err := Marshal(s, CompressionNone)
	require.NoError(t, err)

	for name, comp := range map[string]Compression{"LZ4": CompressionLZ4, "ZSTD": CompressionZSTD} {
		t.Run(name, func(t *testing.T) {
			data, err := Marshal(s, comp)
			require.NoError(t, err)

			back, err := Unmarshal(data)
			require.NoError(t, err)
			assert.Equal(t, s.Cardinality(), back.Cardinality())

			t.Logf("raw %d bytes, %s %d bytes", len(raw), name, len(data))
		})
	}
}
