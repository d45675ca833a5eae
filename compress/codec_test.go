package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mcnbt/errs"
	"github.com/arloliu/mcnbt/format"
)

// helloWorld is an uncompressed {"": {"foo": "Hello!"}} document.
var helloWorld = []byte{10, 0, 0, 8, 0, 3, 'f', 'o', 'o', 0, 6, 'H', 'e', 'l', 'l', 'o', '!', 0}

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionGzip,
	format.CompressionZlib,
	format.CompressionLZ4,
	format.CompressionZstd,
	format.CompressionLZ4Block,
}

func TestCodec_RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"empty":       {},
		"hello world": helloWorld,
		"repetitive":  bytes.Repeat([]byte("minecraft:stone"), 4096),
		"binary":      generateBenchmarkData(100_000, "semi_compressible"),
	}

	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		for name, input := range inputs {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(input)
				require.NoError(t, err)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Len(t, decompressed, len(input))
				if len(input) > 0 {
					require.Equal(t, input, decompressed)
				}
			})
		}
	}
}

func TestCodec_DetectCompressedOutput(t *testing.T) {
	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			compressed, err := Compress(helloWorld, ct)
			require.NoError(t, err)
			require.Equal(t, ct, Detect(compressed))

			raw, detected, err := DecompressAuto(compressed)
			require.NoError(t, err)
			require.Equal(t, ct, detected)
			require.Equal(t, helloWorld, raw)
		})
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want format.CompressionType
	}{
		{"nil", nil, format.CompressionNone},
		{"single byte", []byte{0x1F}, format.CompressionNone},
		{"gzip", []byte{0x1F, 0x8B, 0x08}, format.CompressionGzip},
		{"zlib default", []byte{0x78, 0x9C}, format.CompressionZlib},
		{"zlib best", []byte{0x78, 0xDA}, format.CompressionZlib},
		{"zlib fast", []byte{0x78, 0x01}, format.CompressionZlib},
		{"zlib with dictionary flag", []byte{0x78, 0xBB}, format.CompressionNone},
		{"lz4 frame", []byte{0x04, 0x22, 0x4D, 0x18, 0x64}, format.CompressionLZ4},
		{"lz4 truncated magic", []byte{0x04, 0x22, 0x4D}, format.CompressionNone},
		{"zstd frame", []byte{0x28, 0xB5, 0x2F, 0xFD, 0x00}, format.CompressionZstd},
		{"lz4 block stream", []byte("LZ4Block\x16"), format.CompressionLZ4Block},
		{"lz4 block truncated magic", []byte("LZ4Bloc"), format.CompressionNone},
		{"raw nbt", helloWorld, format.CompressionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Detect(tt.data))
		})
	}
}

func TestCodec_CorruptInput(t *testing.T) {
	corrupt := []byte{0x1F, 0x8B, 0x08, 0x00, 0xDE, 0xAD, 0xBE, 0xEF}

	for _, ct := range []format.CompressionType{
		format.CompressionGzip,
		format.CompressionZlib,
		format.CompressionLZ4,
		format.CompressionZstd,
		format.CompressionLZ4Block,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			_, err := Decompress(corrupt, ct)
			require.Error(t, err)
		})
	}
}

func TestCodec_TruncatedGzip(t *testing.T) {
	compressed, err := Compress(bytes.Repeat(helloWorld, 100), format.CompressionGzip)
	require.NoError(t, err)

	_, err = Decompress(compressed[:len(compressed)/2], format.CompressionGzip)
	require.Error(t, err)
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := CreateCodec(ct, "document")
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(99), "document")
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
	require.Contains(t, err.Error(), "document")

	_, err = GetCodec(format.CompressionType(99))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestNoOpCompressor_SharesInput(t *testing.T) {
	codec := NewNoOpCompressor()
	data := []byte{1, 2, 3}

	out, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])
}

func TestCodec_ConcurrentUse(t *testing.T) {
	payload := bytes.Repeat(helloWorld, 64)

	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		t.Run(ct.String(), func(t *testing.T) {
			t.Parallel()
			done := make(chan error, 8)
			for range 8 {
				go func() {
					compressed, err := codec.Compress(payload)
					if err == nil {
						var out []byte
						out, err = codec.Decompress(compressed)
						if err == nil && !bytes.Equal(out, payload) {
							err = errs.ErrInvalidHeader
						}
					}
					done <- err
				}()
			}
			for range 8 {
				require.NoError(t, <-done)
			}
		})
	}
}

func TestCodec_DecompressLimit(t *testing.T) {
	input := bytes.Repeat([]byte("minecraft:air"), 10_000)

	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			compressed, err := Compress(input, ct)
			require.NoError(t, err)

			_, err = DecompressLimit(compressed, ct, len(input)-1)
			require.ErrorIs(t, err, errs.ErrDecompressedTooLarge)

			out, err := DecompressLimit(compressed, ct, len(input))
			require.NoError(t, err)
			require.Equal(t, input, out)

			out, err = DecompressLimit(compressed, ct, 0)
			require.NoError(t, err)
			require.Len(t, out, len(input))
		})
	}
}

func TestCodec_DecompressBombStopsAtLimit(t *testing.T) {
	// 64MiB of zeros compresses to a few KiB with every codec.
	bomb := make([]byte, 64<<20)

	for _, ct := range []format.CompressionType{format.CompressionGzip, format.CompressionZstd, format.CompressionLZ4Block} {
		t.Run(ct.String(), func(t *testing.T) {
			compressed, err := Compress(bomb, ct)
			require.NoError(t, err)
			require.Less(t, len(compressed), 1<<20)

			_, err = DecompressLimit(compressed, ct, 1<<20)
			require.ErrorIs(t, err, errs.ErrDecompressedTooLarge)
		})
	}
}
