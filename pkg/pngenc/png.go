// Package pngenc implements a minimal PNG encoder for 8-bit truecolor
// images, built directly on the chunk framing from the PNG specification.
// Pixels come from a sampler function rather than an image.Image, so whole
// textures are synthesized and encoded in one pass with no intermediate
// bitmap. Output is deterministic: identical inputs produce byte-identical
// files.
package pngenc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"os"

	"github.com/klauspost/compress/zlib"

	"github.com/xob0t/GoLumen/pkg/sampler"
)

// signature is the fixed 8-byte PNG file header.
var signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Encode writes a width×height truecolor PNG to w, sampling fn once per
// pixel in row-major order. Non-positive dimensions are a caller error.
func Encode(w io.Writer, width, height int, fn sampler.Func) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", width, height)
	}

	// Raw scanlines: one filter-type byte (0, no filtering) then
	// width RGB triples per row.
	raw := make([]byte, 0, height*(1+3*width))
	for y := 0; y < height; y++ {
		raw = append(raw, 0)
		for x := 0; x < width; x++ {
			r, g, b := fn(x, y, width, height)
			raw = append(raw, sampler.ClampByte(r), sampler.ClampByte(g), sampler.ClampByte(b))
		}
	}

	idat, err := deflate(raw)
	if err != nil {
		return fmt.Errorf("compress scanlines: %w", err)
	}

	if _, err := w.Write(signature); err != nil {
		return err
	}

	// IHDR: width, height, bit depth 8, color type 2 (truecolor, no
	// alpha), then zero compression/filter/interlace methods.
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = 8
	ihdr[9] = 2

	if err := writeChunk(w, "IHDR", ihdr); err != nil {
		return err
	}
	if err := writeChunk(w, "IDAT", idat); err != nil {
		return err
	}
	return writeChunk(w, "IEND", nil)
}

// EncodeBytes encodes into memory. See Encode.
func EncodeBytes(width, height int, fn sampler.Func) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, width, height, fn); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes a sampled PNG to a file at the given path.
func WriteFile(path string, width, height int, fn sampler.Func) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := Encode(f, width, height, fn); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Sync()
}

// writeChunk frames one PNG chunk: big-endian payload length, 4-byte ASCII
// tag, payload, then a CRC-32 (IEEE) over tag and payload.
func writeChunk(w io.Writer, tag string, data []byte) error {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[0:4], uint32(len(data)))
	copy(hdr[4:8], tag)

	crc := crc32.NewIEEE()
	crc.Write(hdr[4:8])
	crc.Write(data)

	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	_, err := w.Write(sum[:])
	return err
}

// deflate compresses the raw scanline buffer as a zlib stream at best
// compression, as the IDAT payload requires.
func deflate(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
