// BMP-specific structs and the header codec
package bmp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// Size of the fixed header region (file header + the DIB fields we model).
const fixedHeaderSize = 46

// The BitmapFileHeader structure contains information about the type, size,
// and layout of a file that contains a DIB [device-independent bitmap].
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader

type BitmapFileHeader struct {
	Type      [2]byte // The file type: normally "BM" (stored as-is, not checked).
	Size      uint32  // The size, in bytes, of the bitmap file (as declared).
	Reserved1 [2]byte // Reserved; preserved verbatim.
	Reserved2 [2]byte // Reserved; preserved verbatim.
	OffBits   uint32  // Bitmap File Offset (In bytes) to Pixel Arrays
}

// The BitmapInfoHeader structure holds the leading DIB fields describing
// the dimensions and color format of the bitmap. Anything the DIB header
// carries after YPixelsPerM ends up in Header.Gap.

type BitmapInfoHeader struct {
	Size        uint32 // The number of bytes of the whole DIB header.
	Width       int32  // The width of the bitmap, in pixels.
	Height      int32  // The height of the bitmap, in pixels
	Planes      uint16 // The number of planes for the target device.
	BitCount    uint16 // The number of bits-per-pixel.
	Compression uint32 // The type of compression
	SizeImage   uint32 // The size of the image (in bytes).
	XPixelsPerM int32  // The horizontal resolution, in pixels-per-meter.
	YPixelsPerM int32  // The vertical resolution, in pixels-per-meter.
}

// Header is everything in a bitmap file that precedes the pixel array.
//
// Gap holds the bytes between the fixed 46-byte region and OffBits
// (the rest of the DIB header, color masks, palettes...). It is opaque and
// written back untouched, so OffBits == 46 + len(Gap) for decoded headers.
type Header struct {
	BitmapFileHeader
	BitmapInfoHeader
	Gap []byte
}

// DecodeHeader parses the header region at the start of data.
func DecodeHeader(data []byte) (*Header, error) {
	if len(data) < fixedHeaderSize {
		return nil, fmt.Errorf("%w: header needs %d bytes, got %d", ErrTruncatedInput, fixedHeaderSize, len(data))
	}

	var h Header
	r := bytes.NewReader(data[:fixedHeaderSize])
	if err := binary.Read(r, binary.LittleEndian, &h.BitmapFileHeader); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &h.BitmapInfoHeader); err != nil {
		return nil, err
	}

	if h.OffBits < fixedHeaderSize {
		return nil, fmt.Errorf("%w: pixel data offset %d lies inside the %d-byte header", ErrUnsupportedFormat, h.OffBits, fixedHeaderSize)
	}
	if uint64(len(data)) < uint64(h.OffBits) {
		return nil, fmt.Errorf("%w: pixel data offset is %d, got %d bytes", ErrTruncatedInput, h.OffBits, len(data))
	}

	h.Gap = make([]byte, h.OffBits-fixedHeaderSize)
	copy(h.Gap, data[fixedHeaderSize:h.OffBits])

	return &h, nil
}

// Encode writes the header back in its on-disk layout, followed by Gap.
func (h *Header) Encode() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, fixedHeaderSize+len(h.Gap)))

	// Writes to a bytes.Buffer of fixed-size structs cannot fail
	binary.Write(buf, binary.LittleEndian, &h.BitmapFileHeader)
	binary.Write(buf, binary.LittleEndian, &h.BitmapInfoHeader)
	buf.Write(h.Gap)

	return buf.Bytes()
}

// Checks that the header describes a bitmap this package can handle
// (bottom-up, 24 bits per pixel, uncompressed).
func (h *Header) validate() error {
	switch {
	case h.BitCount != 24:
		return fmt.Errorf("%w: %d bits per pixel (only 24 is supported)", ErrUnsupportedFormat, h.BitCount)
	case h.Compression != 0:
		return fmt.Errorf("%w: compression method %d (only uncompressed is supported)", ErrUnsupportedFormat, h.Compression)
	case h.Width <= 0:
		return fmt.Errorf("%w: width %d", ErrUnsupportedFormat, h.Width)
	case h.Height < 0:
		return fmt.Errorf("%w: top-down bitmaps (negative height %d)", ErrUnsupportedFormat, h.Height)
	case h.Height == 0:
		return fmt.Errorf("%w: height 0", ErrUnsupportedFormat)
	}
	return nil
}

// String renders the header in human-readable form
func (h *Header) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Signature: \t%q\n", h.Type[:])
	fmt.Fprintf(&sb, "Filesize: \t%v bytes\n", h.BitmapFileHeader.Size)
	fmt.Fprintf(&sb, "Reserved: \t% x | % x\n", h.Reserved1[:], h.Reserved2[:])
	fmt.Fprintf(&sb, "PixelOffset: \t%v bytes\n", h.OffBits)
	fmt.Fprintf(&sb, "HeaderSize: \t%v bytes\n", h.BitmapInfoHeader.Size)
	fmt.Fprintf(&sb, "Width: \t\t%v px\n", h.Width)
	fmt.Fprintf(&sb, "Height: \t%v px\n", h.Height)
	fmt.Fprintf(&sb, "Planes: \t%v\n", h.Planes)
	fmt.Fprintf(&sb, "BitCount: \t%vbits\n", h.BitCount)
	fmt.Fprintf(&sb, "Compression: \t%v\n", h.Compression)
	fmt.Fprintf(&sb, "ImageSize: \t%v bytes\n", h.SizeImage)
	fmt.Fprintf(&sb, "Resolution: \t%v x %v px/m\n", h.XPixelsPerM, h.YPixelsPerM)
	fmt.Fprintf(&sb, "Gap: \t\t%v bytes\n", len(h.Gap))
	return sb.String()
}
