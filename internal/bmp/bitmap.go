// bmp package reads, edits and writes 24-bit uncompressed bitmaps
package bmp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/anas-shakeel/bmpedit/internal/utils"
)

type BitmapImage struct {
	Filename string
	Header   *Header
	Grid     *Grid
	Trailer  []byte // bytes found after the pixel array, kept verbatim
}

// Creates and returns a blank (black) bitmap image (24 bit uncompressed)
func CreateBitmap(width, height int) (*BitmapImage, error) {
	if width <= 0 {
		return nil, errors.New("width must be greater than 0")
	} else if height <= 0 {
		return nil, errors.New("height must be greater than 0")
	}

	grid := NewGrid(width, height)
	sizeImage := uint32(grid.Size())

	// BITMAPINFOHEADER is 40 bytes: the 32 we model plus
	// ColorsUsed and ColorsImportant (zero) in the gap.
	gap := make([]byte, 8)
	offBits := uint32(fixedHeaderSize + len(gap))

	header := &Header{
		BitmapFileHeader: BitmapFileHeader{
			Type:    [2]byte{'B', 'M'},
			Size:    offBits + sizeImage,
			OffBits: offBits,
		},
		BitmapInfoHeader: BitmapInfoHeader{
			Size:      40,
			Width:     int32(width),
			Height:    int32(height),
			Planes:    1,
			BitCount:  24,
			SizeImage: sizeImage,
		},
		Gap: gap,
	}

	return &BitmapImage{Header: header, Grid: grid}, nil
}

// Decode parses a complete bitmap file held in data
func Decode(data []byte) (*BitmapImage, error) {
	header, err := DecodeHeader(data)
	if err != nil {
		return nil, err
	}
	if err := header.validate(); err != nil {
		return nil, err
	}

	grid, err := DecodeGrid(int(header.Width), int(header.Height), data[header.OffBits:])
	if err != nil {
		return nil, err
	}

	var trailer []byte
	if end := int(header.OffBits) + grid.Size(); end < len(data) {
		trailer = make([]byte, len(data)-end)
		copy(trailer, data[end:])
	}

	return &BitmapImage{Header: header, Grid: grid, Trailer: trailer}, nil
}

// Read decodes a bitmap from r (reads r until EOF)
func Read(r io.Reader) (*BitmapImage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Reads a Bitmap file
func ReadBitmap(filename string) (*BitmapImage, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	b, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	b.Filename = filename

	return b, nil
}

// Encode returns the bitmap file: header, gap, pixel array and trailer.
// An image decoded and encoded without structural edits comes back
// byte for byte.
func (b *BitmapImage) Encode() []byte {
	buf := b.Header.Encode()
	buf = b.Grid.AppendTo(buf)
	return append(buf, b.Trailer...)
}

// Saves the bitmap image onto local disk
// A partially written file is removed.
func (b *BitmapImage) Save(filename string) (err error) {
	newBitmap, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := newBitmap.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(filename)
		}
	}()

	// Create a buffer (to reduce syscalls)
	w := bufio.NewWriter(newBitmap)
	if _, err := w.Write(b.Encode()); err != nil {
		return err
	}

	// Write buffer to disk
	return w.Flush()
}

// Returns a Copy of the bitmap image
func (b *BitmapImage) Copy() *BitmapImage {
	header := *b.Header
	header.Gap = append([]byte(nil), b.Header.Gap...)

	return &BitmapImage{
		Filename: b.Filename,
		Header:   &header,
		Grid:     b.Grid.Copy(),
		Trailer:  append([]byte(nil), b.Trailer...),
	}
}

// Width of the image in pixels
func (b *BitmapImage) Width() int {
	return b.Grid.Width
}

// Height of the image in pixels
func (b *BitmapImage) Height() int {
	return b.Grid.Height
}

// Updates the bitmap metadata (based on pixels).
// Needed only after edits that change the image dimensions.
func (b *BitmapImage) UpdateMeta() {
	sizeImage := uint32(b.Grid.Size())

	b.Header.Width = int32(b.Grid.Width)
	b.Header.Height = int32(b.Grid.Height)
	b.Header.SizeImage = sizeImage
	b.Header.OffBits = uint32(fixedHeaderSize + len(b.Header.Gap))
	b.Header.BitmapFileHeader.Size = b.Header.OffBits + sizeImage + uint32(len(b.Trailer))
}

// Print the bitmap in terminal. Use for small images only
func (b *BitmapImage) PrintBitmap(w io.Writer) {
	// Bottom-up storage: last scanline is the top row
	for y := b.Grid.Height - 1; y >= 0; y-- {
		for _, pixel := range b.Grid.Rows[y] {
			fmt.Fprint(w, utils.ColoredBlock("  ", pixel.R, pixel.G, pixel.B))
		}
		fmt.Fprintln(w)
	}
}

// Print the Metadata bitmap in terminal. (in human-readable format)
func (b *BitmapImage) PrintMetadata(w io.Writer) {
	fmt.Fprintf(w, "Filename: \t%v\n", b.Filename)
	fmt.Fprint(w, b.Header)
	fmt.Fprintf(w, "PixelCount: \t%v pixels\n", b.Grid.Width*b.Grid.Height)
	fmt.Fprintf(w, "Stride: \t%v bytes\n", b.Grid.Stride())
	fmt.Fprintf(w, "Padding: \t%v bytes\n", b.Grid.Padding)
	fmt.Fprintf(w, "Trailer: \t%v bytes\n", len(b.Trailer))
}
