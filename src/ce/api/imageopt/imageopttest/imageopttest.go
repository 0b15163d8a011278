package imageopttest

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/webp"
)

// Pattern returns an image with enough detail to survive lossy encoding.
func Pattern(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{
				R: uint8(x * 255 / max(width, 1)),
				G: uint8(y * 255 / max(height, 1)),
				B: uint8((x ^ y) & 0xff),
				A: 0xff,
			})
		}
	}

	return img
}

// JPEG encodes a pattern of the given size.
func JPEG(width, height int) []byte {
	buf := &bytes.Buffer{}

	if err := jpeg.Encode(buf, Pattern(width, height), &jpeg.Options{Quality: 90}); err != nil {
		panic(err)
	}

	return buf.Bytes()
}

// PNG encodes a pattern of the given size.
func PNG(width, height int) []byte {
	buf := &bytes.Buffer{}

	if err := png.Encode(buf, Pattern(width, height)); err != nil {
		panic(err)
	}

	return buf.Bytes()
}

// WithOrientation inserts an EXIF segment holding the given orientation
// right after the JPEG start of image marker.
func WithOrientation(content []byte, orientation uint16) []byte {
	tiff := &bytes.Buffer{}
	tiff.WriteString("MM")
	_ = binary.Write(tiff, binary.BigEndian, uint16(0x002a))
	_ = binary.Write(tiff, binary.BigEndian, uint32(8))
	_ = binary.Write(tiff, binary.BigEndian, uint16(1)) // entries
	_ = binary.Write(tiff, binary.BigEndian, uint16(0x0112))
	_ = binary.Write(tiff, binary.BigEndian, uint16(3)) // SHORT
	_ = binary.Write(tiff, binary.BigEndian, uint32(1))
	_ = binary.Write(tiff, binary.BigEndian, orientation)
	_ = binary.Write(tiff, binary.BigEndian, uint16(0))
	_ = binary.Write(tiff, binary.BigEndian, uint32(0)) // next IFD

	payload := append([]byte("Exif\x00\x00"), tiff.Bytes()...)

	segment := &bytes.Buffer{}
	segment.Write([]byte{0xff, 0xe1})
	_ = binary.Write(segment, binary.BigEndian, uint16(len(payload)+2))
	segment.Write(payload)

	out := make([]byte, 0, len(content)+segment.Len())
	out = append(out, content[:2]...)
	out = append(out, segment.Bytes()...)
	out = append(out, content[2:]...)
	return out
}

// Size returns the dimensions of a webp image.
func Size(content []byte) (int, int, error) {
	cnf, err := webp.DecodeConfig(bytes.NewReader(content))

	if err != nil {
		return 0, 0, err
	}

	return cnf.Width, cnf.Height, nil
}
