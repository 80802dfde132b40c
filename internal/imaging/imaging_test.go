package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

const testMaxBytes = 5 << 20

func createTestJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{200, 180, 120, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func createTestPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{80, 110, 160, 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func TestNormalizeJPEG(t *testing.T) {
	data := createTestJPEG(100, 100)
	photo, err := Normalize(bytes.NewReader(data), testMaxBytes)
	if err != nil {
		t.Fatalf("Normalize JPEG: %v", err)
	}
	if photo.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", photo.MIME)
	}
	if len(photo.Data) == 0 {
		t.Error("expected non-empty data")
	}
}

func TestNormalizePNGConvertsToJPEG(t *testing.T) {
	data := createTestPNG(100, 100)
	photo, err := Normalize(bytes.NewReader(data), testMaxBytes)
	if err != nil {
		t.Fatalf("Normalize PNG: %v", err)
	}
	if photo.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", photo.MIME)
	}
}

func TestNormalizeDownscalesLargePhoto(t *testing.T) {
	data := createTestJPEG(3200, 2400)
	photo, err := Normalize(bytes.NewReader(data), testMaxBytes)
	if err != nil {
		t.Fatalf("Normalize large photo: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(photo.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		t.Errorf("expected max %d, got %dx%d", MaxDimension, bounds.Dx(), bounds.Dy())
	}
	// Aspect ratio survives the resize.
	if bounds.Dx() != 1600 || bounds.Dy() != 1200 {
		t.Errorf("expected 1600x1200, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestNormalizeKeepsSmallPhotoSize(t *testing.T) {
	data := createTestJPEG(640, 480)
	photo, err := Normalize(bytes.NewReader(data), testMaxBytes)
	if err != nil {
		t.Fatalf("Normalize small photo: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(photo.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 640 || bounds.Dy() != 480 {
		t.Errorf("small photo should not be resized: got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestNormalizeRejectsOversizedUpload(t *testing.T) {
	data := createTestJPEG(200, 200)
	_, err := Normalize(bytes.NewReader(data), 10)
	if err == nil {
		t.Error("expected error for upload over the byte limit")
	}
}

func TestNormalizeRejectsNonImage(t *testing.T) {
	_, err := Normalize(bytes.NewReader([]byte("not a photo")), testMaxBytes)
	if err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestNormalizeRejectsGIF(t *testing.T) {
	_, err := Normalize(bytes.NewReader([]byte("GIF89a...")), testMaxBytes)
	if err == nil {
		t.Error("expected error for GIF")
	}
}
