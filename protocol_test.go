package mandel

import (
	"image"
	"image/color"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetRGBA(2, 1, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	got, err := DecodeFrame(EncodeFrame(img))
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	if got.Bounds() != img.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), img.Bounds())
	}
	if got.RGBAAt(0, 0) != img.RGBAAt(0, 0) || got.RGBAAt(2, 1) != img.RGBAAt(2, 1) {
		t.Errorf("pixels did not survive the round trip")
	}
}

func TestDecodeFrameRejectsBadInput(t *testing.T) {
	if _, err := DecodeFrame([]byte{1, 2, 3}); err == nil {
		t.Errorf("short buffer accepted")
	}
	// Header claims 2x2 but carries a single pixel.
	bad := EncodeFrame(image.NewRGBA(image.Rect(0, 0, 2, 2)))[:frameHeaderLen+4]
	if _, err := DecodeFrame(bad); err == nil {
		t.Errorf("truncated payload accepted")
	}
}

func TestViewUpdateRoundTrip(t *testing.T) {
	v := testView()
	u := ViewUpdate(v)
	if u.Type != UpdateView {
		t.Fatalf("update type = %q, want %q", u.Type, UpdateView)
	}
	if got := u.View(); got != v {
		t.Errorf("View() = %+v, want %+v", got, v)
	}
}
