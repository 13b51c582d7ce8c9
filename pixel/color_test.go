package pixel

import (
	"image/color"
	"testing"
)

func TestOpaqueRGBA(t *testing.T) {
	if v, want := OpaqueRGBA(RGB{10, 20, 30}), (RGBA{10, 20, 30, 255}); v != want {
		t.Errorf("expected %+v, got %+v", want, v)
	}
	if v, want := (RGB{1, 2, 3}).Opaque(), (RGBA{1, 2, 3, 255}); v != want {
		t.Errorf("expected %+v, got %+v", want, v)
	}
}

func TestRGBAMatchesNRGBA(t *testing.T) {
	for _, c := range []RGBA{{}, {1, 2, 3, 4}, {0xff, 0x80, 0x00, 0x80}, {0xff, 0xff, 0xff, 0xff}} {
		t.Run(c.String(), func(it *testing.T) {
			r, g, b, a := c.RGBA()
			wr, wg, wb, wa := color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
			if r != wr || g != wg || b != wb || a != wa {
				it.Errorf("expected (%#04x,%#04x,%#04x,%#04x), got (%#04x,%#04x,%#04x,%#04x)", wr, wg, wb, wa, r, g, b, a)
			}
		})
	}
}

func TestModels(t *testing.T) {
	if v := RGBAModel.Convert(color.NRGBA{R: 1, G: 2, B: 3, A: 4}); v != (RGBA{1, 2, 3, 4}) {
		t.Errorf("expected straight alpha to survive conversion, got %+v", v)
	}
	if v := RGBAModel.Convert(RGB{1, 2, 3}); v != (RGBA{1, 2, 3, 0xff}) {
		t.Errorf("expected RGB to become opaque, got %+v", v)
	}
	if v := RGBModel.Convert(RGBA{1, 2, 3, 4}); v != (RGB{1, 2, 3}) {
		t.Errorf("expected alpha to be dropped, got %+v", v)
	}
	if v := RGBModel.Convert(color.Gray{Y: 0x80}); v != (RGB{0x80, 0x80, 0x80}) {
		t.Errorf("expected gray to convert, got %+v", v)
	}
}

func TestString(t *testing.T) {
	if v := (RGBA{0xff, 0x80, 0x00, 0x80}).String(); v != "#ff800080" {
		t.Errorf("unexpected string %q", v)
	}
	if v := (RGB{0x0a, 0x0b, 0x0c}).String(); v != "#0a0b0c" {
		t.Errorf("unexpected string %q", v)
	}
}
