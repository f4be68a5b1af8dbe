package anim

import (
	"bytes"
	"image/gif"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/chaoswatch/internal/raster"
)

func frameWithDot(x, y int) *raster.FrameBuffer {
	fb := raster.NewFrameBuffer(20, 20)
	fb.Set(x, y, raster.Foreground)
	return fb
}

func TestEncodeRoundTrip(t *testing.T) {
	a := New(100 * time.Millisecond)
	for i := 0; i < 4; i++ {
		if err := a.AddFrame(frameWithDot(i, i)); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := a.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(g.Image) != 4 {
		t.Fatalf("decoded %d frames, want 4", len(g.Image))
	}
	if g.LoopCount != 0 {
		t.Errorf("LoopCount = %d, want 0 (forever)", g.LoopCount)
	}
	for i, d := range g.Delay {
		if d != 10 {
			t.Errorf("frame %d delay = %d, want 10", i, d)
		}
	}
	for i, img := range g.Image {
		if img.ColorIndexAt(i, i) != 1 {
			t.Errorf("frame %d: ink missing at (%d,%d)", i, i, i)
		}
	}
}

func TestAddFrameRejectsSizeChange(t *testing.T) {
	a := New(0)
	if a.Delay != DefaultDelay {
		t.Errorf("Delay = %v, want default", a.Delay)
	}
	_ = a.AddFrame(raster.NewFrameBuffer(10, 10))
	if err := a.AddFrame(raster.NewFrameBuffer(11, 10)); err == nil {
		t.Error("expected size mismatch error")
	}
	if err := a.AddFrame(nil); err == nil {
		t.Error("expected nil frame error")
	}
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := New(DefaultDelay).Encode(&buf); err == nil {
		t.Error("expected error for empty animation")
	}
}

func TestSave(t *testing.T) {
	a := New(DefaultDelay)
	_ = a.AddFrame(frameWithDot(1, 2))
	path := filepath.Join(t.TempDir(), "out.gif")
	if err := a.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
}
