package fractalcolor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSavePNGRejectsMismatchedBufferLength(t *testing.T) {
	err := SavePNG(filepath.Join(t.TempDir(), "out.png"), 4, 4, make([]byte, 10))
	if err != ErrBufferTooSmall {
		t.Fatalf("SavePNG with wrong buffer length = %v, want ErrBufferTooSmall", err)
	}
}

func TestSavePNGWritesReadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	buf := make([]byte, 2*2*4)
	for i := range buf {
		buf[i] = 255
	}
	if err := SavePNG(path, 2, 2, buf); err != nil {
		t.Fatalf("SavePNG() error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Error("SavePNG wrote an empty file")
	}
}

func TestSaveLUTStripDerivesWidthFromBufferLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lut.png")
	lut := make([]byte, 256*4)
	if err := SaveLUTStrip(path, lut); err != nil {
		t.Fatalf("SaveLUTStrip() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
}

func TestDefaultRegistryIsPopulated(t *testing.T) {
	reg := DefaultRegistry()
	if len(reg.All()) == 0 {
		t.Fatal("DefaultRegistry() returned no algorithms")
	}
	if !reg.Has("smooth-iteration") {
		t.Error("DefaultRegistry() missing expected algorithm \"smooth-iteration\"")
	}
}

func TestNewRegistryStartsEmpty(t *testing.T) {
	reg := NewRegistry()
	if len(reg.All()) != 0 {
		t.Errorf("NewRegistry() All() = %d entries, want 0", len(reg.All()))
	}
}
