package fonts

import (
	"testing"

	"golang.org/x/image/font"
)

func TestLoadDefaults(t *testing.T) {
	fonts = map[FontName]font.Face{}

	if Loaded(HUD) || Loaded(Small) {
		t.Fatal("Expected no fonts before loading")
	}
	if err := LoadDefaults(); err != nil {
		t.Fatalf("Expected bundled font to parse, got %v", err)
	}
	for _, name := range []FontName{HUD, Small} {
		if !Loaded(name) {
			t.Errorf("Expected %s to be loaded", name)
		}
		if name.Get() == nil {
			t.Errorf("Expected %s to have a face", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Error("Expected an error for invalid font data")
	}
	if Loaded("broken") {
		t.Error("Expected a failed load to register nothing")
	}
}
