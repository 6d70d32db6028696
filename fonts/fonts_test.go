package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Regular, Small, Title} {
		if name.Get() == nil {
			t.Errorf("font %s missing", name)
		}
	}
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Error("expected an error for invalid TTF data")
	}
}
