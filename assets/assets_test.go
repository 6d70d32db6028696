package assets

import "testing"

func TestEmbeddedWorlds(t *testing.T) {
	names := WorldNames()
	if len(names) != 2 || names[0] != "meadow" || names[1] != "orchard" {
		t.Fatalf("WorldNames = %v", names)
	}

	for _, name := range names {
		w, err := World(name)
		if err != nil {
			t.Fatalf("World(%q): %v", name, err)
		}
		if len(w.Obstacles()) == 0 {
			t.Errorf("world %q has no obstacles", name)
		}
		if w.Bounds().IsZero() {
			t.Errorf("world %q has no bounds", name)
		}
	}

	if _, err := World("atlantis"); err == nil {
		t.Error("expected an error for an unknown world")
	}
}
