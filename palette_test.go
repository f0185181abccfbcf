package plottools

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestPaletteColor(t *testing.T) {
	c, err := PaletteVivid.Color("red")
	if err != nil {
		t.Fatalf("Color(red) error = %v", err)
	}
	if c != "#D71000" {
		t.Errorf("Color(red) = %q, want #D71000", c)
	}

	if _, err := PaletteVivid.Color("mauve"); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("Color(mauve) error = %v, want ErrUnknownColor", err)
	}
}

func TestPalettesDefineSameNames(t *testing.T) {
	for _, name := range PaletteVivid.Names() {
		if _, ok := PaletteMuted[name]; !ok {
			t.Errorf("PaletteMuted is missing %q", name)
		}
	}
	if len(PaletteVivid) != len(PaletteMuted) {
		t.Errorf("palette sizes differ: vivid %d, muted %d",
			len(PaletteVivid), len(PaletteMuted))
	}
}

func TestLoadPalette(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid palette", func(t *testing.T) {
		path := filepath.Join(dir, "palette.json")
		content := `{"red": "#ff0000", "blue": "#00f"}`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		p, err := LoadPalette(path)
		if err != nil {
			t.Fatalf("LoadPalette() error = %v", err)
		}
		if p["red"] != "#FF0000" {
			t.Errorf("red = %q, want #FF0000", p["red"])
		}
		if p["blue"] != "#0000FF" {
			t.Errorf("blue = %q, want #0000FF", p["blue"])
		}
	})

	t.Run("invalid color", func(t *testing.T) {
		path := filepath.Join(dir, "badcolor.json")
		if err := os.WriteFile(path, []byte(`{"red": "tomato"}`), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadPalette(path); !errors.Is(err, ErrInvalidPalette) {
			t.Errorf("LoadPalette() error = %v, want ErrInvalidPalette", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "badjson.json")
		if err := os.WriteFile(path, []byte(`{"red": `), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadPalette(path); !errors.Is(err, ErrInvalidPalette) {
			t.Errorf("LoadPalette() error = %v, want ErrInvalidPalette", err)
		}
	})

	t.Run("empty palette", func(t *testing.T) {
		path := filepath.Join(dir, "empty.json")
		if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadPalette(path); !errors.Is(err, ErrInvalidPalette) {
			t.Errorf("LoadPalette() error = %v, want ErrInvalidPalette", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadPalette(filepath.Join(dir, "nope.json")); !errors.Is(err, ErrStorageError) {
			t.Errorf("LoadPalette() error = %v, want ErrStorageError", err)
		}
	})
}
