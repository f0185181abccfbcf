package plottools

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// execCommand runs the command tree with the given arguments and
// returns its combined output.
func execCommand(t *testing.T, cfg Config, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(cfg)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestNewCommand(t *testing.T) {
	cmd := NewCommand(Config{})

	t.Run("root command exists", func(t *testing.T) {
		if cmd == nil {
			t.Fatal("NewCommand returned nil")
		}
		if cmd.Use != "plottools" {
			t.Errorf("Use = %q, want %q", cmd.Use, "plottools")
		}
	})

	t.Run("has global flags", func(t *testing.T) {
		flags := []string{"json", "quiet", "verbose"}
		for _, name := range flags {
			if cmd.PersistentFlags().Lookup(name) == nil {
				t.Errorf("missing global flag: %s", name)
			}
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		subcommands := []string{"check", "styles", "data"}
		for _, name := range subcommands {
			found := false
			for _, sub := range cmd.Commands() {
				if sub.Name() == name {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("missing subcommand: %s", name)
			}
		}
	})
}

func TestCheckCommand(t *testing.T) {
	t.Run("clean directory", func(t *testing.T) {
		dir := t.TempDir()
		old := time.Now().Add(-2 * time.Hour)
		writeFile(t, dir, "fig.py", "d = np.load('fig.npz')\n", old)
		writeFile(t, dir, "fig.npz", "fake", old)
		writeFile(t, dir, "fig.pdf", "fake", time.Now().Add(-time.Hour))

		out, err := execCommand(t, Config{}, "check", dir)
		if err != nil {
			t.Fatalf("check failed: %v\n%s", err, out)
		}
		if !strings.Contains(out, "0 errors") {
			t.Errorf("output = %q, want summary with 0 errors", out)
		}
	})

	t.Run("violations set the exit error", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "nofig.py", "plt.plot(x)\n", time.Now().Add(-time.Hour))

		out, err := execCommand(t, Config{}, "check", dir)
		if !errors.Is(err, ErrViolations) {
			t.Fatalf("check error = %v, want ErrViolations", err)
		}
		if !strings.Contains(out, string(RuleMissingFigure)) {
			t.Errorf("output = %q, want %s finding", out, RuleMissingFigure)
		}
	})

	t.Run("json report", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "nofig.py", "", time.Now().Add(-time.Hour))

		out, _ := execCommand(t, Config{}, "check", "--json", dir)
		var report Report
		if err := json.Unmarshal([]byte(out), &report); err != nil {
			t.Fatalf("output is not a JSON report: %v\n%s", err, out)
		}
		if len(report.Findings) != 1 {
			t.Errorf("findings = %+v, want 1", report.Findings)
		}
	})

	t.Run("default directory from config", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "fig.py", "", time.Now())
		writeFile(t, dir, "fig.png", "fake", time.Now().Add(time.Minute))

		if out, err := execCommand(t, Config{FigureDir: dir}, "check"); err != nil {
			t.Fatalf("check failed: %v\n%s", err, out)
		}
	})
}

func TestStylesExportCommand(t *testing.T) {
	t.Run("mplstyle", func(t *testing.T) {
		out, err := execCommand(t, Config{}, "styles", "export", "--style", "paper")
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		if !strings.Contains(out, "savefig.format: pdf") {
			t.Errorf("output = %q, want a paper style sheet", out)
		}
	})

	t.Run("json", func(t *testing.T) {
		out, err := execCommand(t, Config{},
			"styles", "export", "--style", "screen", "--format", "json")
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		var styles map[string]json.RawMessage
		if err := json.Unmarshal([]byte(out), &styles); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		if _, ok := styles["lsA1"]; !ok {
			t.Error("missing lsA1 in JSON export")
		}
	})

	t.Run("to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "paper.mplstyle")
		_, err := execCommand(t, Config{},
			"styles", "export", "--style", "paper", "-o", path)
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "font.size") {
			t.Errorf("file content = %q, want a style sheet", data)
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		_, err := execCommand(t, Config{}, "styles", "export", "--style", "fancy")
		if !errors.Is(err, ErrUnknownStyle) {
			t.Errorf("export error = %v, want ErrUnknownStyle", err)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execCommand(t, Config{}, "styles", "export", "--format", "yaml")
		if err == nil {
			t.Error("export with unknown format should fail")
		}
	})
}

func TestStylesShowCommand(t *testing.T) {
	out, err := execCommand(t, Config{}, "styles", "show", "A1")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	for _, want := range []string{"lsA1", "lsA1m", "psA1c", "fsA1a"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	t.Run("unknown series", func(t *testing.T) {
		_, err := execCommand(t, Config{}, "styles", "show", "Z9")
		if !errors.Is(err, ErrUnknownSeries) {
			t.Errorf("show error = %v, want ErrUnknownSeries", err)
		}
	})
}

func TestStylesListCommand(t *testing.T) {
	out, err := execCommand(t, Config{}, "styles", "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, want := range []string{"A1", "Female", "#D71000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	t.Run("palette", func(t *testing.T) {
		out, err := execCommand(t, Config{}, "styles", "list", "--palette")
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if !strings.Contains(out, "lightblue") {
			t.Errorf("output missing palette names:\n%s", out)
		}
	})
}

func TestStylesCustomPalette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.json")
	err := os.WriteFile(path, []byte(`{"red": "#123456"}`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	out, err := execCommand(t, Config{PalettePath: path}, "styles", "show", "A1")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out, "#123456") {
		t.Errorf("output = %q, want the custom red", out)
	}
}

func TestDataInfoCommand(t *testing.T) {
	dir := t.TempDir()

	npzPath := filepath.Join(dir, "results.npz")
	writeNPZ(t, npzPath, map[string][]byte{
		"freq.npy": npyBytes(t,
			"{'descr': '<f8', 'fortran_order': False, 'shape': (3, 2), }",
			make([]byte, 48)),
	})
	csvPath := filepath.Join(dir, "table.csv")
	if err := os.WriteFile(csvPath, []byte("x,y\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execCommand(t, Config{}, "data", "info", npzPath, csvPath)
	if err != nil {
		t.Fatalf("data info failed: %v", err)
	}
	for _, want := range []string{"freq", "<f8", "3x2", "2 columns, 1 records"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	t.Run("unsupported file", func(t *testing.T) {
		_, err := execCommand(t, Config{}, "data", "info", "cache.pkl")
		if !errors.Is(err, ErrUnsupportedData) {
			t.Errorf("data info error = %v, want ErrUnsupportedData", err)
		}
	})
}
