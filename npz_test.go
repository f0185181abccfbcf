package plottools

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// npyBytes builds a version 1 .npy file with the given header dict and
// raw data, padded the way numpy pads headers.
func npyBytes(t *testing.T, dict string, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("\x93NUMPY")
	buf.WriteByte(1)
	buf.WriteByte(0)
	// pad the header with spaces to a multiple of 64 bytes, ending in \n
	pad := 64 - (10+len(dict)+1)%64
	if pad == 64 {
		pad = 0
	}
	header := dict + string(bytes.Repeat([]byte{' '}, pad)) + "\n"
	if err := binary.Write(&buf, binary.LittleEndian, uint16(len(header))); err != nil {
		t.Fatal(err)
	}
	buf.WriteString(header)
	buf.Write(data)
	return buf.Bytes()
}

// writeNPZ builds an .npz archive from member names to raw contents.
func writeNPZ(t *testing.T, path string, members map[string][]byte) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	zw := zip.NewWriter(f)
	for name, content := range members {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write(content); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestReadNPZ(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.npz")

	writeNPZ(t, path, map[string][]byte{
		"freq.npy": npyBytes(t,
			"{'descr': '<f8', 'fortran_order': False, 'shape': (3, 2), }",
			make([]byte, 48)),
		"count.npy": npyBytes(t,
			"{'descr': '<i4', 'fortran_order': True, 'shape': (5,), }",
			make([]byte, 20)),
		"readme.txt": []byte("not an array"),
	})

	arrays, err := ReadNPZ(path)
	if err != nil {
		t.Fatalf("ReadNPZ() error = %v", err)
	}
	if len(arrays) != 2 {
		t.Fatalf("arrays = %d, want 2 (foreign members ignored)", len(arrays))
	}

	// sorted by name: count before freq
	count := arrays[0]
	if count.Name != "count" {
		t.Fatalf("arrays[0] = %q, want count", count.Name)
	}
	if count.DType != "<i4" {
		t.Errorf("count dtype = %q, want <i4", count.DType)
	}
	if len(count.Shape) != 1 || count.Shape[0] != 5 {
		t.Errorf("count shape = %v, want [5]", count.Shape)
	}
	if !count.Fortran {
		t.Error("count should be fortran ordered")
	}
	if count.ByteSize != 20 {
		t.Errorf("count size = %d, want 20", count.ByteSize)
	}

	freq := arrays[1]
	if freq.DType != "<f8" {
		t.Errorf("freq dtype = %q, want <f8", freq.DType)
	}
	if len(freq.Shape) != 2 || freq.Shape[0] != 3 || freq.Shape[1] != 2 {
		t.Errorf("freq shape = %v, want [3 2]", freq.Shape)
	}
	if freq.ByteSize != 48 {
		t.Errorf("freq size = %d, want 48", freq.ByteSize)
	}
}

func TestReadNPZErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("not a zip", func(t *testing.T) {
		path := filepath.Join(dir, "garbage.npz")
		if err := os.WriteFile(path, []byte("not a zip"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := ReadNPZ(path); !errors.Is(err, ErrBadNPZ) {
			t.Errorf("ReadNPZ() error = %v, want ErrBadNPZ", err)
		}
	})

	t.Run("bad member", func(t *testing.T) {
		path := filepath.Join(dir, "badmember.npz")
		writeNPZ(t, path, map[string][]byte{
			"x.npy": []byte("no magic here"),
		})
		if _, err := ReadNPZ(path); !errors.Is(err, ErrBadNPZ) {
			t.Errorf("ReadNPZ() error = %v, want ErrBadNPZ", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := ReadNPZ(filepath.Join(dir, "nope.npz")); !errors.Is(err, ErrBadNPZ) {
			t.Errorf("ReadNPZ() error = %v, want ErrBadNPZ", err)
		}
	})
}

func TestParseNPYHeaderVersion2(t *testing.T) {
	dict := "{'descr': '<f4', 'fortran_order': False, 'shape': (7,), }\n"
	var buf bytes.Buffer
	buf.WriteString("\x93NUMPY")
	buf.WriteByte(2)
	buf.WriteByte(0)
	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(dict))); err != nil {
		t.Fatal(err)
	}
	buf.WriteString(dict)

	info, headerSize, err := parseNPYHeader(&buf)
	if err != nil {
		t.Fatalf("parseNPYHeader() error = %v", err)
	}
	if info.DType != "<f4" {
		t.Errorf("dtype = %q, want <f4", info.DType)
	}
	if len(info.Shape) != 1 || info.Shape[0] != 7 {
		t.Errorf("shape = %v, want [7]", info.Shape)
	}
	if headerSize != int64(12+len(dict)) {
		t.Errorf("headerSize = %d, want %d", headerSize, 12+len(dict))
	}
}

func TestParseNPYHeaderScalar(t *testing.T) {
	raw := npyBytes(t,
		"{'descr': '<f8', 'fortran_order': False, 'shape': (), }",
		make([]byte, 8))

	info, _, err := parseNPYHeader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("parseNPYHeader() error = %v", err)
	}
	if len(info.Shape) != 0 {
		t.Errorf("shape = %v, want empty for a scalar", info.Shape)
	}
	if info.ShapeString() != "scalar" {
		t.Errorf("ShapeString() = %q, want scalar", info.ShapeString())
	}
}

func TestShapeString(t *testing.T) {
	a := ArrayInfo{Shape: []int{100, 2}}
	if got := a.ShapeString(); got != "100x2" {
		t.Errorf("ShapeString() = %q, want 100x2", got)
	}
}
