package plottools

import (
	"archive/zip"
	"encoding/binary"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ArrayInfo describes one array in an .npz archive.
type ArrayInfo struct {
	// Name is the array name, the archive member without the .npy
	// extension.
	Name string `json:"name"`

	// DType is the numpy dtype descriptor, e.g. "<f8".
	DType string `json:"dtype"`

	// Shape is the array shape. Empty for zero-dimensional arrays.
	Shape []int `json:"shape"`

	// Fortran reports column-major element order.
	Fortran bool `json:"fortran,omitempty"`

	// ByteSize is the uncompressed size of the array data in bytes.
	ByteSize int64 `json:"byte_size"`
}

// npyMagic starts every .npy member of an .npz archive.
var npyMagic = []byte("\x93NUMPY")

// npy header dict fields, e.g.
// {'descr': '<f8', 'fortran_order': False, 'shape': (100, 2), }
var (
	npyDescr   = regexp.MustCompile(`'descr'\s*:\s*'([^']*)'`)
	npyFortran = regexp.MustCompile(`'fortran_order'\s*:\s*(True|False)`)
	npyShape   = regexp.MustCompile(`'shape'\s*:\s*\(([^)]*)\)`)
)

// ReadNPZ reads the array inventory of an .npz file without decoding
// any element data. An .npz archive is a zip of .npy members; only
// their headers are parsed. Arrays are returned sorted by name.
func ReadNPZ(path string) ([]ArrayInfo, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadNPZ, path, err)
	}
	defer zr.Close()

	var arrays []ArrayInfo
	for _, member := range zr.File {
		if !strings.HasSuffix(member.Name, ".npy") {
			// numpy ignores foreign members, so do we
			continue
		}
		rc, err := member.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %s: %v", ErrBadNPZ, path, member.Name, err)
		}
		info, headerSize, err := parseNPYHeader(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %s: %v", ErrBadNPZ, path, member.Name, err)
		}
		info.Name = strings.TrimSuffix(member.Name, ".npy")
		info.ByteSize = int64(member.UncompressedSize64) - headerSize
		if info.ByteSize < 0 {
			info.ByteSize = 0
		}
		arrays = append(arrays, info)
	}
	sort.Slice(arrays, func(i, j int) bool { return arrays[i].Name < arrays[j].Name })
	return arrays, nil
}

// parseNPYHeader reads an .npy header and returns the array metadata
// and the total header size including magic and version bytes.
func parseNPYHeader(r io.Reader) (ArrayInfo, int64, error) {
	var pre [8]byte
	if _, err := io.ReadFull(r, pre[:]); err != nil {
		return ArrayInfo{}, 0, fmt.Errorf("reading magic: %v", err)
	}
	if string(pre[:6]) != string(npyMagic) {
		return ArrayInfo{}, 0, fmt.Errorf("bad magic %q", pre[:6])
	}
	major := pre[6]

	// Version 1 uses a 2-byte header length, 2 and 3 a 4-byte one.
	var headerLen, preSize int64
	switch major {
	case 1:
		var n [2]byte
		if _, err := io.ReadFull(r, n[:]); err != nil {
			return ArrayInfo{}, 0, fmt.Errorf("reading header length: %v", err)
		}
		headerLen = int64(binary.LittleEndian.Uint16(n[:]))
		preSize = 10
	case 2, 3:
		var n [4]byte
		if _, err := io.ReadFull(r, n[:]); err != nil {
			return ArrayInfo{}, 0, fmt.Errorf("reading header length: %v", err)
		}
		headerLen = int64(binary.LittleEndian.Uint32(n[:]))
		preSize = 12
	default:
		return ArrayInfo{}, 0, fmt.Errorf("unsupported npy version %d", major)
	}

	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return ArrayInfo{}, 0, fmt.Errorf("reading header: %v", err)
	}
	dict := string(header)

	var info ArrayInfo
	m := npyDescr.FindStringSubmatch(dict)
	if m == nil {
		return ArrayInfo{}, 0, fmt.Errorf("header without descr: %q", dict)
	}
	info.DType = m[1]
	if m := npyFortran.FindStringSubmatch(dict); m != nil {
		info.Fortran = m[1] == "True"
	}
	m = npyShape.FindStringSubmatch(dict)
	if m == nil {
		return ArrayInfo{}, 0, fmt.Errorf("header without shape: %q", dict)
	}
	for _, dim := range strings.Split(m[1], ",") {
		dim = strings.TrimSpace(dim)
		if dim == "" {
			continue // trailing comma of 1-tuples
		}
		n, err := strconv.Atoi(dim)
		if err != nil {
			return ArrayInfo{}, 0, fmt.Errorf("bad shape dimension %q", dim)
		}
		info.Shape = append(info.Shape, n)
	}
	return info, preSize + headerLen, nil
}

// ShapeString formats the shape as "100x2", or "scalar" for
// zero-dimensional arrays.
func (a ArrayInfo) ShapeString() string {
	if len(a.Shape) == 0 {
		return "scalar"
	}
	dims := make([]string, len(a.Shape))
	for i, d := range a.Shape {
		dims[i] = strconv.Itoa(d)
	}
	return strings.Join(dims, "x")
}
