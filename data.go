package plottools

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CSVInfo describes the structure of a .csv data file.
type CSVInfo struct {
	// Columns are the header fields of the first record.
	Columns []string `json:"columns"`

	// Records is the number of data records following the header.
	Records int `json:"records"`

	// Delimiter is the detected field delimiter.
	Delimiter string `json:"delimiter"`
}

// DataInfo is the structural description of a display-data file.
// Exactly one of Arrays and CSV is set, depending on Kind.
type DataInfo struct {
	// Path is the described file.
	Path string `json:"path"`

	// Kind is "npz" or "csv".
	Kind string `json:"kind"`

	// Arrays lists the arrays of an .npz file.
	Arrays []ArrayInfo `json:"arrays,omitempty"`

	// CSV describes a .csv file.
	CSV *CSVInfo `json:"csv,omitempty"`
}

// DescribeData inspects a display-data file structurally: array names,
// dtypes, and shapes for .npz, columns and record count for .csv. The
// data values themselves are never interpreted.
// Returns ErrUnsupportedData for other extensions.
func DescribeData(path string) (DataInfo, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".npz":
		arrays, err := ReadNPZ(path)
		if err != nil {
			return DataInfo{}, err
		}
		return DataInfo{Path: path, Kind: "npz", Arrays: arrays}, nil
	case ".csv":
		info, err := ReadCSVInfo(path)
		if err != nil {
			return DataInfo{}, err
		}
		return DataInfo{Path: path, Kind: "csv", CSV: &info}, nil
	default:
		return DataInfo{}, fmt.Errorf("%w: %s", ErrUnsupportedData, path)
	}
}

// ReadCSVInfo reads the header and record count of a .csv file.
// The delimiter is sniffed from the header line; comma, semicolon,
// and tab are recognized.
func ReadCSVInfo(path string) (CSVInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return CSVInfo{}, fmt.Errorf("%w: %s: %v", ErrStorageError, path, err)
	}
	defer f.Close()

	delim, err := sniffDelimiter(f)
	if err != nil {
		return CSVInfo{}, fmt.Errorf("%w: %s: %v", ErrStorageError, path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return CSVInfo{}, fmt.Errorf("%w: %s: %v", ErrStorageError, path, err)
	}

	r := csv.NewReader(f)
	r.Comma = delim
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return CSVInfo{Delimiter: string(delim)}, nil
	}
	if err != nil {
		return CSVInfo{}, fmt.Errorf("%w: %s: %v", ErrStorageError, path, err)
	}
	info := CSVInfo{Columns: header, Delimiter: string(delim)}
	for {
		_, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return CSVInfo{}, fmt.Errorf("%w: %s: %v", ErrStorageError, path, err)
		}
		info.Records++
	}
	return info, nil
}

// sniffDelimiter picks the delimiter occurring most often in the
// first line, outside quoted fields. Defaults to comma.
func sniffDelimiter(f *os.File) (rune, error) {
	buf := make([]byte, 4096)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return 0, err
	}
	line := string(buf[:n])
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	best, count := ',', countUnquoted(line, ',')
	if c := countUnquoted(line, ';'); c > count {
		best, count = ';', c
	}
	if c := countUnquoted(line, '\t'); c > count {
		best = '\t'
	}
	return best, nil
}

// countUnquoted counts occurrences of delim outside double-quoted
// regions, so delimiters inside quoted fields do not skew sniffing.
func countUnquoted(line string, delim byte) int {
	n := 0
	inQuotes := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case delim:
			if !inQuotes {
				n++
			}
		}
	}
	return n
}
