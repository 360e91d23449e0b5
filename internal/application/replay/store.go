package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// ErrNoFrames is returned when saving an empty recording
var ErrNoFrames = errors.New("no frames to save")

// compressed reports whether filename selects the zstd container
func compressed(filename string) bool {
	return strings.HasSuffix(filename, ".zst")
}

// Save writes data to filename as JSON, zstd-compressed when the name
// ends in .zst.
func Save(filename string, data ReplayData) error {
	if len(data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := Encode(file, data, compressed(filename)); err != nil {
		return err
	}
	return file.Close()
}

// Encode writes data to w, optionally through a zstd encoder
func Encode(w io.Writer, data ReplayData, compress bool) error {
	if !compress {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to encode replay: %w", err)
		}
		return nil
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	if err := json.NewEncoder(zw).Encode(data); err != nil {
		_ = zw.Close()
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to flush zstd stream: %w", err)
	}
	return nil
}

// LoadReplay loads replay data from a file written by Save
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file, compressed(filename))
}

// Decode reads replay data from r
func Decode(r io.Reader, compress bool) (*ReplayData, error) {
	if compress {
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}
