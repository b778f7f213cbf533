package config

import (
	"fmt"
	"io"
	"os"
)

// Size reports the remaining byte length of f by seeking to the end
// and restoring the original offset. It works on handles that are
// not positioned at the start of the file.
func Size(f *os.File) (int64, error) {
	cur, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := f.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}
	return end - cur, nil
}

// ReadAll reads the remainder of f into a buffer sized by Size.
func ReadAll(f *os.File) ([]byte, error) {
	n, err := Size(f)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadFile reads the named file fully into memory. The handle is
// closed exactly once on every path.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	d, err := ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return d, nil
}
