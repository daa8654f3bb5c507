package dump

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// CONTEXT_FILE is the name of the register snapshot in a capture directory.
const CONTEXT_FILE = "context.bin"

var segmentName = regexp.MustCompile("(?i)^[0-9a-f]{8}\\.mem$")

// CreateFS is a file system that supports creating files, for marshaling
// capture directories.
type CreateFS interface {
	// Create creates a new file for writing.
	Create(name string) (file io.WriteCloser, err error)
}

// DirFS is a CreateFS rooted at an operating system directory.
type DirFS string

var _ CreateFS = DirFS("")

// Create creates a file in the directory.
func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	return os.Create(filepath.Join(string(dir), name))
}

// UnmarshalFS loads a capture directory: the trap frame in context.bin, and
// one XXXXXXXX.mem file per segment, named by its hexadecimal base address.
func (img *Image) UnmarshalFS(filesys fs.FS) (err error) {
	data, err := fs.ReadFile(filesys, CONTEXT_FILE)
	if err != nil {
		return
	}

	out := Image{Verbose: img.Verbose}
	err = out.Context.UnmarshalBinary(data)
	if err != nil {
		return
	}

	entries, err := fs.ReadDir(filesys, ".")
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !segmentName.MatchString(name) {
			continue
		}

		var base uint64
		base, err = strconv.ParseUint(strings.TrimSuffix(name, filepath.Ext(name)), 16, 32)
		if err != nil {
			return
		}

		data, err = fs.ReadFile(filesys, name)
		if err != nil {
			return
		}

		err = out.AddSegment(uint32(base), data)
		if err != nil {
			err = &fs.PathError{Op: "segment", Path: name, Err: err}
			return
		}
	}

	*img = out

	return
}

// MarshalFS writes the image as a capture directory.
func (img *Image) MarshalFS(filesys CreateFS) (err error) {
	data, err := img.Context.MarshalBinary()
	if err != nil {
		return
	}

	err = writeFile(filesys, CONTEXT_FILE, data)
	if err != nil {
		return
	}

	for _, seg := range img.segments {
		err = writeFile(filesys, fmt.Sprintf("%08x.mem", seg.Base), seg.Data)
		if err != nil {
			return
		}
	}

	return
}

// ParseSegment splits a `base:path` segment argument. The base address is
// hexadecimal, with or without a 0x prefix.
func ParseSegment(arg string) (base uint32, path string, err error) {
	text, path, ok := strings.Cut(arg, ":")
	if !ok || len(text) == 0 || len(path) == 0 {
		err = ErrSegmentArg(arg)
		return
	}

	value, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(text), "0x"), 16, 32)
	if err != nil {
		err = ErrSegmentArg(arg)
		return
	}

	base = uint32(value)
	return
}

func writeFile(filesys CreateFS, name string, data []byte) (err error) {
	file, err := filesys.Create(name)
	if err != nil {
		return
	}
	defer func() {
		cerr := file.Close()
		if err == nil {
			err = cerr
		}
	}()

	_, err = file.Write(data)

	return
}
