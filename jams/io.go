package jams

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CompressedExt is the file extension of gzip-compressed JAMS files.
const CompressedExt = ".jamz"

// Load reads a JAMS file. Paths ending in .jamz are decompressed with gzip;
// anything else is read as plain JSON.
func Load(path string) (*JAMS, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open jams: %w", err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	if isCompressed(path) {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%s: gzip: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	jam, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return jam, nil
}

// Read decodes a JAMS object from JSON.
func Read(r io.Reader) (*JAMS, error) {
	jam := New()
	if err := json.NewDecoder(r).Decode(jam); err != nil {
		return nil, fmt.Errorf("decode jams: %w", err)
	}
	jam.normalize()
	return jam, nil
}

// Save writes jam to path, gzip-compressing when the path ends in .jamz.
// The file is written to a temporary sibling and renamed into place. An
// existing file keeps its permissions; a new file is created 0644.
func Save(jam *JAMS, path string) (err error) {
	mode := fs.FileMode(0o644)
	if fi, statErr := os.Stat(path); statErr == nil {
		mode = fi.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create jams: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	var w io.Writer = tmp
	var zw *gzip.Writer
	if isCompressed(path) {
		zw = gzip.NewWriter(tmp)
		w = zw
	}
	if err = Write(w, jam); err != nil {
		return err
	}
	if zw != nil {
		if err = zw.Close(); err != nil {
			return fmt.Errorf("gzip: %w", err)
		}
	}
	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("chmod jams: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close jams: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename jams: %w", err)
	}
	return nil
}

// Write encodes jam as indented JSON.
func Write(w io.Writer, jam *JAMS) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jam); err != nil {
		return fmt.Errorf("encode jams: %w", err)
	}
	return nil
}

func isCompressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), CompressedExt)
}

// normalize replaces nil collections left by explicit JSON nulls.
func (j *JAMS) normalize() {
	if j.Annotations == nil {
		j.Annotations = []*Annotation{}
	}
	if j.Sandbox == nil {
		j.Sandbox = Sandbox{}
	}
	if j.FileMetadata.Identifiers == nil {
		j.FileMetadata.Identifiers = Sandbox{}
	}
	for _, a := range j.Annotations {
		if a != nil && a.Sandbox == nil {
			a.Sandbox = Sandbox{}
		}
	}
}
