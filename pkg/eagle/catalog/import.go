package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle"
	"github.com/mholt/archiver"
)

// IsEagleFile reports whether path has a library, schematic or board extension
func IsEagleFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lbr", ".sch", ".brd":
		return true
	}
	return false
}

// IsArchive reports whether path names an archive AddFile can unpack
func IsArchive(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range []string{".zip", ".tar", ".tar.gz", ".tgz", ".tar.bz2", ".tar.xz"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// AddFile catalogs an Eagle file, or every Eagle file inside an archive.
// Entries from an archive carry "<archive>!<member>" as their source.
func (c *Catalog) AddFile(path string) (int, error) {
	switch {
	case IsEagleFile(path):
		doc, err := eagle.Load(path)
		if err != nil {
			return 0, err
		}
		if !doc.ValidXMLData {
			return 0, fmt.Errorf("%s: no Eagle drawing found", path)
		}
		return c.AddDocument(path, doc)
	case IsArchive(path):
		return c.addArchive(path)
	default:
		return 0, fmt.Errorf("%s: unsupported file type", path)
	}
}

func (c *Catalog) addArchive(path string) (int, error) {
	tmp, err := os.MkdirTemp("", "eagle-catalog-")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tmp)

	if err := archiver.Unarchive(path, tmp); err != nil {
		return 0, fmt.Errorf("failed to unpack %s: %w", path, err)
	}

	total := 0
	err = filepath.WalkDir(tmp, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsEagleFile(p) {
			return nil
		}
		doc, err := eagle.Load(p)
		if err != nil {
			return err
		}
		if !doc.ValidXMLData {
			return nil
		}
		rel, err := filepath.Rel(tmp, p)
		if err != nil {
			return err
		}
		n, err := c.AddDocument(path+"!"+filepath.ToSlash(rel), doc)
		total += n
		return err
	})
	return total, err
}

// libraryName derives a library name from a source path
func libraryName(source string) string {
	if i := strings.LastIndexByte(source, '!'); i >= 0 {
		source = source[i+1:]
	}
	base := filepath.Base(filepath.FromSlash(source))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
