// Package catalog keeps a persistent, searchable index of the packages,
// symbols and device sets found in Eagle libraries.
//
// Entries live in a bolt database as msgpack records; a bleve index next
// to it serves full-text search. Entry IDs are name-based UUIDs, so adding
// the same library twice replaces its entries instead of duplicating them.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle"
	"github.com/blevesearch/bleve"
	"github.com/boltdb/bolt"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	dbFile    = "catalog.db"
	indexDir  = "catalog.index"
	entriesBk = "entries"

	defaultLimit = 10
)

// ErrNotFound is returned by Get for an unknown ID
var ErrNotFound = errors.New("catalog: entry not found")

// namespace scopes the name-based entry IDs
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("eagle-catalog"))

// Kind is the type of library item an entry describes
type Kind string

const (
	KindPackage   Kind = "package"
	KindSymbol    Kind = "symbol"
	KindDeviceSet Kind = "deviceset"
)

// Entry is one cataloged library item
type Entry struct {
	ID          string   `msgpack:"id" json:"id"`
	Kind        Kind     `msgpack:"kind" json:"kind"`
	Name        string   `msgpack:"name" json:"name"`
	Library     string   `msgpack:"library" json:"library"`
	Source      string   `msgpack:"source" json:"source"`
	Description string   `msgpack:"description" json:"description"`
	Pads        []string `msgpack:"pads,omitempty" json:"pads,omitempty"`
	Pins        []string `msgpack:"pins,omitempty" json:"pins,omitempty"`
	Prefix      string   `msgpack:"prefix,omitempty" json:"prefix,omitempty"`
	Packages    []string `msgpack:"packages,omitempty" json:"packages,omitempty"`
}

// indexDoc is the searchable projection of an Entry
type indexDoc struct {
	Kind        string   `json:"kind"`
	Name        string   `json:"name"`
	Library     string   `json:"library"`
	Description string   `json:"description"`
	Packages    []string `json:"packages"`
}

// EntryID returns the deterministic ID of a library item
func EntryID(kind Kind, library, name string) string {
	return uuid.NewSHA1(namespace, []byte(string(kind)+"\x00"+library+"\x00"+name)).String()
}

// Catalog is an open catalog directory
type Catalog struct {
	dir   string
	db    *bolt.DB
	index bleve.Index
}

// Open opens the catalog in dir, creating it if needed
func Open(dir string) (*Catalog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create catalog directory: %w", err)
	}

	db, err := bolt.Open(filepath.Join(dir, dbFile), 0o644, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(entriesBk))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize catalog database: %w", err)
	}

	var index bleve.Index
	ipath := filepath.Join(dir, indexDir)
	if _, statErr := os.Stat(ipath); statErr == nil {
		index, err = bleve.Open(ipath)
	} else {
		index, err = bleve.New(ipath, bleve.NewIndexMapping())
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open catalog index: %w", err)
	}

	return &Catalog{dir: dir, db: db, index: index}, nil
}

// Close releases the database and the index
func (c *Catalog) Close() error {
	return errors.Join(c.index.Close(), c.db.Close())
}

// Dir returns the catalog directory
func (c *Catalog) Dir() string {
	return c.dir
}

// Count returns the number of stored entries
func (c *Catalog) Count() (int, error) {
	n := 0
	err := c.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(entriesBk)).Stats().KeyN
		return nil
	})
	return n, err
}

// AddDocument catalogs every library of doc: the library of a .lbr file
// and the libraries embedded in a schematic or board. It returns the
// number of entries written.
func (c *Catalog) AddDocument(source string, doc *eagle.Document) (int, error) {
	var entries []Entry
	d := &doc.Drawing
	if d.Library != nil {
		name := d.Library.Name
		if name == "" {
			name = libraryName(source)
		}
		entries = append(entries, libraryEntries(source, name, d.Library)...)
	}
	if d.Schematic != nil {
		for i := range d.Schematic.Libraries {
			lib := &d.Schematic.Libraries[i]
			entries = append(entries, libraryEntries(source, lib.Name, lib)...)
		}
	}
	if d.Board != nil {
		for i := range d.Board.Libraries {
			lib := &d.Board.Libraries[i]
			entries = append(entries, libraryEntries(source, lib.Name, lib)...)
		}
	}
	if err := c.put(entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

func (c *Catalog) put(entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	if err := c.db.Update(func(tx *bolt.Tx) error {
		bk := tx.Bucket([]byte(entriesBk))
		for i := range entries {
			data, err := msgpack.Marshal(&entries[i])
			if err != nil {
				return err
			}
			if err := bk.Put([]byte(entries[i].ID), data); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("failed to store catalog entries: %w", err)
	}

	batch := c.index.NewBatch()
	for _, e := range entries {
		if err := batch.Index(e.ID, e.indexDoc()); err != nil {
			return fmt.Errorf("failed to index %s: %w", e.Name, err)
		}
	}
	if err := c.index.Batch(batch); err != nil {
		return fmt.Errorf("failed to index catalog entries: %w", err)
	}
	return nil
}

// Get loads one entry by ID
func (c *Catalog) Get(id string) (*Entry, error) {
	var e *Entry
	err := c.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(entriesBk)).Get([]byte(id))
		if data == nil {
			return ErrNotFound
		}
		e = &Entry{}
		return msgpack.Unmarshal(data, e)
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Search runs a bleve query string (e.g. "0805", "kind:package +name:SO*")
// and returns up to limit entries in score order
func (c *Catalog) Search(query string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	req := bleve.NewSearchRequestOptions(bleve.NewQueryStringQuery(query), limit, 0, false)
	res, err := c.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}

	out := make([]Entry, 0, len(res.Hits))
	for _, hit := range res.Hits {
		e, err := c.Get(hit.ID)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, nil
}

func (e *Entry) indexDoc() indexDoc {
	return indexDoc{
		Kind:        string(e.Kind),
		Name:        e.Name,
		Library:     e.Library,
		Description: e.Description,
		Packages:    e.Packages,
	}
}

// libraryEntries lists the items of one library
func libraryEntries(source, library string, lib *eagle.Library) []Entry {
	var out []Entry
	for i := range lib.Packages {
		p := &lib.Packages[i]
		out = append(out, Entry{
			ID:          EntryID(KindPackage, library, p.Name),
			Kind:        KindPackage,
			Name:        p.Name,
			Library:     library,
			Source:      source,
			Description: p.Description.Text,
			Pads:        p.PadNames(),
		})
	}
	for i := range lib.Symbols {
		s := &lib.Symbols[i]
		pins := make([]string, 0, len(s.Pins))
		for _, pin := range s.Pins {
			pins = append(pins, pin.Name)
		}
		out = append(out, Entry{
			ID:          EntryID(KindSymbol, library, s.Name),
			Kind:        KindSymbol,
			Name:        s.Name,
			Library:     library,
			Source:      source,
			Description: s.Description.Text,
			Pins:        pins,
		})
	}
	for i := range lib.DeviceSets {
		ds := &lib.DeviceSets[i]
		var pkgs []string
		for _, d := range ds.Devices {
			if d.Package != "" {
				pkgs = append(pkgs, d.Package)
			}
		}
		out = append(out, Entry{
			ID:          EntryID(KindDeviceSet, library, ds.Name),
			Kind:        KindDeviceSet,
			Name:        ds.Name,
			Library:     library,
			Source:      source,
			Description: ds.Description.Text,
			Prefix:      ds.Prefix,
			Packages:    pkgs,
		})
	}
	return out
}
