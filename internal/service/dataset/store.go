package dataset

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sandevgo/csvrepl/internal/core"
	"github.com/sandevgo/csvrepl/internal/service/result"
)

const DefaultDir = "data/"

var (
	ErrFileNotFound = errors.New("file not found")
	ErrNotLoaded    = errors.New("no file loaded")
	ErrNoMatch      = errors.New("value not found")
)

const (
	msgLoadUsage   = "Invalid argument length, correct usage: load_file [path to file]"
	msgViewUsage   = "Incorrect usage: view has no arguments."
	msgSearchUsage = "Invalid argument length, correct usage: search [header_id] [term]"
	msgNotLoaded   = "Please load a file first using load_file."
	msgNoMatch     = "Search failed: value not found"
)

// Dataset is an in-memory table. HasHeader marks the first row as column
// names, which lets search address columns by name.
type Dataset struct {
	Rows      [][]string
	HasHeader bool
}

// Store simulates a server that loads one dataset at a time. The current
// path only changes on a successful Open.
type Store struct {
	dir      string
	datasets map[string]Dataset
	current  string
}

var _ core.DatasetStore = (*Store)(nil)

func NewStore(dir string, datasets map[string]Dataset) *Store {
	if datasets == nil {
		datasets = make(map[string]Dataset)
	}
	return &Store{
		dir:      normalizeDir(dir),
		datasets: datasets,
	}
}

// NewMockStore returns a store over the built-in fixtures.
func NewMockStore(dir string) *Store {
	return NewStore(dir, Fixtures(dir))
}

// Current returns the logical path of the loaded dataset, or "".
func (s *Store) Current() string {
	return s.current
}

// Names lists the available datasets relative to the directory prefix.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.datasets))
	for path := range s.datasets {
		names = append(names, strings.TrimPrefix(path, s.dir))
	}
	sort.Strings(names)
	return names
}

// Open makes name (relative to the directory prefix) the current dataset.
func (s *Store) Open(name string) error {
	path := s.dir + name
	if _, ok := s.datasets[path]; !ok {
		return fmt.Errorf("open %q: %w", path, ErrFileNotFound)
	}
	s.current = path
	return nil
}

// Rows returns the current dataset. The slice is shared; callers must not
// modify it.
func (s *Store) Rows() ([][]string, error) {
	ds, ok := s.loaded()
	if !ok {
		return nil, ErrNotLoaded
	}
	return ds.Rows, nil
}

// Find returns the first data row whose column equals term. The column is a
// zero-based index or, for datasets with a header row, a header name.
func (s *Store) Find(column, term string) ([]string, error) {
	ds, ok := s.loaded()
	if !ok {
		return nil, ErrNotLoaded
	}

	idx, ok := ds.columnIndex(column)
	if !ok {
		return nil, fmt.Errorf("column %q: %w", column, ErrNoMatch)
	}

	rows := ds.Rows
	if ds.HasHeader && len(rows) > 0 {
		rows = rows[1:]
	}
	for _, row := range rows {
		if idx < len(row) && row[idx] == term {
			return row, nil
		}
	}
	return nil, fmt.Errorf("%s=%q: %w", column, term, ErrNoMatch)
}

func (s *Store) Load(args []string) core.Result {
	if len(args) != 1 {
		return result.NewText(msgLoadUsage)
	}
	if err := s.Open(args[0]); err != nil {
		return result.NewText(fmt.Sprintf("File not found. Make sure file is in %s directory.", s.dir))
	}
	return result.NewText(fmt.Sprintf(`File "%s" has been loaded.`, args[0]))
}

func (s *Store) View(args []string) core.Result {
	if len(args) != 0 {
		return result.NewText(msgViewUsage)
	}
	rows, err := s.Rows()
	if err != nil {
		return result.NewText(msgNotLoaded)
	}
	// view never promotes the first row to a header
	return result.NewTable(rows, false)
}

func (s *Store) Search(args []string) core.Result {
	if len(args) != 2 {
		return result.NewText(msgSearchUsage)
	}
	row, err := s.Find(args[0], args[1])
	switch {
	case errors.Is(err, ErrNotLoaded):
		return result.NewText(msgNotLoaded)
	case err != nil:
		return result.NewText(msgNoMatch)
	}
	return result.NewRow(row)
}

func (s *Store) loaded() (Dataset, bool) {
	if s.current == "" {
		return Dataset{}, false
	}
	ds, ok := s.datasets[s.current]
	return ds, ok
}

func (d Dataset) columnIndex(column string) (int, bool) {
	if n, err := strconv.Atoi(column); err == nil {
		return n, n >= 0
	}
	if !d.HasHeader || len(d.Rows) == 0 {
		return 0, false
	}
	for i, name := range d.Rows[0] {
		if name == column {
			return i, true
		}
	}
	return 0, false
}

func normalizeDir(dir string) string {
	if dir == "" {
		return DefaultDir
	}
	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	return dir
}
