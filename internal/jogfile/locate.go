package jogfile

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Location is a discovered jogfile that has not been loaded yet.
type Location struct {
	Path     string
	Distance int
}

// Discovery holds the jogfiles visible from a start directory, nearest first.
type Discovery struct {
	Start     string
	Locations []Location
}

// Locate walks start and its ancestors and records every directory holding a
// jogfile. It fails with ErrDiscovery when there is none.
func Locate(start string) (*Discovery, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", start)
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	d := &Discovery{Start: abs}
	current := abs
	for distance := 0; ; distance++ {
		candidate := filepath.Join(current, FileName)
		info, err := os.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			d.Locations = append(d.Locations, Location{Path: candidate, Distance: distance})
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return nil, errors.Wrapf(err, "stat %s", candidate)
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	if len(d.Locations) == 0 {
		return nil, &Error{Kind: ErrDiscovery, Msg: FileName + " not found"}
	}
	return d, nil
}

// Load reads, parses, and validates the jogfile at loc.
func Load(loc Location) (*File, error) {
	data, err := os.ReadFile(loc.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", loc.Path)
	}
	tasks, err := Parse(loc.Path, data)
	if err != nil {
		return nil, err
	}
	if err := Validate(loc.Path, tasks); err != nil {
		return nil, err
	}
	return &File{Path: loc.Path, Distance: loc.Distance, Tasks: tasks}, nil
}

// Files loads each jogfile on demand, nearest first. Iteration ends after the
// first load error.
func (d *Discovery) Files() iter.Seq2[*File, error] {
	return func(yield func(*File, error) bool) {
		for _, loc := range d.Locations {
			f, err := Load(loc)
			if !yield(f, err) || err != nil {
				return
			}
		}
	}
}

// LoadAll loads every discovered jogfile, nearest first, stopping at the
// first one that fails.
func (d *Discovery) LoadAll() ([]*File, error) {
	files := make([]*File, 0, len(d.Locations))
	for f, err := range d.Files() {
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// Nearest is the path of the closest jogfile.
func (d *Discovery) Nearest() string {
	if len(d.Locations) == 0 {
		return ""
	}
	return d.Locations[0].Path
}
