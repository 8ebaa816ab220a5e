package dataset

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrUnknownDataset is returned by Get for names not in the registry.
var ErrUnknownDataset = errors.New("unknown dataset")

// Params carries the tunable generator inputs. The zero Anchor is
// replaced with the current time.
type Params struct {
	Seed   uint64
	Months int
	Days   int
	Points int
	Anchor time.Time
}

// Registry maps dataset names to table factories so callers can address
// individual datasets by name.
var Registry = map[string]func(p Params) Table{
	"sales":       func(p Params) Table { return Sales(p.Seed, p.Months, p.anchor()).Table() },
	"regional":    func(p Params) Table { return Regional(p.Seed).Table() },
	"performance": func(p Params) Table { return Performance(p.Seed).Table() },
	"timeseries":  func(p Params) Table { return TimeSeries(p.Seed, p.Days, p.anchor()).Table() },
	"scatter":     func(p Params) Table { return Scatter(p.Seed, p.Points).Table() },
	"share":       func(p Params) Table { return Share().Table() },
}

func (p Params) anchor() time.Time {
	if p.Anchor.IsZero() {
		return time.Now()
	}
	return p.Anchor
}

// Get returns a dataset factory by name.
func Get(name string) (func(p Params) Table, error) {
	factory, ok := Registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDataset, name)
	}
	return factory, nil
}

// List returns all registered dataset names, sorted.
func List() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
