package dataset

import (
	"context"
	"fmt"
	"sort"
)

// catalogEntry describes one named public dataset: where to fetch it and
// which columns must be discarded to obtain a fully numeric table.
type catalogEntry struct {
	url  string
	drop []string
}

// registry is the fixed set of illustrative public datasets. All entries are
// complete (no missing values), so they can serve as ground truth.
var registry = map[string]catalogEntry{
	// Fisher's iris measurements; the species label is categorical.
	"iris": {
		url:  "https://vincentarelbundock.github.io/Rdatasets/csv/datasets/iris.csv",
		drop: []string{"rownames", "Species"},
	},
	// Girth, height and volume of 31 felled black cherry trees.
	"trees": {
		url:  "https://vincentarelbundock.github.io/Rdatasets/csv/datasets/trees.csv",
		drop: []string{"rownames"},
	},
	// Swiss fertility and socio-economic indicators (1888 provinces).
	"swiss": {
		url:  "https://vincentarelbundock.github.io/Rdatasets/csv/datasets/swiss.csv",
		drop: []string{"rownames"},
	},
	// Chatterjee-Price attitude survey, 30 departments.
	"attitude": {
		url:  "https://vincentarelbundock.github.io/Rdatasets/csv/datasets/attitude.csv",
		drop: []string{"rownames"},
	},
}

// Names lists the registry dataset names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Open resolves name against the registry and downloads the table one-shot.
// Unknown names fail with ErrUnknownDataset before any network traffic.
func Open(ctx context.Context, name string) (*Dataset, error) {
	entry, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownDataset, name, Names())
	}
	return FromURL(ctx, entry.url, &LoadOptions{Delimiter: ',', Drop: entry.drop})
}
