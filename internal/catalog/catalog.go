// Package catalog defines the items being ordered and their prerequisite
// formulas, and loads them from the embedded default or an external file.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	rtoerrors "github.com/alexisbeaulieu97/rto/pkg/errors"
)

// EmbeddedSource names the built-in catalog in errors and logs.
const EmbeddedSource = "embedded:tools.json"

//go:embed data/tools.json
var embeddedTools []byte

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Catalog is an immutable, validated set of items.
type Catalog struct {
	items []Item
	index map[string]int
}

// New validates items and builds a Catalog. An empty slice yields ErrCatalogEmpty.
func New(items []Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, rtoerrors.ErrCatalogEmpty
	}
	if err := ValidateItems(items); err != nil {
		return nil, err
	}

	c := &Catalog{
		items: append([]Item(nil), items...),
		index: make(map[string]int, len(items)),
	}
	for i, item := range c.items {
		c.index[item.Key()] = i
	}
	return c, nil
}

// Load reads a catalog from path, or the embedded catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(EmbeddedSource, embeddedTools)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rtoerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes a JSON or YAML list of items. source is only used in error messages.
func Parse(source string, data []byte) (*Catalog, error) {
	var items []Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, rtoerrors.NewParseError(source, extractLine(err), err)
	}

	c, err := New(items)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return c, nil
}

// Items returns a copy of the items in declaration order.
func (c *Catalog) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Lookup finds an item by name, ignoring case.
func (c *Catalog) Lookup(name string) (Item, bool) {
	idx, ok := c.index[Key(name)]
	if !ok {
		return Item{}, false
	}
	return c.items[idx], true
}

// Reference is an atom whose target item is not part of the catalog.
type Reference struct {
	Item   string
	Target string
}

// UnknownReferences lists atoms naming items absent from the catalog, sorted
// by referencing item then target. Such atoms are treated as never placed.
func (c *Catalog) UnknownReferences() []Reference {
	var refs []Reference
	seen := make(map[Reference]bool)
	for _, item := range c.items {
		for _, atom := range item.Prerequisites.Atoms() {
			if _, ok := c.index[atom.Key()]; ok {
				continue
			}
			ref := Reference{Item: item.Name, Target: atom.Name}
			if seen[ref] {
				continue
			}
			seen[ref] = true
			refs = append(refs, ref)
		}
	}

	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Item != refs[j].Item {
			return refs[i].Item < refs[j].Item
		}
		return refs[i].Target < refs[j].Target
	})
	return refs
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
