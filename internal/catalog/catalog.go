// Package catalog resolves bare consumable names to full records from a
// YAML catalog file, so evaluations do not have to spell out category,
// safety level, and nutrition by hand.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"mixlab/internal/consumable"
)

type document struct {
	Version     int                     `yaml:"version"`
	Consumables []consumable.Consumable `yaml:"consumables"`
}

// Catalog is an immutable name-indexed set of consumable records.
type Catalog struct {
	items []consumable.Consumable
	index map[string]int
}

// Empty returns a catalog with no entries; lookups simply miss.
func Empty() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Load reads a catalog file and validates every entry. Entries with
// blocking validation errors fail the load; advisory warnings do not.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	if doc.Version != 1 {
		return nil, fmt.Errorf("loading catalog: unsupported version: %d", doc.Version)
	}

	catalog := &Catalog{
		items: make([]consumable.Consumable, 0, len(doc.Consumables)),
		index: make(map[string]int, len(doc.Consumables)),
	}

	for i, item := range doc.Consumables {
		if strings.TrimSpace(string(item.Category)) != "" {
			item.Category = consumable.ParseCategory(string(item.Category))
		}
		if item.SafetyLevel != consumable.LevelUnknown {
			item.SafetyLevel = consumable.ParseSafetyLevel(string(item.SafetyLevel))
		}

		if report := consumable.Validate(item); !report.Valid {
			return nil, fmt.Errorf("loading catalog: entry %d (%s): %s", i, item.Name, strings.Join(report.Errors, "; "))
		}

		key := strings.ToLower(strings.TrimSpace(item.Name))
		if _, exists := catalog.index[key]; exists {
			return nil, fmt.Errorf("loading catalog: duplicate entry: %s", item.Name)
		}

		catalog.index[key] = len(catalog.items)
		catalog.items = append(catalog.items, item)
	}

	return catalog, nil
}

// Lookup finds a record by name, case-insensitively.
func (c *Catalog) Lookup(name string) (consumable.Consumable, bool) {
	if i, ok := c.index[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c.items[i], true
	}
	return consumable.Consumable{}, false
}

// Items returns a copy of every record in file order.
func (c *Catalog) Items() []consumable.Consumable {
	return append([]consumable.Consumable(nil), c.items...)
}

// Len reports the number of records.
func (c *Catalog) Len() int {
	return len(c.items)
}
