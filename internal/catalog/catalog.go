package catalog

import (
	"embed"
	"fmt"

	"github.com/afh/afh-platform/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed config/products.yaml config/playbooks.yaml
var catalogYAML embed.FS

// Catalog holds one loaded item list. Items are read-only after load; Items()
// returns the shared slice, callers must not mutate entries.
type Catalog struct {
	kind  string
	items []models.CatalogItem
}

type catalogFile struct {
	Items []models.CatalogItem `yaml:"items"`
}

func load(path, kind string) (*Catalog, error) {
	data, err := catalogYAML.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded catalog %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	for i := range file.Items {
		file.Items[i].Kind = kind
	}

	return &Catalog{kind: kind, items: file.Items}, nil
}

// LoadProducts loads the built-in product catalog.
func LoadProducts() (*Catalog, error) {
	return load("config/products.yaml", models.KindProduct)
}

// LoadPlaybooks loads the built-in playbook catalog.
func LoadPlaybooks() (*Catalog, error) {
	return load("config/playbooks.yaml", models.KindPlaybook)
}

func (c *Catalog) Kind() string { return c.kind }

func (c *Catalog) Items() []models.CatalogItem { return c.items }

func (c *Catalog) Len() int { return len(c.items) }

// Channels returns the distinct channel names across the catalog, in first-seen order.
func (c *Catalog) Channels() []string {
	seen := make(map[string]bool)
	var channels []string
	for _, item := range c.items {
		for _, ch := range item.Channels {
			if !seen[ch] {
				seen[ch] = true
				channels = append(channels, ch)
			}
		}
	}
	return channels
}
