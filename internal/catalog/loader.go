// Package catalog loads the exercise catalog from a file or provides the
// built-in one.
package catalog

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/hiitcoach/internal/domain"
	"github.com/hammamikhairi/hiitcoach/internal/logger"
)

// Compile-time interface check.
var _ domain.CatalogSource = (*FileSource)(nil)

// FileSource reads a catalog document from disk. The document is a
// mapping of category -> level -> list of exercise names, written as
// YAML or JSON (JSON is valid YAML, so one parser serves both).
type FileSource struct {
	path string
	log  *logger.Logger
}

// NewFileSource returns a source for the document at path.
func NewFileSource(path string, log *logger.Logger) *FileSource {
	return &FileSource{path: path, log: log}
}

// Catalog reads and validates the document. The file is fully read and
// closed before this returns.
func (s *FileSource) Catalog(ctx context.Context) (*domain.Catalog, error) {
	return Load(s.path, s.log)
}

// Load reads the catalog document at path.
func Load(path string, log *logger.Logger) (*domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %v: %w", path, err, domain.ErrCatalogUnavailable)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Info("loaded catalog %s (%d categories)", path, len(c.Categories()))
	return c, nil
}

// Parse decodes a catalog document. Category order follows the document.
func Parse(data []byte) (*domain.Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing: %v: %w", err, domain.ErrCatalogMalformed)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty document: %w", domain.ErrCatalogMalformed)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, malformed(root, "top level must be a mapping of categories")
	}

	c := domain.NewCatalog()
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, malformed(key, "category name must be a non-empty string")
		}
		cat := domain.Category(key.Value)
		if c.Has(cat) {
			return nil, malformed(key, fmt.Sprintf("duplicate category %q", cat))
		}
		if err := parseLevels(c, cat, val); err != nil {
			return nil, err
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func parseLevels(c *domain.Catalog, cat domain.Category, node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return malformed(node, fmt.Sprintf("category %q must map levels to exercises", cat))
	}

	seen := make(map[domain.Level]bool)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		lvl, err := domain.ParseLevel(key.Value)
		if key.Kind != yaml.ScalarNode || err != nil {
			return malformed(key, fmt.Sprintf("category %q has unknown level %q", cat, key.Value))
		}
		if seen[lvl] {
			return malformed(key, fmt.Sprintf("category %q repeats level %q", cat, lvl))
		}
		seen[lvl] = true

		if val.Kind != yaml.SequenceNode {
			return malformed(val, fmt.Sprintf("category %q level %q must be a list", cat, lvl))
		}
		names := make([]string, 0, len(val.Content))
		for _, item := range val.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return malformed(item, fmt.Sprintf("category %q level %q entries must be strings", cat, lvl))
			}
			names = append(names, item.Value)
		}
		c.Add(cat, lvl, names...)
	}

	for _, lvl := range domain.Levels() {
		if !seen[lvl] {
			return malformed(node, fmt.Sprintf("category %q is missing level %q", cat, lvl))
		}
	}
	return nil
}

func malformed(n *yaml.Node, msg string) error {
	return fmt.Errorf("line %d: %s: %w", n.Line, msg, domain.ErrCatalogMalformed)
}
