package quest

import (
	"fmt"
	"strings"
)

// Catalog is the static, immutable list of objective templates.
// Getters hand out copies so callers can never mutate catalog content.
type Catalog struct {
	templates []Template
	byID      map[string]int
	maxChap   int
}

// NewCatalog validates templates and builds a catalog in the given order.
func NewCatalog(templates []Template) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]int, len(templates))}
	for _, t := range templates {
		t.ID = strings.TrimSpace(t.ID)
		if err := validateTemplate(t); err != nil {
			return nil, err
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate objective id: %s", t.ID)
		}
		c.byID[t.ID] = len(c.templates)
		c.templates = append(c.templates, t.Clone())
		if t.Chapter > c.maxChap {
			c.maxChap = t.Chapter
		}
	}
	if c.maxChap == 0 {
		c.maxChap = 1
	}
	return c, nil
}

// MustCatalog is NewCatalog for built-in content that is known to be valid.
func MustCatalog(templates []Template) *Catalog {
	c, err := NewCatalog(templates)
	if err != nil {
		panic(err)
	}
	return c
}

func validateTemplate(t Template) error {
	if t.ID == "" {
		return fmt.Errorf("objective id is required")
	}
	if !t.Kind.IsValid() {
		return fmt.Errorf("objective %s: invalid kind %q", t.ID, t.Kind)
	}
	if t.MaxProgress <= 0 {
		return fmt.Errorf("objective %s: maxProgress must be positive (got %d)", t.ID, t.MaxProgress)
	}
	if t.Chapter < 1 {
		return fmt.Errorf("objective %s: chapter must be >= 1 (got %d)", t.ID, t.Chapter)
	}
	if t.Kind == KindChallenge && !t.Challenge.IsValid() {
		return fmt.Errorf("objective %s: invalid challenge type %q", t.ID, t.Challenge)
	}
	if !t.MiniGame.IsValid() {
		return fmt.Errorf("objective %s: invalid mini-game %q", t.ID, t.MiniGame)
	}
	return nil
}

// Extend returns a new catalog with more templates appended. Extensions are
// additive only: redefining an existing id is an error so old saves stay valid.
func (c *Catalog) Extend(more []Template) (*Catalog, error) {
	all := c.Templates()
	for _, t := range more {
		if _, ok := c.byID[strings.TrimSpace(t.ID)]; ok {
			return nil, fmt.Errorf("objective %s already exists in the catalog", t.ID)
		}
		all = append(all, t)
	}
	return NewCatalog(all)
}

func (c *Catalog) ByID(id string) (Template, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Template{}, false
	}
	return c.templates[i].Clone(), true
}

func (c *Catalog) ByChapter(chapter int) []Template {
	var out []Template
	for _, t := range c.templates {
		if t.Chapter == chapter {
			out = append(out, t.Clone())
		}
	}
	return out
}

func (c *Catalog) Templates() []Template {
	out := make([]Template, len(c.templates))
	for i, t := range c.templates {
		out[i] = t.Clone()
	}
	return out
}

func (c *Catalog) IDs() []string {
	out := make([]string, len(c.templates))
	for i, t := range c.templates {
		out[i] = t.ID
	}
	return out
}

func (c *Catalog) Len() int        { return len(c.templates) }
func (c *Catalog) MaxChapter() int { return c.maxChap }
