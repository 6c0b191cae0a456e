package catalog

import (
	"fmt"
	"strings"

	"github.com/medicare-app/backend/internal/domain/entities"
)

// CategoryGroup assigns canonical symptom ids to one display category.
// Groups are ordered, and so are the ids inside each group.
type CategoryGroup struct {
	Name string
	IDs  []string
}

// OtherCategory collects every schema id not claimed by a configured group,
// so the whole feature schema stays user-selectable.
const OtherCategory = "Other"

// Catalog maps between canonical model feature identifiers and the display
// names shown on the checklist. It is built once at startup against the
// artifact's feature schema and is immutable afterwards.
type Catalog struct {
	schema      []string
	position    map[string]int
	displayByID map[string]string
	idByLookup  map[string]string
	categories  []entities.SymptomCategory
}

// New builds a catalog for the given feature schema. Configured groups are
// validated against the schema: an id that is not a schema feature, an id
// claimed twice, or two ids whose display forms collide all fail construction
// rather than producing a silently broken checklist.
func New(schema []string, groups []CategoryGroup, overrides map[string]string) (*Catalog, error) {
	if len(schema) == 0 {
		return nil, fmt.Errorf("feature schema is empty")
	}

	c := &Catalog{
		schema:      append([]string(nil), schema...),
		position:    make(map[string]int, len(schema)),
		displayByID: make(map[string]string, len(schema)),
		idByLookup:  make(map[string]string, len(schema)*2),
	}

	for i, id := range schema {
		if _, dup := c.position[id]; dup {
			return nil, fmt.Errorf("duplicate feature %q in schema", id)
		}
		c.position[id] = i

		display := overrides[id]
		if display == "" {
			display = DisplayName(id)
		}
		c.displayByID[id] = display

		if prev, clash := c.idByLookup[normalize(display)]; clash && prev != id {
			return nil, fmt.Errorf("display name %q is ambiguous: resolves to both %q and %q", display, prev, id)
		}
		c.idByLookup[normalize(display)] = id
		if prev, clash := c.idByLookup[normalize(id)]; clash && prev != id {
			return nil, fmt.Errorf("feature %q is ambiguous: collides with display name %q of %q", id, c.displayByID[prev], prev)
		}
		c.idByLookup[normalize(id)] = id
	}

	assigned := make(map[string]string, len(schema))
	for _, group := range groups {
		symptoms := make([]entities.Symptom, 0, len(group.IDs))
		for _, id := range group.IDs {
			if _, ok := c.position[id]; !ok {
				return nil, fmt.Errorf("category %q references unknown feature %q", group.Name, id)
			}
			if owner, taken := assigned[id]; taken {
				return nil, fmt.Errorf("feature %q assigned to both %q and %q", id, owner, group.Name)
			}
			assigned[id] = group.Name
			symptoms = append(symptoms, entities.Symptom{CanonicalID: id, DisplayName: c.displayByID[id]})
		}
		c.categories = append(c.categories, entities.SymptomCategory{Name: group.Name, Symptoms: symptoms})
	}

	var leftovers []entities.Symptom
	for _, id := range schema {
		if _, taken := assigned[id]; !taken {
			leftovers = append(leftovers, entities.Symptom{CanonicalID: id, DisplayName: c.displayByID[id]})
		}
	}
	if len(leftovers) > 0 {
		c.categories = append(c.categories, entities.SymptomCategory{Name: OtherCategory, Symptoms: leftovers})
	}

	return c, nil
}

// Resolve maps a display name or canonical id onto its canonical id.
// Matching is case-insensitive and tolerant of space/underscore variation.
func (c *Catalog) Resolve(nameOrID string) (string, bool) {
	id, ok := c.idByLookup[normalize(nameOrID)]
	return id, ok
}

// DisplayFor returns the display name for a canonical id.
func (c *Catalog) DisplayFor(id string) (string, bool) {
	display, ok := c.displayByID[id]
	return display, ok
}

// Categories returns the ordered checklist categories.
func (c *Catalog) Categories() []entities.SymptomCategory {
	return c.categories
}

// Symptoms returns every catalog entry in feature-schema order.
func (c *Catalog) Symptoms() []entities.Symptom {
	symptoms := make([]entities.Symptom, len(c.schema))
	for i, id := range c.schema {
		symptoms[i] = entities.Symptom{CanonicalID: id, DisplayName: c.displayByID[id]}
	}
	return symptoms
}

// Schema returns the ordered canonical feature identifiers.
func (c *Catalog) Schema() []string {
	return c.schema
}

// Len returns the feature schema length.
func (c *Catalog) Len() int {
	return len(c.schema)
}

// Match returns symptoms whose display name or id contains the query,
// schema order. Fallback path when no search index is configured.
func (c *Catalog) Match(query string, limit int) []entities.Symptom {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}

	var matches []entities.Symptom
	for _, id := range c.schema {
		display := c.displayByID[id]
		if strings.Contains(strings.ToLower(display), needle) || strings.Contains(id, strings.ReplaceAll(needle, " ", "_")) {
			matches = append(matches, entities.Symptom{CanonicalID: id, DisplayName: display})
			if limit > 0 && len(matches) >= limit {
				break
			}
		}
	}
	return matches
}

// DisplayName derives the human-readable form of a canonical id:
// separators become spaces and each word is title-cased.
func DisplayName(id string) string {
	words := strings.Fields(strings.ReplaceAll(id, "_", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// normalize is the shared lookup key: lowercase, underscores for spaces.
func normalize(value string) string {
	collapsed := strings.Join(strings.Fields(strings.TrimSpace(value)), " ")
	return strings.ReplaceAll(strings.ToLower(collapsed), " ", "_")
}
