package catalog

// Vector converts a symptom selection into the fixed-order feature vector the
// classifier was trained on. Selection entries may be canonical ids or display
// names; entries that resolve to nothing are silently ignored. This
// permissiveness is a deliberate compatibility policy for the forgiving UI
// contract; changing it requires a compatibility note.
//
// The result depends only on the selection (as a set) and the schema:
// duplicates collapse and enumeration order never matters.
func (c *Catalog) Vector(selection []string) []float64 {
	vector := make([]float64, len(c.schema))
	for _, entry := range selection {
		id, ok := c.Resolve(entry)
		if !ok {
			continue
		}
		vector[c.position[id]] = 1
	}
	return vector
}

// ResolveSelection returns the display names of the selection entries that
// resolved against the schema, in schema order, without duplicates. Used to
// echo the effective selection back to the UI.
func (c *Catalog) ResolveSelection(selection []string) []string {
	selected := make(map[string]bool, len(selection))
	for _, entry := range selection {
		if id, ok := c.Resolve(entry); ok {
			selected[id] = true
		}
	}

	resolved := make([]string, 0, len(selected))
	for _, id := range c.schema {
		if selected[id] {
			resolved = append(resolved, c.displayByID[id])
		}
	}
	return resolved
}
