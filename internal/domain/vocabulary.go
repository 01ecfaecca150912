package domain

// Category maps a semantic type to the base labels that belong to it.
type Category struct {
	Type   string
	Labels []string
}

// Vocabulary is the per-domain label set used to reconcile detections.
type Vocabulary struct {
	Name string

	// Detect lists the labels a detector is asked for. Raw labels are
	// matched against these entries by prefix.
	Detect []string

	// Categories are consulted in order; the first category listing a
	// base label decides its type.
	Categories []Category

	// LabelPath and BoxPath are JSONPath expressions selecting detection
	// labels and boxes from a list-shaped payload.
	LabelPath string
	BoxPath   string
}

// TypeOf returns the semantic type of a base label.
func (v Vocabulary) TypeOf(base string) (string, bool) {
	for _, c := range v.Categories {
		for _, l := range c.Labels {
			if l == base {
				return c.Type, true
			}
		}
	}
	return "", false
}
