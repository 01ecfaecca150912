package domain

import "fmt"

// Box is a labeled bounding box in xmin, ymin, xmax, ymax order.
// Fixed boxes are normalized to [0,1]; detected boxes use the model's pixel frame.
type Box struct {
	Label  string
	Coords [4]float64
}

func (b Box) Width() float64  { return b.Coords[2] - b.Coords[0] }
func (b Box) Height() float64 { return b.Coords[3] - b.Coords[1] }

// Area is zero for degenerate or inverted boxes.
func (b Box) Area() float64 {
	w, h := b.Width(), b.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Frame is a target pixel frame.
type Frame struct {
	Width  int
	Height int
}

func (f Frame) String() string {
	return fmt.Sprintf("%dx%d", f.Width, f.Height)
}

// TypedObject is a reconciled symbol with its box and semantic type.
type TypedObject struct {
	Symbol string
	Type   string
	Box    Box
	Fixed  bool
}

// DropReason explains why a detection or symbol was left out.
type DropReason string

const (
	DropUnrecognized   DropReason = "unrecognized_label"
	DropDuplicateLabel DropReason = "duplicate_same_label"
	DropDuplicateAny   DropReason = "duplicate_any_label"
	DropUntyped        DropReason = "untyped_symbol"
)

// Drop is one identifier removed during reconciliation.
type Drop struct {
	Label  string
	Reason DropReason

	// IoU against the detection that caused the drop (duplicates only).
	IoU     float64
	Against string
}

// Reconciliation is the merged, typed object set and its rendering.
type Reconciliation struct {
	Vocabulary string
	Frame      Frame

	// Boxes is the final object set: rescaled fixed boxes then accepted detections.
	Boxes   []Box
	Objects []TypedObject
	Dropped []Drop

	// ObjectsText is the "(:objects ...)" block.
	ObjectsText string
}

// DroppedLabels lists dropped identifiers for a reason, in order.
func (r Reconciliation) DroppedLabels(reason DropReason) []string {
	var out []string
	for _, d := range r.Dropped {
		if d.Reason == reason {
			out = append(out, d.Label)
		}
	}
	return out
}
