package reconcile

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aalvaropc/vilain/internal/domain"
)

const (
	DefaultSameLabelIoU = 0.9
	DefaultAnyLabelIoU  = 0.99
)

// Options controls a reconciliation run.
type Options struct {
	Frame      domain.Frame
	Vocabulary domain.Vocabulary

	// Zero thresholds fall back to the defaults.
	SameLabelIoU float64
	AnyLabelIoU  float64
}

type accepted struct {
	base string
	box  domain.Box
}

// Reconcile merges fixed boxes (normalized) with raw detections (pixel frame)
// into a typed object set and renders its "(:objects ...)" block.
//
// Raw detections are deduplicated only against previously accepted raw
// detections; fixed boxes are never dropped.
func Reconcile(raw, fixed []domain.Box, opts Options) (domain.Reconciliation, error) {
	const op = "reconcile.run"

	if opts.Frame.Width <= 0 || opts.Frame.Height <= 0 {
		return domain.Reconciliation{}, &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("frame must be positive, got %s", opts.Frame),
		}
	}
	same := opts.SameLabelIoU
	if same <= 0 {
		same = DefaultSameLabelIoU
	}
	anyLabel := opts.AnyLabelIoU
	if anyLabel <= 0 {
		anyLabel = DefaultAnyLabelIoU
	}

	if err := Validate(fixed); err != nil {
		return domain.Reconciliation{}, err
	}

	res := domain.Reconciliation{
		Vocabulary: opts.Vocabulary.Name,
		Frame:      opts.Frame,
	}

	final := Rescale(fixed, opts.Frame)

	var kept []accepted
	for _, det := range raw {
		label := strings.ToLower(strings.TrimSpace(det.Label))
		base, ok := matchLabel(opts.Vocabulary, label)
		if !ok {
			res.Dropped = append(res.Dropped, domain.Drop{Label: det.Label, Reason: domain.DropUnrecognized})
			continue
		}

		if drop, dup := duplicateOf(kept, base, det, same, anyLabel); dup {
			res.Dropped = append(res.Dropped, drop)
			continue
		}
		kept = append(kept, accepted{base: base, box: det})
	}

	taken := make(map[string]bool, len(final))
	for _, b := range final {
		taken[b.Label] = true
	}
	counts := map[string]int{}
	detected := make([]domain.Box, 0, len(kept))
	for _, k := range kept {
		name := nextName(k.base, counts, taken)
		taken[name] = true
		detected = append(detected, domain.Box{Label: name, Coords: k.box.Coords})
	}
	sort.SliceStable(detected, func(i, j int) bool {
		return detected[i].Label < detected[j].Label
	})

	fixedCount := len(final)
	final = append(final, detected...)
	res.Boxes = final

	for i, b := range final {
		typ, ok := opts.Vocabulary.TypeOf(baseLabel(b.Label))
		if !ok {
			res.Dropped = append(res.Dropped, domain.Drop{Label: b.Label, Reason: domain.DropUntyped})
			continue
		}
		res.Objects = append(res.Objects, domain.TypedObject{
			Symbol: b.Label,
			Type:   typ,
			Box:    b,
			Fixed:  i < fixedCount,
		})
	}

	res.ObjectsText = RenderObjects(res.Objects)
	return res, nil
}

func duplicateOf(kept []accepted, base string, det domain.Box, same, anyLabel float64) (domain.Drop, bool) {
	for _, k := range kept {
		iou := IoU(k.box, det)
		if k.base == base && iou >= same {
			return domain.Drop{Label: det.Label, Reason: domain.DropDuplicateLabel, IoU: iou, Against: k.box.Label}, true
		}
		if iou >= anyLabel {
			return domain.Drop{Label: det.Label, Reason: domain.DropDuplicateAny, IoU: iou, Against: k.box.Label}, true
		}
	}
	return domain.Drop{}, false
}

// nextName gives the first instance of base its bare name and later ones
// ordinal suffixes starting at 2, skipping names already taken.
func nextName(base string, counts map[string]int, taken map[string]bool) string {
	for {
		counts[base]++
		name := base
		if n := counts[base]; n > 1 {
			name = base + strconv.Itoa(n)
		}
		if !taken[name] {
			return name
		}
	}
}

// Validate rejects fixed boxes with coordinates outside [0,1]. NaN is outside.
func Validate(fixed []domain.Box) error {
	for _, b := range fixed {
		for _, c := range b.Coords {
			if !(c >= 0 && c <= 1) {
				return &domain.OpError{
					Op:   "reconcile.validate",
					Kind: domain.KindInvalidCoordinate,
					Err:  fmt.Errorf("fixed box %q %v: %w", b.Label, b.Coords, domain.ErrInvalidCoordinateRange),
				}
			}
		}
	}
	return nil
}

// Rescale maps normalized boxes onto a pixel frame.
func Rescale(boxes []domain.Box, f domain.Frame) []domain.Box {
	w, h := float64(f.Width), float64(f.Height)

	out := make([]domain.Box, 0, len(boxes))
	for _, b := range boxes {
		out = append(out, domain.Box{
			Label: b.Label,
			Coords: [4]float64{
				b.Coords[0] * w,
				b.Coords[1] * h,
				b.Coords[2] * w,
				b.Coords[3] * h,
			},
		})
	}
	return out
}
