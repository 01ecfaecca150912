package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/vilain/internal/domain"
)

const (
	DefaultLabelPath = "$[*].label"
	DefaultBoxPath   = "$[*].bbox_2d"
)

// JSONPayload isolates the first JSON array or object embedded in text.
// Whichever opener comes first wins.
func JSONPayload(text string) (string, error) {
	as, ae, arrErr := Bounds(text, 0, Brackets)
	cs, ce, objErr := Bounds(text, 0, Braces)

	switch {
	case arrErr == nil && objErr == nil:
		if as < cs {
			return text[as:ae], nil
		}
		return text[cs:ce], nil
	case arrErr == nil:
		return text[as:ae], nil
	case objErr == nil:
		return text[cs:ce], nil
	}

	// An opener was seen: report the imbalance rather than absence.
	if domain.IsKind(arrErr, domain.KindUnbalanced) {
		return "", arrErr
	}
	if domain.IsKind(objErr, domain.KindUnbalanced) {
		return "", objErr
	}
	return "", domain.StructuralNotFound("extract.json_payload", "no JSON array or object found")
}

// Detections decodes labeled boxes from generated text.
//
// Two payload shapes are accepted:
//   - a list of objects; labels and boxes are selected with JSONPath
//     (labelPath/boxPath, defaulting to $[*].label and $[*].bbox_2d)
//   - an object mapping label -> box, decoded in key order
func Detections(text, labelPath, boxPath string) ([]domain.Box, error) {
	payload, err := JSONPayload(text)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(payload, "{") {
		return decodeBoxMap(payload)
	}

	var doc any
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, payloadError("detections payload is not valid JSON: %v", err)
	}

	if strings.TrimSpace(labelPath) == "" {
		labelPath = DefaultLabelPath
	}
	if strings.TrimSpace(boxPath) == "" {
		boxPath = DefaultBoxPath
	}

	labels, err := selectAll(labelPath, doc)
	if err != nil {
		return nil, err
	}
	boxes, err := selectAll(boxPath, doc)
	if err != nil {
		return nil, err
	}
	if len(labels) != len(boxes) {
		return nil, payloadError("%d labels but %d boxes (%s, %s)", len(labels), len(boxes), labelPath, boxPath)
	}

	out := make([]domain.Box, 0, len(labels))
	for i := range labels {
		label, ok := labels[i].(string)
		if !ok {
			return nil, payloadError("label %d is %T, want string", i, labels[i])
		}
		coords, err := toCoords(boxes[i])
		if err != nil {
			return nil, payloadError("box %d (%s): %v", i, label, err)
		}
		out = append(out, domain.Box{Label: strings.TrimSpace(label), Coords: coords})
	}
	return out, nil
}

// decodeBoxMap decodes a label -> [x1, y1, x2, y2] object, preserving key order.
func decodeBoxMap(payload string) ([]domain.Box, error) {
	dec := json.NewDecoder(strings.NewReader(payload))
	tok, err := dec.Token()
	if err != nil {
		return nil, payloadError("box map is not valid JSON: %v", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, payloadError("box map must be a JSON object")
	}

	var out []domain.Box
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, payloadError("box map is not valid JSON: %v", err)
		}
		label, _ := keyTok.(string)

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return nil, payloadError("box %q: %v", label, err)
		}
		coords, err := toCoords(raw)
		if err != nil {
			return nil, payloadError("box %q: %v", label, err)
		}
		out = append(out, domain.Box{Label: label, Coords: coords})
	}
	return out, nil
}

func selectAll(expr string, doc any) ([]any, error) {
	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, payloadError("jsonpath %s: %v", expr, err)
	}
	switch t := val.(type) {
	case []any:
		return t, nil
	case nil:
		return nil, nil
	default:
		return []any{t}, nil
	}
}

func toCoords(v any) ([4]float64, error) {
	var c [4]float64

	arr, ok := v.([]any)
	if !ok {
		return c, fmt.Errorf("box is %T, want array of 4 numbers", v)
	}
	if len(arr) != 4 {
		return c, fmt.Errorf("box has %d coordinates, want 4", len(arr))
	}
	for i, x := range arr {
		f, ok := x.(float64)
		if !ok {
			return c, fmt.Errorf("coordinate %d is %T, want number", i, x)
		}
		c[i] = f
	}
	return c, nil
}

func payloadError(format string, args ...any) error {
	return &domain.OpError{
		Op:   "extract.detections",
		Kind: domain.KindExecution,
		Err:  fmt.Errorf(format, args...),
	}
}
