package reconcile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/vilain/internal/domain"
)

// RenderObjects writes an "(:objects ...)" block with one line per type,
// types in first-encounter order.
func RenderObjects(objs []domain.TypedObject) string {
	var (
		order  []string
		byType = map[string][]string{}
	)
	for _, o := range objs {
		if _, seen := byType[o.Type]; !seen {
			order = append(order, o.Type)
		}
		byType[o.Type] = append(byType[o.Type], o.Symbol)
	}

	var sb strings.Builder
	sb.WriteString("(:objects\n")
	for _, typ := range order {
		fmt.Fprintf(&sb, "    %s - %s\n", strings.Join(byType[typ], " "), typ)
	}
	sb.WriteString(")")
	return sb.String()
}

// DescribeBoxes lists boxes one per line: "- plate: [1, 2, 3, 4]".
func DescribeBoxes(boxes []domain.Box) string {
	lines := make([]string, 0, len(boxes))
	for _, b := range boxes {
		coords := make([]string, 0, 4)
		for _, c := range b.Coords {
			coords = append(coords, strconv.FormatFloat(c, 'f', -1, 64))
		}
		lines = append(lines, fmt.Sprintf("- %s: [%s]", b.Label, strings.Join(coords, ", ")))
	}
	return strings.Join(lines, "\n")
}
