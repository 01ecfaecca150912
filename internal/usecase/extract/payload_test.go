package extract

import (
	"testing"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONPayload_SkipsQuotedBrackets(t *testing.T) {
	text := `Detected: [{"label": "odd]name", "bbox_2d": [1, 2, 3, 4]}] and more ] text`

	got, err := JSONPayload(text)
	require.NoError(t, err)
	assert.Equal(t, `[{"label": "odd]name", "bbox_2d": [1, 2, 3, 4]}]`, got)
}

func TestJSONPayload_SemicolonIsNotAComment(t *testing.T) {
	got, err := JSONPayload(`["a;b", ["c"]]`)
	require.NoError(t, err)
	assert.Equal(t, `["a;b", ["c"]]`, got)
}

func TestJSONPayload_FirstOpenerWins(t *testing.T) {
	got, err := JSONPayload(`map: {"plate": [1, 2, 3, 4]}`)
	require.NoError(t, err)
	assert.Equal(t, `{"plate": [1, 2, 3, 4]}`, got)
}

func TestJSONPayload_Missing(t *testing.T) {
	_, err := JSONPayload("nothing to see")
	assert.True(t, domain.IsKind(err, domain.KindStructuralNotFound))

	_, err = JSONPayload(`[{"label": "x"`)
	assert.True(t, domain.IsKind(err, domain.KindUnbalanced))
}

func TestDetections_ListShape(t *testing.T) {
	text := "```json\n" + `[
  {"label": "cucumber", "bbox_2d": [10, 10, 50, 50]},
  {"label": " plate ", "bbox_2d": [100, 120, 300, 330.5]}
]` + "\n```"

	boxes, err := Detections(text, "", "")
	require.NoError(t, err)
	assert.Equal(t, []domain.Box{
		{Label: "cucumber", Coords: [4]float64{10, 10, 50, 50}},
		{Label: "plate", Coords: [4]float64{100, 120, 300, 330.5}},
	}, boxes)
}

func TestDetections_CustomPaths(t *testing.T) {
	text := `[{"name": "bowl", "box": [1, 2, 3, 4]}]`

	boxes, err := Detections(text, "$[*].name", "$[*].box")
	require.NoError(t, err)
	require.Len(t, boxes, 1)
	assert.Equal(t, "bowl", boxes[0].Label)
}

func TestDetections_MapShapeKeepsKeyOrder(t *testing.T) {
	text := `{"plate": [0.1, 0.2, 0.3, 0.4], "bowl": [0.5, 0.6, 0.7, 0.8], "apple": [0, 0, 1, 1]}`

	boxes, err := Detections(text, "", "")
	require.NoError(t, err)
	require.Len(t, boxes, 3)
	assert.Equal(t, "plate", boxes[0].Label)
	assert.Equal(t, "bowl", boxes[1].Label)
	assert.Equal(t, "apple", boxes[2].Label)
}

func TestDetections_BadBox(t *testing.T) {
	_, err := Detections(`[{"label": "a", "bbox_2d": [1, 2, 3]}]`, "", "")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindExecution))

	_, err = Detections(`{"a": "oops"}`, "", "")
	require.Error(t, err)
}

func TestDetections_LabelBoxCountMismatch(t *testing.T) {
	_, err := Detections(`[{"label": "a", "bbox_2d": [1, 2, 3, 4]}, {"label": "b"}]`, "", "")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindExecution))
}
