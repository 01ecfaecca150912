package plan

import (
	"testing"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_FlatList(t *testing.T) {
	text := "Plan:\n```json\n[\"(pick robot cucumber plate)\", \"(place robot cucumber cutting_board)\"]\n```"

	steps, err := Decode(text)
	require.NoError(t, err)
	assert.Equal(t, []string{"(pick robot cucumber plate)", "(place robot cucumber cutting_board)"}, steps)
}

func TestDecode_ListOfLists(t *testing.T) {
	steps, err := Decode(`[["(pick robot apple bowl)"], ["(place robot apple plate)", "ignored"]]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"(pick robot apple bowl)", "(place robot apple plate)"}, steps)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode("no plan here")
	assert.True(t, domain.IsKind(err, domain.KindStructuralNotFound))

	_, err = Decode("[]")
	assert.True(t, domain.IsKind(err, domain.KindExecution))

	_, err = Decode("[1, 2]")
	assert.True(t, domain.IsKind(err, domain.KindExecution))

	_, err = Decode("[pick]")
	assert.True(t, domain.IsKind(err, domain.KindExecution))
}
