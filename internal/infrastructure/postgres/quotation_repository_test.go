package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeQuotations_ArregloYObjetoUnico(t *testing.T) {
	list, err := decodeQuotations([]byte(`[{"id":"MAP-1","titulo":"A","itens":[]},{"id":"MAP-2","titulo":"B","itens":[]}]`))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "MAP-2", list[1].ID)

	single, err := decodeQuotations([]byte(`  {"id":"MAP-9","titulo":"LEGADO","data":"2025-12-01","itens":[]}`))
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.Equal(t, "LEGADO", single[0].Title)
	assert.Equal(t, "2025-12-01", single[0].Date.String())

	empty, err := decodeQuotations([]byte(`null`))
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = decodeQuotations([]byte(`{"id":`))
	assert.Error(t, err)
}
