package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lustre/internal/cart/models"
)

func sampleItems() []models.LineItem {
	return []models.LineItem{
		{ID: "p-001", Name: "Akoya Strand", Price: 248500, Quantity: 1, Image: "/images/p-001.jpg"},
		{ID: "p-004", Name: "South Sea Studs", Price: 96000, Quantity: 2,
			Metadata: &models.ItemMetadata{PearlType: "South Sea", Length: "8mm"}},
	}
}

func TestEncodeDecode(t *testing.T) {
	payload, err := Encode(sampleItems())
	require.NoError(t, err)

	items, ok := Decode(payload)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, "p-001", items[0].ID)
	assert.Equal(t, 2, items[1].Quantity)
	require.NotNil(t, items[1].Metadata)
	assert.Equal(t, "South Sea", items[1].Metadata.PearlType)
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"malformed json", `{not json`},
		{"wrong version", `{"version":99,"items":[]}`},
		{"missing version", `{"items":[]}`},
		{"wrong shape", `["p-001","p-002"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Decode([]byte(tt.payload))
			assert.False(t, ok)
		})
	}
}

func TestDecodeEmptyList(t *testing.T) {
	payload, err := Encode(nil)
	require.NoError(t, err)

	items, ok := Decode(payload)
	require.True(t, ok)
	assert.Empty(t, items)
}
