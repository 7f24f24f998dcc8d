package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRegistry(t *testing.T) {
	require.Len(t, TemplateRegistry, 6)

	for i, meta := range TemplateRegistry {
		assert.Equal(t, TemplateID(i+1), meta.ID)
		assert.NotEmpty(t, meta.Name)
		assert.NotEmpty(t, meta.Subject)
		assert.NotEmpty(t, meta.Preview)
		assert.NotEmpty(t, meta.Description)
	}
}

func TestMetadataByID(t *testing.T) {
	meta, ok := MetadataByID(TemplateSkillsHighlight)
	require.True(t, ok)
	assert.Equal(t, "Skills Highlight", meta.Name)

	_, ok = MetadataByID(TemplateID(99))
	assert.False(t, ok)
}
