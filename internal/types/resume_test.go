package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResumeDocument_EmptySlices(t *testing.T) {
	doc := NewResumeDocument()

	require.NotNil(t, doc)
	assert.NotNil(t, doc.Contact)
	assert.NotNil(t, doc.Sections)
	assert.Empty(t, doc.Name)
	assert.Empty(t, doc.Title)
}

func TestCountLines_MixedContent(t *testing.T) {
	doc := &ResumeDocument{
		Sections: []Section{
			{
				Name:    "Summary",
				Content: []string{"one", "two"},
			},
			{
				Name: "Experience",
				Subsections: []Subsection{
					{Name: "Acme", Lines: []string{"a", "b", "c"}},
				},
			},
		},
	}

	assert.Equal(t, 5, doc.CountLines())
}
