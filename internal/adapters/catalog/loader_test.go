package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/voteportal/internal/core/domain"
)

const sampleCatalog = `
categories:
  - id: council
    title: City Council
    description: Pick one council member
    options:
      - id: c-1
        name: Priya Nair
        party: Independent
      - id: c-2
        name: Tom Becker
  - id: measure-a
    title: Measure A
    options:
      - id: "yes"
        name: "Yes"
      - id: "no"
        name: "No"
`

func TestDefault(t *testing.T) {
	c := Default()

	require.Equal(t, 3, c.Len())
	categories := c.Categories()
	assert.Equal(t, "president", categories[0].ID)
	assert.Len(t, categories[0].Options, 4)
	assert.Equal(t, "mayor", categories[1].ID)
	assert.Len(t, categories[1].Options, 3)
	assert.Equal(t, "proposition", categories[2].ID)
	assert.Len(t, categories[2].Options, 2)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o600))

	c, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 2, c.Len())
	council, ok := c.Category("council")
	require.True(t, ok)
	assert.Equal(t, "City Council", council.Title)
	assert.Equal(t, domain.VoteOption{ID: "c-1", Name: "Priya Nair", Party: "Independent"}, council.Options[0])
	assert.NoError(t, c.Validate("measure-a", "yes"))
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Categories(), c.Categories())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read catalog file")

	_, err = Parse([]byte("categories: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse catalog file")

	_, err = Parse([]byte("categories:\n  - id: empty\n    title: Empty\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)

	_, err = Parse([]byte("categories: []\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
}

func TestShippedCatalogFile(t *testing.T) {
	c, err := Load("../../../configs/catalog.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default().Categories(), c.Categories())
}
