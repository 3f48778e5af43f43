package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	defs, err := parseCatalog(strings.NewReader(`// comment
T 2,2
.#.
###

I 3,1
####
`))
	require.NoError(t, err)
	require.Len(t, defs, 2)

	assert.Equal(t, "T", defs[0].Name)
	assert.Equal(t, []cell{{1, 0}, {0, 1}, {1, 1}, {2, 1}}, defs[0].Cells)
	assert.Equal(t, 2, defs[0].PivotX)
	assert.Equal(t, 2, defs[0].PivotY)
	assert.Equal(t, 3, defs[1].PivotX)
	assert.Equal(t, 1, defs[1].PivotY)
}

func TestParseCatalogErrors(t *testing.T) {
	tests := map[string]string{
		"cell count":    "T 2,2\n.#.\n##.\n",
		"bad name":      "Q 2,2\n####\n",
		"bad pivot":     "T 2,1\n.#.\n###\n",
		"pivot format":  "T 2\n.#.\n###\n",
		"bad character": "T 2,2\n.x.\n###\n",
		"duplicate":     "I 3,1\n####\n\nI 3,1\n####\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseCatalog(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}

// The checked-in catalog must match what the generator produces.
func TestGeneratedCatalogIsCurrent(t *testing.T) {
	f, err := os.Open("../../piece/shapes.txt")
	require.NoError(t, err)
	defer f.Close()

	defs, err := parseCatalog(f)
	require.NoError(t, err)
	require.Len(t, defs, 7)

	src, err := generate("shapes.txt", "piece", defs)
	require.NoError(t, err)

	current, err := os.ReadFile("../../piece/catalog_gen.go")
	require.NoError(t, err)
	assert.Equal(t, string(current), string(src))
}
