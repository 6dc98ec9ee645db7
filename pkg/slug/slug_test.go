package slug_test

import (
	"testing"

	"github.com/Iqura-Alam/HireUp/pkg/slug"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	assert.Equal(t, "machine-learning", slug.Make("Machine Learning"))
	assert.Equal(t, "machine-learning", slug.Make("  machine   learning  "))
	assert.Equal(t, "node.js", slug.Make("Node.js"))
	assert.Equal(t, "go", slug.Make("Go"))
	assert.Equal(t, "", slug.Make("   "))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, slug.Normalize("Node.js"), slug.Normalize("  node.js "))
	assert.Equal(t, "sql", slug.Normalize("SQL"))
}
