package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree(t *testing.T) {
	files := map[string]string{
		"README.md":          "Project overview",
		"mix.exs":            "Dependencies and build",
		"lib/shop/router.ex": "Request routing",
		"config/config.exs":  "Compile-time configuration",
	}

	out := RenderFileTree("shop", files)

	assert.Contains(t, out, "shop/")
	assert.Contains(t, out, "README.md")
	assert.Contains(t, out, "router.ex")
	assert.Contains(t, out, treeLast)
	assert.Contains(t, out, treeEdge)

	// Directories render before files at each level.
	lines := strings.Split(out, "\n")
	configIdx, readmeIdx := -1, -1
	for i, line := range lines {
		if strings.Contains(line, "config/") {
			configIdx = i
		}
		if strings.Contains(line, "README.md") {
			readmeIdx = i
		}
	}
	assert.Greater(t, readmeIdx, configIdx)
}

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Equal(t, "", RenderFileTree("shop", nil))
}

func TestRenderFileTree_Deterministic(t *testing.T) {
	files := map[string]string{
		"a.txt":     "",
		"b.txt":     "",
		"dir/c.txt": "",
	}

	first := RenderFileTree("root", files)
	second := RenderFileTree("root", files)
	assert.Equal(t, first, second)
}
