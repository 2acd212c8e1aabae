package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode_String_RendersAsciiTree(t *testing.T) {
	assert := assert.New(t)

	n := NewNonTerminal("S", []*Node{
		NewNonTerminal("C", []*Node{NewTerminal("c"), NewTerminal("d")}),
		NewTerminal("d"),
	})

	rendered := n.String()
	assert.True(strings.HasPrefix(rendered, "S\n"))
	assert.Contains(rendered, "├── C")
	assert.Contains(rendered, "└── d")
}

func TestNode_ToMap(t *testing.T) {
	assert := assert.New(t)

	n := NewNonTerminal("S", []*Node{NewTerminal("d")})
	m := n.ToMap()

	assert.Equal("S", m["label"])
	assert.Equal(false, m["terminal"])

	children := m["children"].([]map[string]any)
	if assert.Len(children, 1) {
		assert.Equal("d", children[0]["label"])
		assert.Equal(true, children[0]["terminal"])
	}
}
