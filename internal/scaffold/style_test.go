package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveStyles(t *testing.T) {
	tests := []struct {
		name  string
		flags map[Style]bool
		want  []Style
	}{
		{"no flags defaults to graphql", nil, []Style{StyleGraphQL}},
		{"empty flags defaults to graphql", map[Style]bool{}, []Style{StyleGraphQL}},
		{"explicitly disabled defaults to graphql", map[Style]bool{StyleGraphQL: false}, []Style{StyleGraphQL}},
		{"rest only", map[Style]bool{StyleREST: true}, []Style{StyleREST}},
		{"both enabled", map[Style]bool{StyleGraphQL: true, StyleREST: true}, []Style{StyleGraphQL, StyleREST}},
		{"unrecognized keys are ignored", map[Style]bool{"soap": true}, []Style{StyleGraphQL}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveStyles(tt.flags)
			assert.Equal(t, tt.want, got.List())
		})
	}
}

func TestStyleSet_HasAndString(t *testing.T) {
	s := ResolveStyles(map[Style]bool{StyleGraphQL: true, StyleREST: true})

	assert.True(t, s.Has(StyleGraphQL))
	assert.True(t, s.Has(StyleREST))
	assert.Equal(t, "graphql, rest", s.String())

	s = ResolveStyles(nil)
	assert.True(t, s.Has(StyleGraphQL))
	assert.False(t, s.Has(StyleREST))
	assert.Equal(t, "graphql", s.String())
}

func TestResolveStyles_Deterministic(t *testing.T) {
	flags := map[Style]bool{StyleREST: true, StyleGraphQL: true}
	first := ResolveStyles(flags)
	second := ResolveStyles(flags)
	assert.Equal(t, first.List(), second.List())
}
