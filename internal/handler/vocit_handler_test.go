package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want []string
	}{
		{"vide", "", nil},
		{"un tag", "loi", []string{"loi"}},
		{"plusieurs tags", "loi,écologie,2025", []string{"loi", "écologie", "2025"}},
		{"espaces autour", " loi , écologie ", []string{"loi", "écologie"}},
		{"virgules orphelines", ",loi,,", []string{"loi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTags(tt.csv))
		})
	}
}
