package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRecord(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "a,b,c,d", []string{"a", "b", "c", "d"}},
		{"quoted comma protected", `Spotify,2021,5,"great, really"`, []string{"Spotify", "2021", "5", `"great, really"`}},
		{"quoted field in the middle", `x,"a,b",c`, []string{"x", `"a,b"`, "c"}},
		{"escaped quotes stay balanced", `x,"say ""hi"", ok",y`, []string{"x", `"say ""hi"", ok"`, "y"}},
		{"leading empty field kept", ",a,b", []string{"", "a", "b"}},
		{"interior empty field kept", "a,,b", []string{"a", "", "b"}},
		{"trailing empty fields dropped", "a,b,,", []string{"a", "b"}},
		{"empty line", "", []string{}},
		{"only commas", ",,,", []string{}},
		{"no commas", "single", []string{"single"}},
		{"unbalanced quote protects commas before it", `a,b"c,d`, []string{`a,b"c`, "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitRecord(tt.line))
		})
	}
}
