package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpec_Composition(t *testing.T) {
	even := SpecFunc[int](func(n int) bool { return n%2 == 0 })
	positive := SpecFunc[int](func(n int) bool { return n > 0 })

	tests := []struct {
		name string
		spec Specification[int]
		in   int
		want bool
	}{
		{"and both", And[int](even, positive), 4, true},
		{"and one", And[int](even, positive), -4, false},
		{"empty and", And[int](), 7, true},
		{"or one", Or[int](even, positive), 3, true},
		{"or none", Or[int](even, positive), -3, false},
		{"empty or", Or[int](), 7, false},
		{"not", Not[int](even), 3, true},
		{"nested", Not[int](And[int](even, Not[int](positive))), -2, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.IsSatisfiedBy(tt.in))
		})
	}
}
