package cli

import (
	"reflect"
	"testing"
)

func TestPositionalNegatives(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"no negatives", []string{"done", "3"}, []string{"done", "3"}},
		{"negative id", []string{"done", "-1"}, []string{"done", "--", "-1"}},
		{"flags before", []string{"-v", "done", "-7"}, []string{"-v", "done", "--", "-7"}},
		{"file flag value", []string{"-f", "-1", "list"}, []string{"-f", "-1", "list"}},
		{"already separated", []string{"done", "--", "-1"}, []string{"done", "--", "-1"}},
		{"shorthand flag", []string{"-v", "list"}, []string{"-v", "list"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := positionalNegatives(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("positionalNegatives(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
