package oracle

import "testing"

func TestJSONOracle(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: `{"a":1}`, want: true},
		{in: `[1,2,3]`, want: true},
		{in: `"hi"`, want: true},
		{in: `1 2`, want: false},
		{in: `{"a":}`, want: false},
		{in: ``, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := JSON.Query(tt.in); got != tt.want {
				t.Errorf("JSON.Query(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
