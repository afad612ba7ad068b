package textutil

import "testing"

func TestFileStem(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "2025 Summer Mixtape", want: "2025_Summer_Mixtape"},
		{in: `What? A "Mix" <vol:1>`, want: "What_A_Mix_vol1"},
		{in: "  padded  ", want: "padded"},
		{in: "a/b\\c|d*e", want: "abcde"},
	}
	for _, tc := range cases {
		if got := FileStem(tc.in); got != tc.want {
			t.Fatalf("FileStem(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}
