package sqlfill

import "testing"

func TestParseParams(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[int]Binding
	}{
		{
			name: "two bindings",
			raw:  "[String:1:hello][Int:2:42]",
			want: map[int]Binding{
				1: {Type: "String", Position: 1, Raw: "hello"},
				2: {Type: "Int", Position: 2, Raw: "42"},
			},
		},
		{
			name: "value may contain colons",
			raw:  "[String:1:2024-01-01 10:30:00]",
			want: map[int]Binding{
				1: {Type: "String", Position: 1, Raw: "2024-01-01 10:30:00"},
			},
		},
		{
			name: "malformed bracket dropped, siblings kept",
			raw:  "[String:1:ok][garbage][Int:2:5]",
			want: map[int]Binding{
				1: {Type: "String", Position: 1, Raw: "ok"},
				2: {Type: "Int", Position: 2, Raw: "5"},
			},
		},
		{
			name: "non-integer position dropped",
			raw:  "[String:x:oops][Int:2:5]",
			want: map[int]Binding{
				2: {Type: "Int", Position: 2, Raw: "5"},
			},
		},
		{
			name: "duplicate position keeps last occurrence",
			raw:  "[String:1:first][String:1:second]",
			want: map[int]Binding{
				1: {Type: "String", Position: 1, Raw: "second"},
			},
		},
		{
			name: "out-of-order positions",
			raw:  "[Int:3:c][Int:1:a]",
			want: map[int]Binding{
				1: {Type: "Int", Position: 1, Raw: "a"},
				3: {Type: "Int", Position: 3, Raw: "c"},
			},
		},
		{
			name: "empty input",
			raw:  "",
			want: map[int]Binding{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseParams(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d bindings, want %d", len(got), len(tt.want))
			}
			for pos, want := range tt.want {
				if got[pos] != want {
					t.Errorf("binding[%d] = %+v, want %+v", pos, got[pos], want)
				}
			}
		})
	}
}

func TestParamSetPositions(t *testing.T) {
	set := ParseParams("[Int:3:c][Int:1:a][Int:2:b]")
	got := set.Positions()
	want := []int{1, 2, 3}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("Positions() = %v, want %v", got, want)
		}
	}
}
