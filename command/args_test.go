package command_test

import (
	"testing"

	"i4.energy/across/atdev/command"
)

func TestArgsGet(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		index  int
		want   string
		wantOK bool
	}{
		{name: "First field", raw: "1,2,3", index: 0, want: "1", wantOK: true},
		{name: "Middle field", raw: "1,2,3", index: 1, want: "2", wantOK: true},
		{name: "Last field", raw: "1,2,3", index: 2, want: "3", wantOK: true},
		{name: "Past the last field", raw: "1,2,3", index: 3, wantOK: false},
		{name: "Negative index", raw: "1,2,3", index: -1, wantOK: false},
		{name: "Empty field in the middle", raw: "a,,c", index: 1, want: "", wantOK: true},
		{name: "Field after empty field", raw: "a,,c", index: 2, want: "c", wantOK: true},
		{name: "Trailing comma yields empty field", raw: "a,", index: 1, want: "", wantOK: true},
		{name: "Trailing comma has no third field", raw: "a,", index: 2, wantOK: false},
		{name: "Empty raw has one empty field", raw: "", index: 0, want: "", wantOK: true},
		{name: "Empty raw has no second field", raw: "", index: 1, wantOK: false},
		{name: "No whitespace trimming", raw: " 42, 7", index: 0, want: " 42", wantOK: true},
		{name: "Equals signs stay in the field", raw: "1=2", index: 0, want: "1=2", wantOK: true},
		{name: "Single comma is two empty fields", raw: ",", index: 1, want: "", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := command.Args{Raw: tt.raw}
			got, ok := args.Get(tt.index)
			if ok != tt.wantOK {
				t.Fatalf("Get(%d) ok = %v, want %v", tt.index, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Get(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}

func TestArgsCount(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{raw: "", want: 1},
		{raw: "a", want: 1},
		{raw: "a,b", want: 2},
		{raw: "a,,c", want: 3},
		{raw: "a,", want: 2},
		{raw: ",", want: 2},
	}

	for _, tt := range tests {
		if got := (command.Args{Raw: tt.raw}).Count(); got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
