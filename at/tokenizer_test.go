package at_test

import (
	"bufio"
	"strings"
	"testing"

	"i4.energy/across/atdev/at"
)

func TestSplitter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "CRLF terminated commands",
			input:    "AT\r\nAT+GMR\r\nAT+ECHO=1\r\n",
			expected: []string{"AT", "AT+GMR", "AT+ECHO=1"},
		},
		{
			name:     "CR only terminal",
			input:    "AT\rAT+GMR\r",
			expected: []string{"AT", "AT+GMR"},
		},
		{
			name:     "LF only terminal",
			input:    "AT\nAT+GMR\n",
			expected: []string{"AT", "AT+GMR"},
		},
		{
			name:     "Mixed terminators",
			input:    "AT\rAT+A?\r\nAT+B=?\n",
			expected: []string{"AT", "AT+A?", "AT+B=?"},
		},
		{
			name:     "Blank line between commands",
			input:    "AT\r\n\r\nAT+GMR\r\n",
			expected: []string{"AT", "", "AT+GMR"},
		},
		{
			name:     "LF after LF yields empty token",
			input:    "AT\n\nOK?\n",
			expected: []string{"AT", "", "OK?"},
		},
		{
			name:     "Unterminated command at EOF",
			input:    "AT+CSQ",
			expected: []string{"AT+CSQ"},
		},
		{
			name:     "Terminated then unterminated at EOF",
			input:    "AT\r\nAT+GMR",
			expected: []string{"AT", "AT+GMR"},
		},
		{
			name:     "Trailing CR at EOF",
			input:    "AT+GMR\r",
			expected: []string{"AT+GMR"},
		},
		{
			name:     "Set command with commas survives framing",
			input:    "AT+CFG=1,,3\r\n",
			expected: []string{"AT+CFG=1,,3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokens []string
			scanner := bufio.NewScanner(strings.NewReader(tt.input))
			scanner.Split(at.Splitter)

			for scanner.Scan() {
				tokens = append(tokens, scanner.Text())
			}

			if err := scanner.Err(); err != nil {
				t.Fatalf("Scanner error: %v", err)
			}

			if len(tokens) != len(tt.expected) {
				t.Fatalf("Expected %d tokens, got %d.\nExpected: %v\nGot: %v",
					len(tt.expected), len(tokens), tt.expected, tokens)
			}

			for i, expected := range tt.expected {
				if tokens[i] != expected {
					t.Errorf("Token %d: expected %q, got %q", i, expected, tokens[i])
				}
			}
		})
	}
}
