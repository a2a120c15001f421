package at

import (
	"bufio"
	"bytes"
)

// Splitter frames incoming AT command lines. It uses the signature of
// bufio.SplitFunc so it can be used directly with bufio.Scanner.
//
// Terminals differ in how they end a line: some send CR, some LF, some
// CRLF. Splitter accepts all three, treating a lone CR or LF as a
// terminator and swallowing the LF of a CRLF pair. Blank tokens from
// consecutive terminators are returned as empty strings; callers skip
// them.
//
// The atEOF parameter indicates whether any more data will be available.
// When true, any remaining unterminated data is returned as the final
// token.
func Splitter(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		advance = i + 1
		if data[i] == '\r' {
			if i+1 < len(data) && data[i+1] == '\n' {
				advance++
			} else if i+1 == len(data) && !atEOF {
				// The CR may be the first half of a CRLF pair;
				// wait for the next byte before deciding.
				return 0, nil, nil
			}
		}
		return advance, data[0:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

var _ bufio.SplitFunc = Splitter
