package merge

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrMalformedConflict git вывел маркеры конфликта без полной структуры
var ErrMalformedConflict = errors.New("malformed conflict markers")

var (
	markStart = []byte("<<<<<<<")
	markBase  = []byte("|||||||")
	markMid   = []byte("=======")
	markEnd   = []byte(">>>>>>>")
)

type markerState int

const (
	inText markerState = iota
	inYours
	inBase
	inTheirs
)

// countConflicts counts diff3 conflict blocks in merge output.
func countConflicts(data []byte) (int, error) {
	state := inText
	conflicts := 0

	for _, line := range splitLinesKeepEOL(data) {
		switch state {
		case inText:
			if bytes.HasPrefix(line, markStart) {
				state = inYours
			}
		case inYours:
			switch {
			case bytes.HasPrefix(line, markBase):
				state = inBase
			case bytes.HasPrefix(line, markMid):
				state = inTheirs
			}
		case inBase:
			if bytes.HasPrefix(line, markMid) {
				state = inTheirs
			}
		case inTheirs:
			if bytes.HasPrefix(line, markEnd) {
				conflicts++
				state = inText
			}
		}
	}

	if state != inText {
		return 0, fmt.Errorf("%w: unterminated conflict block", ErrMalformedConflict)
	}
	return conflicts, nil
}

func splitLinesKeepEOL(b []byte) [][]byte {
	if len(b) == 0 {
		return nil
	}

	var out [][]byte
	start := 0
	for i := 0; i < len(b); i++ {
		if b[i] == '\n' {
			out = append(out, b[start:i+1])
			start = i + 1
		}
	}
	if start < len(b) {
		out = append(out, b[start:])
	}
	return out
}
