// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package parse

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Primitive contract: inert when Success is already false; on success
// advance InputRemaining past the match and append it to Chomp iff
// chomping; on failure touch nothing but Success.

// Word matches the exact literal expected at the head of the remainder.
func (s State) Word(expected string) State {
	if !s.Success {
		return s
	}
	if expected == "" || !strings.HasPrefix(s.InputRemaining, expected) {
		return s.fail("word")
	}
	s.InputRemaining = s.InputRemaining[len(expected):]
	return s.chomp(expected)
}

// Char matches one extended grapheme cluster. It fails on a single space
// character or end of input, which is what makes it usable for variable
// names delimited by spaces.
func (s State) Char() State {
	if !s.Success {
		return s
	}
	cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s.InputRemaining, -1)
	if cluster == "" || cluster == " " {
		return s.fail("char")
	}
	s.InputRemaining = rest
	return s.chomp(cluster)
}

// AnyChar matches one extended grapheme cluster, space included. It fails
// only at end of input. Used to scan string literal content.
func (s State) AnyChar() State {
	if !s.Success {
		return s
	}
	cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s.InputRemaining, -1)
	if cluster == "" {
		return s.fail("any_char")
	}
	s.InputRemaining = rest
	return s.chomp(cluster)
}

// Digit matches one ASCII decimal digit.
func (s State) Digit() State {
	if !s.Success {
		return s
	}
	if s.InputRemaining == "" || s.InputRemaining[0] < '0' || s.InputRemaining[0] > '9' {
		return s.fail("digit")
	}
	d := s.InputRemaining[:1]
	s.InputRemaining = s.InputRemaining[1:]
	return s.chomp(d)
}

// EOL matches one-or-more "\r\n" sequences or one-or-more "\n" characters.
// The alternatives are mutually exclusive; the first non-empty match wins,
// so "\r\n\n" consumes only the "\r\n".
func (s State) EOL() State {
	if !s.Success {
		return s
	}
	var sep string
	switch {
	case strings.HasPrefix(s.InputRemaining, "\r\n"):
		sep = "\r\n"
	case strings.HasPrefix(s.InputRemaining, "\n"):
		sep = "\n"
	default:
		return s.fail("eol")
	}
	for strings.HasPrefix(s.InputRemaining, sep) {
		s.InputRemaining = s.InputRemaining[len(sep):]
		s = s.chomp(sep)
	}
	return s
}

// EOF succeeds iff the remainder is empty. It never consumes.
func (s State) EOF() State {
	if !s.Success {
		return s
	}
	if s.InputRemaining != "" {
		return s.fail("eof")
	}
	return s
}
