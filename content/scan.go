// seehuhn.de/go/psdoc - a library for writing PostScript documents
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package content

import (
	"errors"
	"strings"
)

// Tokens splits PostScript source into executable tokens.
// Comments, string literals (both "(...)" and "<...>" forms) and the
// delimiters "{", "}", "[", "]", "<<", ">>" are not returned.
func Tokens(src string) ([]string, error) {
	var res []string
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case isSpace(c):
			i++
		case c == '%':
			for i < len(src) && src[i] != '\n' && src[i] != '\r' {
				i++
			}
		case c == '(':
			end, err := skipString(src, i)
			if err != nil {
				return nil, err
			}
			i = end
		case strings.HasPrefix(src[i:], "<<") || strings.HasPrefix(src[i:], ">>"):
			i += 2
		case strings.HasPrefix(src[i:], "<~"):
			end := strings.Index(src[i:], "~>")
			if end < 0 {
				return nil, errUnterminated
			}
			i += end + 2
		case c == '<':
			end := strings.IndexByte(src[i:], '>')
			if end < 0 {
				return nil, errUnterminated
			}
			i += end + 1
		case c == '{' || c == '}' || c == '[' || c == ']':
			i++
		case c == '/':
			// literal names are data, not operators
			i++
			for i < len(src) && !isSpace(src[i]) && !isDelim(src[i]) {
				i++
			}
		default:
			start := i
			for i < len(src) && !isSpace(src[i]) && !isDelim(src[i]) {
				i++
			}
			if i == start {
				// a stray delimiter like ")" or ">"
				i++
				continue
			}
			res = append(res, src[start:i])
		}
	}
	return res, nil
}

// CheckBalance scans PostScript source and simulates the graphics state
// stack: every "gsave" token increases the depth, every "grestore" decreases
// it.  The function returns the maximal depth reached.  An error wrapping
// [ErrUnbalanced] is returned if the depth ever becomes negative or if it is
// not zero at the end.
func CheckBalance(src string) (int, error) {
	tokens, err := Tokens(src)
	if err != nil {
		return 0, err
	}
	depth, maxDepth := 0, 0
	for i, tok := range tokens {
		switch OpName(tok) {
		case OpPushGraphicsState:
			depth++
			maxDepth = max(maxDepth, depth)
		case OpPopGraphicsState:
			if depth == 0 {
				return maxDepth, &NestingError{Pos: i}
			}
			depth--
		}
	}
	if depth != 0 {
		return maxDepth, &NestingError{Pos: len(tokens), Depth: depth}
	}
	return maxDepth, nil
}

// skipString returns the index just after the string literal starting at
// src[start], which must be '('.
func skipString(src string, start int) (int, error) {
	level := 0
	for i := start; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case '(':
			level++
		case ')':
			level--
			if level == 0 {
				return i + 1, nil
			}
		}
	}
	return 0, errUnterminated
}

func isSpace(c byte) bool {
	switch c {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

func isDelim(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

var errUnterminated = errors.New("unterminated string literal")
