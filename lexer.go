// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package json5

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/creachadair/json5/internal/ident"
)

// A Lexer reads JSON5 tokens rune by rune from an input stream. It tracks the
// absolute offset, line, and column of the input consumed so far, supports a
// one-rune push-back, and accumulates comment text for the parser to claim.
type Lexer struct {
	r *bufio.Reader
	o Options

	pos  Position // position of the last rune read
	prev Position // position before the last rune read
	save Position // saved position while pushed back
	cur  rune     // the last rune read
	back bool     // the last rune read is pushed back

	pending []string // comment paragraphs not yet claimed
}

// NewLexer constructs a lexer that consumes input from r, governed by o.
func NewLexer(r io.Reader, o Options) *Lexer {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Lexer{r: br, o: o, pos: Position{Offset: -1, Line: 1}}
}

// Position returns the position of the most recently read rune.
func (s *Lexer) Position() Position { return s.pos }

// SyntaxErrorf constructs a [*SyntaxError] at the current input position.
func (s *Lexer) SyntaxErrorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: s.pos, Message: fmt.Sprintf(format, args...)}
}

// fail wraps err into a [*SyntaxError] at the current input position.
func (s *Lexer) fail(err error) *SyntaxError {
	return &SyntaxError{Pos: s.pos, Message: err.Error(), err: err}
}

// next returns the next rune of the input. At the end of input it reports
// io.EOF. Line and column accounting treats "\r\n" as a single line break.
func (s *Lexer) next() (rune, error) {
	if s.back {
		s.back = false
		s.pos = s.save
		return s.cur, nil
	}
	ch, _, err := s.r.ReadRune()
	if err != nil {
		return 0, err
	}
	s.prev = s.pos
	s.pos.Offset++
	if isLineTerminator(ch) {
		if ch != '\n' || s.cur != '\r' {
			s.pos.Line++
		}
		s.pos.Column = 0
	} else {
		s.pos.Column++
	}
	s.cur = ch
	return ch, nil
}

// Back pushes the most recently read rune back onto the input, so that the
// next read returns it again. Only a single rune of push-back is tracked.
func (s *Lexer) Back() {
	if !s.back {
		s.back = true
		s.save, s.pos = s.pos, s.prev
	}
}

// NextClean returns the next rune that is not whitespace and not part of a
// comment. At the end of input it returns the sentinel 0 with no error.
// Comments encountered along the way are captured for [Lexer.ConsumeComment]
// when comment parsing is enabled.
func (s *Lexer) NextClean() (rune, error) {
	for {
		ch, err := s.next()
		if err == io.EOF {
			return 0, nil
		} else if err != nil {
			return 0, s.fail(err)
		}
		if ch == '/' {
			if err := s.scanComment(); err != nil {
				return 0, err
			}
			continue
		}
		if isWhitespace(ch) {
			continue
		}
		return ch, nil
	}
}

// scanComment consumes a comment whose leading "/" has been read, recording
// its marker-free text when comment parsing is enabled.
func (s *Lexer) scanComment() error {
	ch, err := s.next()
	if err != nil {
		return s.SyntaxErrorf("expected comment")
	}
	var text string
	switch ch {
	case '/':
		var sb strings.Builder
		for {
			ch, err := s.next()
			if err == io.EOF {
				break
			} else if err != nil {
				return s.fail(err)
			}
			if isLineTerminator(ch) {
				break
			}
			sb.WriteRune(ch)
		}
		text = strings.TrimSpace(sb.String())

	case '*':
		var sb strings.Builder
		var star bool
		for {
			ch, err := s.next()
			if err != nil {
				return s.SyntaxErrorf("unterminated block comment")
			}
			if star && ch == '/' {
				break
			}
			if star {
				sb.WriteRune('*')
			}
			if star = ch == '*'; !star {
				sb.WriteRune(ch)
			}
		}
		text = outdentComment(sb.String())

	default:
		s.Back()
		return s.SyntaxErrorf("expected comment")
	}
	if s.o.ParseComments {
		s.pending = append(s.pending, text)
	}
	return nil
}

// outdentComment normalizes the body of a block comment: each line is
// trimmed of surrounding whitespace, and blank lines at either end are
// dropped.
func outdentComment(body string) string {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// ConsumeComment returns the comment text accumulated since the previous
// call, with multiple comments joined by newlines, and resets the
// accumulator. It returns "" if no comment is pending.
func (s *Lexer) ConsumeComment() string {
	if len(s.pending) == 0 {
		return ""
	}
	text := strings.Join(s.pending, "\n")
	s.pending = s.pending[:0]
	return text
}

// NextMemberName returns the next object member name: either a quoted string
// or an unquoted ECMAScript identifier, possibly containing Unicode escapes.
func (s *Lexer) NextMemberName() (string, error) {
	ch, err := s.NextClean()
	if err != nil {
		return "", err
	}
	switch ch {
	case 0:
		return "", s.SyntaxErrorf("unexpected end of input")
	case '"', '\'':
		return s.nextString(ch)
	}

	var sb strings.Builder
	for {
		r := ch
		if ch == '\\' {
			r, err = s.readNameEscape()
			if err != nil {
				return "", err
			}
		}
		if ok := ident.IsStart(r) || sb.Len() > 0 && ident.IsPart(r); !ok {
			if ch == '\\' {
				return "", s.SyntaxErrorf("invalid identifier character %q", r)
			}
			s.Back()
			break
		}
		sb.WriteRune(r)

		ch, err = s.next()
		if err == io.EOF {
			break
		} else if err != nil {
			return "", s.fail(err)
		}
	}
	if sb.Len() == 0 {
		return "", s.SyntaxErrorf("expected member name")
	}
	return sb.String(), nil
}

// readNameEscape decodes a Unicode escape inside an unquoted member name,
// whose leading backslash has been read.
func (s *Lexer) readNameEscape() (rune, error) {
	ch, err := s.next()
	if err != nil {
		return 0, s.SyntaxErrorf("unterminated escape sequence")
	}
	switch ch {
	case 'u':
		return s.readHex(4)
	case 'U':
		if !s.o.AllowLongUnicodeEscapes {
			return 0, s.fail(fmt.Errorf("long unicode escapes are not allowed: %w", ErrDisabled))
		}
		r, err := s.readHex(8)
		if err != nil {
			return 0, err
		} else if r > unicode.MaxRune {
			return 0, s.SyntaxErrorf("escape value out of range")
		}
		return r, nil
	}
	return 0, s.SyntaxErrorf("invalid escape %q in member name", ch)
}

// readHex decodes exactly n hexadecimal digits into a rune value.
func (s *Lexer) readHex(n int) (rune, error) {
	var v rune
	for range n {
		ch, err := s.next()
		if err != nil {
			return 0, s.SyntaxErrorf("unterminated escape sequence")
		}
		d := digitVal(byte(ch))
		if ch > 'f' || d < 0 || d > 15 {
			return 0, s.SyntaxErrorf("invalid hex digit %q in escape", ch)
		}
		v = v<<4 | rune(d)
	}
	return v, nil
}

// nextString decodes a string literal whose opening quote mark has been read,
// resolving escape sequences and validating UTF-16 surrogate pairs unless the
// options disable that.
func (s *Lexer) nextString(open rune) (string, error) {
	var sb strings.Builder
	var hi rune // pending high surrogate from an escape, 0 if none

	// flush resolves a pending high surrogate that was not completed by a low
	// surrogate escape: an error under strict pairing, U+FFFD otherwise.
	flush := func() error {
		if hi == 0 {
			return nil
		}
		if !s.o.AllowInvalidSurrogates {
			return s.SyntaxErrorf("unpaired surrogate escape")
		}
		sb.WriteRune(utf8.RuneError)
		hi = 0
		return nil
	}
	emit := func(r rune, escaped bool) error {
		if escaped && utf16.IsSurrogate(r) {
			isLow := r >= 0xDC00
			switch {
			case hi != 0 && isLow:
				sb.WriteRune(utf16.DecodeRune(hi, r))
				hi = 0
			case isLow:
				if !s.o.AllowInvalidSurrogates {
					return s.SyntaxErrorf("unpaired surrogate escape")
				}
				sb.WriteRune(utf8.RuneError)
			default:
				if err := flush(); err != nil {
					return err
				}
				hi = r
			}
			return nil
		}
		if err := flush(); err != nil {
			return err
		}
		sb.WriteRune(r)
		return nil
	}

	for {
		ch, err := s.next()
		if err != nil {
			return "", s.SyntaxErrorf("unterminated string")
		}
		if ch == open {
			if err := flush(); err != nil {
				return "", err
			}
			return sb.String(), nil
		}
		if isLineTerminator(ch) {
			return "", s.SyntaxErrorf("unterminated string")
		}
		if ch != '\\' {
			if err := emit(ch, false); err != nil {
				return "", err
			}
			continue
		}

		ch, err = s.next()
		if err != nil {
			return "", s.SyntaxErrorf("unterminated escape sequence")
		}
		switch ch {
		case 'b':
			err = emit('\b', false)
		case 'f':
			err = emit('\f', false)
		case 'n':
			err = emit('\n', false)
		case 'r':
			err = emit('\r', false)
		case 't':
			err = emit('\t', false)
		case 'v':
			err = emit('\v', false)

		case 'x':
			r, herr := s.readHex(2)
			if herr != nil {
				return "", herr
			}
			err = emit(r, true)
		case 'u':
			r, herr := s.readHex(4)
			if herr != nil {
				return "", herr
			}
			err = emit(r, true)
		case 'U':
			if !s.o.AllowLongUnicodeEscapes {
				return "", s.fail(fmt.Errorf("long unicode escapes are not allowed: %w", ErrDisabled))
			}
			r, herr := s.readHex(8)
			if herr != nil {
				return "", herr
			} else if r > unicode.MaxRune {
				return "", s.SyntaxErrorf("escape value out of range")
			}
			err = emit(r, true)

		case '0':
			if nx, nerr := s.next(); nerr == nil {
				if nx >= '0' && nx <= '9' {
					return "", s.SyntaxErrorf("escape sequence \\0 may not be followed by a digit")
				}
				s.Back()
			}
			err = emit(0, false)
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return "", s.SyntaxErrorf("invalid escape sequence \\%c", ch)

		case '\n', 0x2028, 0x2029:
			// Line continuation: the escaped terminator is dropped.
		case '\r':
			if nx, nerr := s.next(); nerr == nil && nx != '\n' {
				s.Back()
			}

		default:
			err = emit(ch, false)
		}
		if err != nil {
			return "", err
		}
	}
}

// NextValue reads the next non-structural value from the input: a string, a
// Boolean, null, or a number. The parser dispatches objects and arrays before
// calling this.
func (s *Lexer) NextValue() (Element, error) {
	ch, err := s.NextClean()
	if err != nil {
		return nil, err
	}
	switch ch {
	case 0:
		return nil, s.SyntaxErrorf("unexpected end of input")
	case '"', '\'':
		text, err := s.nextString(ch)
		if err != nil {
			return nil, err
		}
		return NewString(text), nil
	}

	// Accumulate a literal run up to a delimiter or whitespace.
	var sb strings.Builder
	sb.WriteRune(ch)
	for {
		ch, err := s.next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, s.fail(err)
		}
		if isWhitespace(ch) {
			break
		}
		if strings.ContainsRune(",]}/:", ch) {
			s.Back()
			break
		}
		sb.WriteRune(ch)
	}

	text := sb.String()
	switch text {
	case "null":
		return NewNull(), nil
	case "true":
		return NewBool(true), nil
	case "false":
		return NewBool(false), nil
	}
	n, err := ParseNumber(text, s.o)
	if err != nil {
		var nerr *NumberError
		if errors.As(err, &nerr) && nerr.Reason == "not a numeric literal" {
			return nil, s.SyntaxErrorf("unexpected literal %q", text)
		}
		return nil, s.fail(err)
	}
	return NewNumber(n), nil
}

// isWhitespace reports whether r is JSON5 whitespace: tab, the line
// terminators, vertical tab, form feed, space, no-break space, byte order
// mark, or a rune in the space separator category. Notably the set excludes
// U+0085 (next line).
func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\v', '\f', ' ', 0x00A0, 0xFEFF:
		return true
	}
	return isLineTerminator(r) || unicode.Is(unicode.Zs, r)
}

// isLineTerminator reports whether r ends a line.
func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == 0x2028 || r == 0x2029
}
