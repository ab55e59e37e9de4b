// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package json5_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/json5"
)

func TestLexerBasic(t *testing.T) {
	s := json5.NewLexer(strings.NewReader("  \t\n a  \uFEFF b "), json5.Options{})

	ch, err := s.NextClean()
	if err != nil || ch != 'a' {
		t.Fatalf("NextClean: got %q, %v; want 'a', nil", ch, err)
	}
	s.Back()
	if ch, err := s.NextClean(); err != nil || ch != 'a' {
		t.Fatalf("NextClean after Back: got %q, %v; want 'a', nil", ch, err)
	}
	if ch, err := s.NextClean(); err != nil || ch != 'b' {
		t.Fatalf("NextClean: got %q, %v; want 'b', nil", ch, err)
	}
	if ch, err := s.NextClean(); err != nil || ch != 0 {
		t.Fatalf("NextClean at EOF: got %q, %v; want 0, nil", ch, err)
	}
}

func TestWhitespace(t *testing.T) {
	// Tab, line terminators, NBSP, BOM, and space separators are skipped.
	for _, input := range []string{
		"\t{\v}\f", "\u00a0{\r\n}\u2028", "\uFEFF{}", "\u2003{\u3000}",
	} {
		if _, err := json5.ParseString(input, json5.Options{}); err != nil {
			t.Errorf("ParseString(%#q): unexpected error: %v", input, err)
		}
	}

	// U+0085 is not JSON5 whitespace.
	if e, err := json5.ParseString("\u0085{}", json5.Options{}); err == nil {
		t.Errorf("ParseString with NEL: got %v, want error", e)
	}
}

func TestLexerComments(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"// hi\nx", "hi"},
		{"/* hi */x", "hi"},
		{"// a\n// b\nx", "a\nb"},
		{"/*\n  first\n  second\n*/x", "first\nsecond"},
		{"/* inline */ // tail\nx", "inline\ntail"},
		{"x", ""},
	}
	for _, test := range tests {
		s := json5.NewLexer(strings.NewReader(test.input), json5.Options{ParseComments: true})
		if ch, err := s.NextClean(); err != nil || ch != 'x' {
			t.Fatalf("NextClean(%q): got %q, %v; want 'x', nil", test.input, ch, err)
		}
		if got := s.ConsumeComment(); got != test.want {
			t.Errorf("ConsumeComment(%q): got %q, want %q", test.input, got, test.want)
		}
		if got := s.ConsumeComment(); got != "" {
			t.Errorf("ConsumeComment(%q): second call got %q, want %q", test.input, got, "")
		}
	}

	t.Run("Disabled", func(t *testing.T) {
		s := json5.NewLexer(strings.NewReader("// hi\nx"), json5.Options{})
		if ch, err := s.NextClean(); err != nil || ch != 'x' {
			t.Fatalf("NextClean: got %q, %v; want 'x', nil", ch, err)
		}
		if got := s.ConsumeComment(); got != "" {
			t.Errorf("ConsumeComment: got %q, want empty", got)
		}
	})
	t.Run("Unterminated", func(t *testing.T) {
		s := json5.NewLexer(strings.NewReader("/* no end"), json5.Options{})
		if ch, err := s.NextClean(); err == nil {
			t.Errorf("NextClean: got %q, want error", ch)
		}
	})
	t.Run("BareSlash", func(t *testing.T) {
		s := json5.NewLexer(strings.NewReader("/x"), json5.Options{})
		if ch, err := s.NextClean(); err == nil {
			t.Errorf("NextClean: got %q, want error", ch)
		}
	})
}

func TestStringEscapes(t *testing.T) {
	opts := json5.Options{AllowLongUnicodeEscapes: true, AllowInvalidSurrogates: true}
	tests := []struct {
		input string
		want  string
	}{
		{`"plain"`, "plain"},
		{`'single'`, "single"},
		{`"a\nb\tc"`, "a\nb\tc"},
		{`"\b\f\r\v"`, "\b\f\r\v"},
		{`"\x41\x7a"`, "Az"},
		{`"A"`, "A"},
		{`"\U0001F600"`, "\U0001F600"},
		{`"\ud83d\ude00"`, "\U0001F600"}, // surrogate pair escape
		{`"😀"`, "\U0001F600"},
		{`"q\0r"`, "q\x00r"},
		{`"\q"`, "q"}, // escaping an ordinary character yields itself
		{`'it\'s'`, "it's"},
		{`"she said \"hi\""`, `she said "hi"`},
		{`"a\/b"`, "a/b"},
		{"\"a\\\nb\"", "ab"},     // line continuation
		{"\"a\\\r\nb\"", "ab"},   // line continuation over CRLF
		{`"\ud800x"`, "�x"}, // unpaired surrogate decodes to U+FFFD
		{`"\ud800"`, "�"},
		{`"\ude00"`, "�"},
		{"\"café\"", "café"},
	}
	for _, test := range tests {
		e, err := json5.ParseString(test.input, opts)
		if err != nil {
			t.Errorf("ParseString(%#q): unexpected error: %v", test.input, err)
			continue
		}
		p, err := json5.AsPrimitive(e)
		if err != nil {
			t.Fatalf("ParseString(%#q): %v", test.input, err)
		}
		if got := p.Text(); got != test.want {
			t.Errorf("ParseString(%#q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestStringErrors(t *testing.T) {
	tests := []struct {
		input string
		opts  json5.Options
	}{
		{`"no end`, json5.Options{}},
		{"\"line\nbreak\"", json5.Options{}},
		{`"\x4"`, json5.Options{}},
		{`"\uZZZZ"`, json5.Options{}},
		{`"\07"`, json5.Options{}},
		{`"\5"`, json5.Options{}},
		{`"\U0001F600"`, json5.Options{}},                                // gated
		{`"\UFFFFFFFF"`, json5.Options{AllowLongUnicodeEscapes: true}},   // out of range
		{`"\ud800x"`, json5.Options{}},                                   // strict pairing
		{`"\ud800A"`, json5.Options{}},                              // high not followed by low
		{`"\ude00"`, json5.Options{}},                                    // lone low
		{`"ok\`, json5.Options{}},                                        // escape at EOF
	}
	for _, test := range tests {
		e, err := json5.ParseString(test.input, test.opts)
		if err == nil {
			t.Errorf("ParseString(%#q): got %v, want error", test.input, e)
			continue
		}
		var serr *json5.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("ParseString(%#q): error %v is not a *SyntaxError", test.input, err)
		}
	}

	_, err := json5.ParseString(`"\U0001F600"`, json5.Options{})
	if !errors.Is(err, json5.ErrDisabled) {
		t.Errorf("long escape while disabled: got %v, want ErrDisabled", err)
	}
}

func TestMemberNames(t *testing.T) {
	opts := json5.Options{}
	tests := []struct {
		input string
		want  string
	}{
		{`{foo: 1}`, "foo"},
		{`{$_ab9: 1}`, "$_ab9"},
		{`{"quoted key": 1}`, "quoted key"},
		{`{'single': 1}`, "single"},
		{`{abc: 1}`, "abc"},
		{`{café: 1}`, "café"},
	}
	for _, test := range tests {
		e, err := json5.ParseString(test.input, opts)
		if err != nil {
			t.Errorf("ParseString(%#q): unexpected error: %v", test.input, err)
			continue
		}
		o, err := json5.AsObject(e)
		if err != nil {
			t.Fatalf("ParseString(%#q): %v", test.input, err)
		}
		if !o.Has(test.want) {
			t.Errorf("ParseString(%#q): missing key %q (have %q)", test.input, test.want, o.Keys())
		}
	}

	for _, bad := range []string{`{9lives: 1}`, `{: 1}`, `{1x: 1}`, `{a b: 1}`} {
		if e, err := json5.ParseString(bad, opts); err == nil {
			t.Errorf("ParseString(%#q): got %v, want error", bad, e)
		}
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := json5.ParseString("{\n  bad value\n}", json5.Options{})
	if err == nil {
		t.Fatal("ParseString: got nil, want error")
	}
	var serr *json5.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("error %v is not a *SyntaxError", err)
	}
	if serr.Pos.Line != 2 {
		t.Errorf("error line: got %d, want 2", serr.Pos.Line)
	}
	if !strings.Contains(err.Error(), "at index") {
		t.Errorf("error %q does not mention its position", err)
	}
}
