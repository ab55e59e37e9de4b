// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package json5_test

import (
	"testing"
	"time"

	"github.com/creachadair/json5"
)

func mustHex(t *testing.T, s string) *json5.Primitive {
	t.Helper()
	p, err := json5.NewHex(s)
	if err != nil {
		t.Fatalf("NewHex(%q): %v", s, err)
	}
	return p
}

func TestWriteCompact(t *testing.T) {
	arr := json5.NewArray(
		json5.NewBool(true),
		json5.NewInt(123),
		mustHex(t, "0x100"),
		json5.NewString("Lorem ipsum"),
		json5.NewNull(),
		json5.NewObject(),
	)

	got, err := json5.WriteString(arr, json5.Options{QuoteSingle: true})
	if err != nil {
		t.Fatalf("WriteString: unexpected error: %v", err)
	}
	const want = `[true,123,0x100,'Lorem ipsum',null,{}]`
	if got != want {
		t.Errorf("got %#q, want %#q", got, want)
	}

	got, err = json5.WriteString(arr, json5.Options{})
	if err != nil {
		t.Fatalf("WriteString: unexpected error: %v", err)
	}
	const wantDouble = `[true,123,0x100,"Lorem ipsum",null,{}]`
	if got != wantDouble {
		t.Errorf("got %#q, want %#q", got, wantDouble)
	}
}

func TestWritePretty(t *testing.T) {
	o := json5.NewObject()
	o.Set("a", json5.NewInt(1))
	o.Set("b", json5.NewArray(json5.NewBool(true)))

	got, err := json5.WriteString(o, json5.Default())
	if err != nil {
		t.Fatalf("WriteString: unexpected error: %v", err)
	}
	const want = "{\n  \"a\": 1,\n  \"b\": [\n    true,\n  ],\n}"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	t.Run("NoTrailingComma", func(t *testing.T) {
		opts := json5.Default()
		opts.TrailingComma = false
		got, err := json5.WriteString(o, opts)
		if err != nil {
			t.Fatalf("WriteString: unexpected error: %v", err)
		}
		const want = "{\n  \"a\": 1,\n  \"b\": [\n    true\n  ]\n}"
		if got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})
	t.Run("EmptyContainers", func(t *testing.T) {
		for _, test := range []struct {
			e    json5.Element
			want string
		}{
			{json5.NewObject(), "{\n}"},
			{json5.NewArray(), "[\n]"},
		} {
			got, err := json5.WriteString(test.e, json5.Default())
			if err != nil {
				t.Fatalf("WriteString: unexpected error: %v", err)
			}
			if got != test.want {
				t.Errorf("got %#q, want %#q", got, test.want)
			}
		}
	})
}

func TestQuotelessKeys(t *testing.T) {
	o := json5.NewObject()
	o.Set("valid$_1", json5.NewInt(1))
	o.Set("needs quote", json5.NewInt(2))
	o.Set("9digit", json5.NewInt(3))

	got, err := json5.WriteString(o, json5.Options{QuotelessKeys: true})
	if err != nil {
		t.Fatalf("WriteString: unexpected error: %v", err)
	}
	const want = `{valid$_1:1,"needs quote":2,"9digit":3}`
	if got != want {
		t.Errorf("got %#q, want %#q", got, want)
	}
}

func TestWriteEscaping(t *testing.T) {
	tests := []struct {
		input string
		opts  json5.Options
		want  string
	}{
		{"a\tb\nc", json5.Options{}, `"a\tb\nc"`},
		{"null \x00 byte", json5.Options{}, `"null \u0000 byte"`},
		{"vertical\vtab", json5.Options{}, `"vertical\vtab"`},
		{`back\slash "quote"`, json5.Options{}, `"back\\slash \"quote\""`},
		{`it's`, json5.Options{QuoteSingle: true}, `'it\'s'`},
		{"café", json5.Options{}, `"café"`},
		{"café", json5.Options{ASCIIOnly: true}, `"caf\u00e9"`},
		{"\U0001F600", json5.Options{ASCIIOnly: true}, `"\ud83d\ude00"`},
		{"line\u2028sep", json5.Options{}, `"line\u2028sep"`},
		{"zero\u200bwidth", json5.Options{}, `"zero\u200bwidth"`},
	}
	for _, test := range tests {
		got, err := json5.WriteString(json5.NewString(test.input), test.opts)
		if err != nil {
			t.Fatalf("WriteString(%q): unexpected error: %v", test.input, err)
		}
		if got != test.want {
			t.Errorf("WriteString(%q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestWriteInstants(t *testing.T) {
	when := time.Unix(1700000000, 0).UTC()
	p := json5.NewInstant(when)

	got, err := json5.WriteString(p, json5.Options{})
	if err != nil {
		t.Fatalf("WriteString: unexpected error: %v", err)
	}
	const want = `"2023-11-14T22:13:20Z"`
	if got != want {
		t.Errorf("got %#q, want %#q", got, want)
	}

	got, err = json5.WriteString(p, json5.Options{UnixInstants: true})
	if err != nil {
		t.Fatalf("WriteString: unexpected error: %v", err)
	}
	if got != "1700000000" {
		t.Errorf("got %#q, want %#q", got, "1700000000")
	}
}

func TestWriteComments(t *testing.T) {
	one := json5.NewInt(1)
	one.SetComment("note")
	arr := json5.NewArray(one)

	got, err := json5.WriteString(arr, json5.Default())
	if err != nil {
		t.Fatalf("WriteString: unexpected error: %v", err)
	}
	const want = "[\n  // note\n  1,\n]"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	t.Run("Compact", func(t *testing.T) {
		got, err := json5.WriteString(arr, json5.Options{WriteComments: true})
		if err != nil {
			t.Fatalf("WriteString: unexpected error: %v", err)
		}
		const want = "[/* note */1]"
		if got != want {
			t.Errorf("got %#q, want %#q", got, want)
		}
	})
	t.Run("Suppressed", func(t *testing.T) {
		got, err := json5.WriteString(arr, json5.Options{})
		if err != nil {
			t.Fatalf("WriteString: unexpected error: %v", err)
		}
		if got != "[1]" {
			t.Errorf("got %#q, want %#q", got, "[1]")
		}
	})
	t.Run("Multiline", func(t *testing.T) {
		root := json5.NewObject()
		root.SetComment("first\nsecond")
		root.Set("a", json5.NewInt(1))

		got, err := json5.WriteString(root, json5.Default())
		if err != nil {
			t.Fatalf("WriteString: unexpected error: %v", err)
		}
		const want = "/*\nfirst\nsecond\n*/\n{\n  \"a\": 1,\n}"
		if got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})
	t.Run("MultilineNested", func(t *testing.T) {
		two := json5.NewInt(2)
		two.SetComment("first\nsecond")
		arr := json5.NewArray(two)

		got, err := json5.WriteString(arr, json5.Default())
		if err != nil {
			t.Fatalf("WriteString: unexpected error: %v", err)
		}
		const want = "[\n  /*\n  first\n  second\n  */\n  2,\n]"
		if got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}

		// The block layout survives a reparse.
		e, err := json5.ParseString(got, json5.Default())
		if err != nil {
			t.Fatalf("ParseString: unexpected error: %v", err)
		}
		a, err := json5.AsArray(e)
		if err != nil {
			t.Fatal(err)
		}
		if c := a.Get(0).Comment(); c != "first\nsecond" {
			t.Errorf("reparsed comment: got %q, want %q", c, "first\nsecond")
		}
	})
}

func TestWriteNumbers(t *testing.T) {
	opts := json5.Options{
		AllowNaN:            true,
		AllowInfinity:       true,
		AllowBinaryLiterals: true,
		AllowOctalLiterals:  true,
		AllowHexFloats:      true,
	}
	// Each literal renders back in its source radix.
	for _, test := range []struct {
		input, want string
	}{
		{"0b1010", "0b1010"},
		{"-0b1010", "-0b1010"},
		{"0o644", "0o644"},
		{"0xDEAD", "0xdead"},
		{"12.50", "12.5"},
		{"1e2", "100"},
		{"NaN", "NaN"},
		{"-Infinity", "-Infinity"},
		{"0x1.8p1", "3"}, // hex floats re-render as exact decimals
	} {
		n, err := json5.ParseNumber(test.input, opts)
		if err != nil {
			t.Fatalf("ParseNumber(%q): %v", test.input, err)
		}
		got, err := json5.WriteString(json5.NewNumber(n), json5.Options{})
		if err != nil {
			t.Fatalf("WriteString: unexpected error: %v", err)
		}
		if got != test.want {
			t.Errorf("WriteString(%q): got %q, want %q", test.input, got, test.want)
		}
	}
}
