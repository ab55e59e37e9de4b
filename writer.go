// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package json5

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"go4.org/mem"

	"github.com/creachadair/json5/internal/escape"
	"github.com/creachadair/json5/internal/ident"
)

// A Writer renders element trees as JSON5 text. Output is pretty-printed
// when the options set a positive indent factor, and compact otherwise.
type Writer struct {
	w io.Writer
	o Options
}

// NewWriter constructs a writer that emits output to w, governed by o.
func NewWriter(w io.Writer, o Options) *Writer { return &Writer{w: w, o: o} }

// Write renders e to the output. A nil element renders as null.
func (w *Writer) Write(e Element) error {
	if e == nil {
		e = NewNull()
	}
	ws := &writeState{w: bufio.NewWriter(w.w), o: w.o}
	ws.comment(e, 0)
	ws.element(e, 0)
	if ws.err != nil {
		return ws.err
	}
	return ws.w.Flush()
}

// writeState carries the output sink and a sticky write error, so that the
// rendering methods can compose without error plumbing at each step.
type writeState struct {
	w   *bufio.Writer
	o   Options
	err error
}

func (ws *writeState) emit(s string) {
	if ws.err == nil {
		_, ws.err = ws.w.WriteString(s)
	}
}

func (ws *writeState) pretty() bool { return ws.o.IndentFactor > 0 }

// newline starts a fresh output line at the given nesting level. In compact
// mode it emits nothing.
func (ws *writeState) newline(level int) {
	if ws.pretty() {
		ws.emit("\n")
		ws.emit(strings.Repeat(" ", ws.o.IndentFactor*level))
	}
}

// comment emits the comment attached to e, if any and if enabled, at the
// given nesting level. In pretty mode a single-line comment becomes a line
// comment and a multi-line comment an indented block comment; in compact
// mode the text is folded into a single inline block comment.
func (ws *writeState) comment(e Element, level int) {
	if !ws.o.WriteComments {
		return
	}
	text := e.Comment()
	if text == "" {
		return
	}
	if !ws.pretty() {
		safe := strings.ReplaceAll(text, "*/", "* /")
		ws.emit("/* " + strings.ReplaceAll(safe, "\n", " ") + " */")
		return
	}
	if !strings.Contains(text, "\n") {
		ws.emit("// " + text)
		ws.newline(level)
		return
	}
	ws.emit("/*")
	ws.newline(level)
	for _, line := range strings.Split(strings.ReplaceAll(text, "*/", "* /"), "\n") {
		ws.emit(line)
		ws.newline(level)
	}
	ws.emit("*/")
	ws.newline(level)
}

func (ws *writeState) element(e Element, level int) {
	switch t := e.(type) {
	case *Object:
		ws.object(t, level)
	case *Array:
		ws.array(t, level)
	case *Primitive:
		ws.primitive(t)
	default:
		ws.emit("null")
	}
}

func (ws *writeState) object(o *Object, level int) {
	ws.emit("{")
	keys := o.Keys()
	for i, key := range keys {
		ws.newline(level + 1)
		value := o.Get(key)
		ws.comment(value, level+1)

		if ws.o.QuotelessKeys && ident.IsIdentifier(key) {
			ws.emit(key)
		} else {
			ws.quoted(key)
		}
		ws.emit(":")
		if ws.pretty() {
			ws.emit(" ")
		}
		ws.element(value, level+1)
		if ws.o.TrailingComma || i+1 < len(keys) {
			ws.emit(",")
		}
	}
	ws.newline(level)
	ws.emit("}")
}

func (ws *writeState) array(a *Array, level int) {
	ws.emit("[")
	for i, e := range a.All() {
		ws.newline(level + 1)
		ws.comment(e, level+1)
		ws.element(e, level+1)
		if ws.o.TrailingComma || i+1 < a.Len() {
			ws.emit(",")
		}
	}
	ws.newline(level)
	ws.emit("]")
}

func (ws *writeState) primitive(p *Primitive) {
	switch {
	case p.IsBool():
		v, _ := p.Bool()
		ws.emit(strconv.FormatBool(v))
	case p.IsNumber():
		n, _ := p.Number()
		ws.emit(n.String())
	case p.IsInstant():
		t, _ := p.Instant()
		if ws.o.UnixInstants {
			ws.emit(strconv.FormatInt(t.Unix(), 10))
		} else {
			ws.quoted(t.Format(time.RFC3339Nano))
		}
	default:
		ws.quoted(p.Text())
	}
}

func (ws *writeState) quoted(s string) {
	q := byte('"')
	if ws.o.QuoteSingle {
		q = '\''
	}
	if ws.err == nil {
		_, ws.err = ws.w.Write(escape.Quote(mem.S(s), q, ws.o.ASCIIOnly))
	}
}
