// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package json5

// parseRoot parses a complete document from s. Empty input yields a nil
// element. Unless the options allow trailing data, anything but whitespace
// and comments after the root element is an error.
func parseRoot(s *Lexer) (Element, error) {
	ch, err := s.NextClean()
	if err != nil {
		return nil, err
	}
	comment := s.ConsumeComment()
	if ch == 0 {
		return nil, nil
	}

	var e Element
	switch ch {
	case '{':
		e, err = parseObject(s)
	case '[':
		e, err = parseArray(s)
	default:
		s.Back()
		e, err = s.NextValue()
	}
	if err != nil {
		return nil, err
	}
	if comment != "" {
		e.SetComment(comment)
	}

	if !s.o.AllowTrailingData {
		ch, err := s.NextClean()
		if err != nil {
			return nil, err
		} else if ch != 0 {
			return nil, s.SyntaxErrorf("unexpected trailing data %q", ch)
		}
	}
	return e, nil
}

// parseValue parses a single element of any kind. Comments pending at the
// start of the value attach to the parsed element.
func parseValue(s *Lexer) (Element, error) {
	ch, err := s.NextClean()
	if err != nil {
		return nil, err
	}
	comment := s.ConsumeComment()

	var e Element
	switch ch {
	case 0:
		return nil, s.SyntaxErrorf("unexpected end of input")
	case '{':
		e, err = parseObject(s)
	case '[':
		e, err = parseArray(s)
	default:
		s.Back()
		e, err = s.NextValue()
	}
	if err != nil {
		return nil, err
	}
	if comment != "" {
		e.SetComment(comment)
	}
	return e, nil
}

// parseObject parses the members of an object whose opening brace has been
// consumed. Repeated keys are resolved by the configured strategy.
func parseObject(s *Lexer) (*Object, error) {
	o := NewObject()
	var dup map[string]bool
	for {
		ch, err := s.NextClean()
		if err != nil {
			return nil, err
		}
		switch ch {
		case 0:
			return nil, s.SyntaxErrorf("unterminated object")
		case '}':
			s.ConsumeComment() // a comment before the brace has no element
			return o, nil
		}
		s.Back()

		key, err := s.NextMemberName()
		if err != nil {
			return nil, err
		}
		ch, err = s.NextClean()
		if err != nil {
			return nil, err
		} else if ch != ':' {
			return nil, s.SyntaxErrorf("expected ':' after member name %q", key)
		}
		value, err := parseValue(s)
		if err != nil {
			return nil, err
		}

		if prev := o.Get(key); prev == nil {
			o.Set(key, value)
		} else {
			switch s.o.DuplicateKeys {
			case LastWins:
				o.Set(key, value)
			case CollectDuplicates:
				if !dup[key] {
					if dup == nil {
						dup = make(map[string]bool)
					}
					dup[key] = true
					o.Set(key, NewArray(prev))
				}
				arr := o.Get(key).(*Array)
				arr.Add(value)
			default:
				return nil, s.SyntaxErrorf("duplicate key %q", key)
			}
		}

		ch, err = s.NextClean()
		if err != nil {
			return nil, err
		}
		switch ch {
		case ',':
			// next member, or the closing brace after a trailing comma
		case '}':
			s.ConsumeComment()
			return o, nil
		case 0:
			return nil, s.SyntaxErrorf("unterminated object")
		default:
			return nil, s.SyntaxErrorf("expected ',' or '}' in object, got %q", ch)
		}
	}
}

// parseArray parses the elements of an array whose opening bracket has been
// consumed.
func parseArray(s *Lexer) (*Array, error) {
	a := NewArray()
	for {
		ch, err := s.NextClean()
		if err != nil {
			return nil, err
		}
		switch ch {
		case 0:
			return nil, s.SyntaxErrorf("unterminated array")
		case ']':
			s.ConsumeComment()
			return a, nil
		}
		s.Back()

		e, err := parseValue(s)
		if err != nil {
			return nil, err
		}
		a.Add(e)

		ch, err = s.NextClean()
		if err != nil {
			return nil, err
		}
		switch ch {
		case ',':
			// next element, or the closing bracket after a trailing comma
		case ']':
			s.ConsumeComment()
			return a, nil
		case 0:
			return nil, s.SyntaxErrorf("unterminated array")
		default:
			return nil, s.SyntaxErrorf("expected ',' or ']' in array, got %q", ch)
		}
	}
}
