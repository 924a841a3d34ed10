package router

import (
	"fmt"
	"strings"
)

const paramMarker = ':'

// pattern is a compiled route path.
// segments is nil for literal patterns, which match by exact string equality.
type pattern struct {
	raw      string
	segments []segment
}

type segment struct {
	value string // literal text, or the parameter name
	param bool
}

func parsePattern(raw string) (pattern, error) {
	if raw == "" || raw[0] != '/' {
		return pattern{}, fmt.Errorf("%w: '%s' must begin with '/'", ErrInvalidPattern, raw)
	}

	var (
		segments   []segment
		parametric bool
		seen       map[string]struct{}
	)

	for part := range strings.SplitSeq(raw, "/") {
		if part == "" {
			continue
		}

		if part[0] != paramMarker {
			segments = append(segments, segment{value: part})
			continue
		}

		name := part[1:]
		if name == "" {
			return pattern{}, fmt.Errorf("%w: empty parameter name in '%s'", ErrInvalidPattern, raw)
		}
		if _, dup := seen[name]; dup {
			return pattern{}, fmt.Errorf("%w: '%s' in '%s'", ErrDuplicateParam, name, raw)
		}
		if seen == nil {
			seen = make(map[string]struct{})
		}
		seen[name] = struct{}{}
		parametric = true
		segments = append(segments, segment{value: name, param: true})
	}

	if !parametric {
		return pattern{raw: raw}, nil
	}
	return pattern{raw: raw, segments: segments}, nil
}

// parametric reports whether the pattern has at least one parameter segment.
func (p pattern) parametric() bool {
	return p.segments != nil
}

// match reports whether path matches p and returns the parameter bindings.
//
// Literal patterns compare byte-for-byte, so "/foo" and "/foo/" differ.
// Parametric patterns compare non-empty segments position by position and
// require equal segment counts. The returned map is only allocated once a
// parameter binds and is discarded on a failed match.
func (p pattern) match(path string) (map[string]string, bool) {
	if !p.parametric() {
		return nil, p.raw == path
	}

	var params map[string]string
	i := 0
	for part := range strings.SplitSeq(path, "/") {
		if part == "" {
			continue
		}
		if i >= len(p.segments) {
			return nil, false
		}

		seg := p.segments[i]
		switch {
		case seg.param:
			if params == nil {
				params = make(map[string]string, len(p.segments))
			}
			params[seg.value] = part
		case seg.value != part:
			return nil, false
		}
		i++
	}

	if i != len(p.segments) {
		return nil, false
	}
	return params, true
}
