package router

import (
	"fmt"
	"strings"
)

type segmentKind int

const (
	// Ordered by increasing specificity
	segmentParam segmentKind = iota
	segmentIntParam
	segmentLiteral
)

type segment struct {
	kind  segmentKind
	value string // literal text or parameter name
}

// pattern is a parsed route path such as /api/aproducts/{id:int}/soft-delete.
// {name} matches any non-empty segment, {name:int} only ASCII digits.
type pattern struct {
	raw      string
	segments []segment
}

func parsePattern(raw string) (pattern, error) {
	if !strings.HasPrefix(raw, "/") {
		return pattern{}, fmt.Errorf("pattern %q must start with /", raw)
	}

	p := pattern{raw: raw}
	seen := map[string]bool{}
	for _, part := range splitPath(raw) {
		if part == "" {
			return pattern{}, fmt.Errorf("pattern %q has an empty segment", raw)
		}
		if !strings.HasPrefix(part, "{") {
			p.segments = append(p.segments, segment{kind: segmentLiteral, value: part})
			continue
		}
		if !strings.HasSuffix(part, "}") {
			return pattern{}, fmt.Errorf("pattern %q: unterminated parameter %q", raw, part)
		}

		name, typ, _ := strings.Cut(part[1:len(part)-1], ":")
		if name == "" {
			return pattern{}, fmt.Errorf("pattern %q: unnamed parameter", raw)
		}
		if seen[name] {
			return pattern{}, fmt.Errorf("pattern %q: duplicate parameter %q", raw, name)
		}
		seen[name] = true

		switch typ {
		case "":
			p.segments = append(p.segments, segment{kind: segmentParam, value: name})
		case "int":
			p.segments = append(p.segments, segment{kind: segmentIntParam, value: name})
		default:
			return pattern{}, fmt.Errorf("pattern %q: unknown parameter type %q", raw, typ)
		}
	}
	return p, nil
}

// exact reports whether the pattern has no parameters
func (p pattern) exact() bool {
	for _, s := range p.segments {
		if s.kind != segmentLiteral {
			return false
		}
	}
	return true
}

// match returns the captured parameters when parts fits the pattern
func (p pattern) match(parts []string) (Params, bool) {
	if len(parts) != len(p.segments) {
		return nil, false
	}

	var params Params
	for i, s := range p.segments {
		part := parts[i]
		switch s.kind {
		case segmentLiteral:
			if part != s.value {
				return nil, false
			}
			continue
		case segmentIntParam:
			if !isDigits(part) {
				return nil, false
			}
		case segmentParam:
			if part == "" {
				return nil, false
			}
		}
		if params == nil {
			params = Params{}
		}
		params[s.value] = part
	}
	return params, true
}

// moreSpecific orders patterns: exact before parameterised, then longer
// before shorter, then by the first differing segment kind.
func (p pattern) moreSpecific(other pattern) bool {
	if pe, oe := p.exact(), other.exact(); pe != oe {
		return pe
	}
	if len(p.segments) != len(other.segments) {
		return len(p.segments) > len(other.segments)
	}
	for i := range p.segments {
		if a, b := p.segments[i].kind, other.segments[i].kind; a != b {
			return a > b
		}
	}
	return false
}

// splitPath turns /a/b/ into [a b]; one trailing slash is ignored
func splitPath(path string) []string {
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
