package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse turns a compact description into constructors. Blocks are separated
// by ';' and take the form kind:name,name,... where kind is one of
//
//	mand | opt | alt | or | rangeM-N
//
// plus randN@P for Random(N, P), which takes no names. Blank blocks and
// surrounding whitespace are ignored.
//
// Example: "mand:core;alt:B,C;range1-2:x,y,z;rand3@0.5".
func Parse(spec string) ([]Constructor, error) {
	var cons []Constructor
	for _, raw := range strings.Split(spec, ";") {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			continue
		}
		c, err := parseBlock(tok)
		if err != nil {
			return nil, fmt.Errorf("Parse: %q: %w", tok, err)
		}
		cons = append(cons, c)
	}
	if len(cons) == 0 {
		return nil, fmt.Errorf("Parse: empty description: %w", ErrConstructFailed)
	}

	return cons, nil
}

// parseBlock parses one kind:names token.
func parseBlock(tok string) (Constructor, error) {
	if strings.HasPrefix(tok, "rand") {
		n, p, ok := strings.Cut(strings.TrimPrefix(tok, "rand"), "@")
		if !ok {
			return nil, ErrConstructFailed
		}
		count, err := strconv.Atoi(n)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConstructFailed, err)
		}
		prob, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConstructFailed, err)
		}
		return Random(count, prob), nil
	}

	kind, list, ok := strings.Cut(tok, ":")
	if !ok {
		return nil, ErrConstructFailed
	}
	var names []string
	for _, n := range strings.Split(list, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}

	switch kind = strings.TrimSpace(kind); {
	case kind == "mand":
		return Mandatory(names...), nil
	case kind == "opt":
		return Optional(names...), nil
	case kind == "alt":
		return Alternative(names...), nil
	case kind == "or":
		return Or(names...), nil
	case strings.HasPrefix(kind, "range"):
		lo, hi, ok := strings.Cut(strings.TrimPrefix(kind, "range"), "-")
		if !ok {
			return nil, ErrConstructFailed
		}
		min, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConstructFailed, err)
		}
		max, err := strconv.Atoi(hi)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConstructFailed, err)
		}
		return Range(min, max, names...), nil
	}

	return nil, fmt.Errorf("unknown kind %q: %w", kind, ErrConstructFailed)
}
