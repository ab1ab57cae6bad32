package query

import (
	"fmt"
	"strings"
)

// Op is a tag filter operator in Overpass QL.
type Op string

const (
	OpExists    Op = ""
	OpNotExists Op = "!"
	OpEqual     Op = "="
	OpNotEqual  Op = "!="
	OpMatch     Op = "~"
	OpNotMatch  Op = "!~"
)

// Tag is a single parsed tag filter, e.g. shop=bakery. Key and Value are
// always quoted when rendered, so they may hold any character except a
// line break.
type Tag struct {
	Key   string
	Op    Op
	Value string

	// IgnoreCase adds the ",i" flag to regular expression filters.
	IgnoreCase bool
}

// ParseTag parses "key", "!key", "key=value", "key!=value", "key~regex"
// and "key!~regex". A trailing ",i" after an unquoted or quoted regex makes
// it case-insensitive. Surrounding quotes on key or value are dropped.
func ParseTag(s string) (Tag, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Tag{}, &ValidationError{Field: "tag", Reason: "empty tag"}
	}
	if strings.ContainsAny(raw, "\r\n") {
		return Tag{}, &ValidationError{Field: "tag", Reason: fmt.Sprintf("%q must be a single line", s)}
	}

	var t Tag
	switch i := strings.IndexAny(raw, "=~"); {
	case i < 0:
		t.Key = raw
		if strings.HasPrefix(raw, "!") {
			t.Op = OpNotExists
			t.Key = raw[1:]
		}
	case i > 0 && raw[i-1] == '!':
		t.Key, t.Value = raw[:i-1], raw[i+1:]
		t.Op = OpNotEqual
		if raw[i] == '~' {
			t.Op = OpNotMatch
		}
	default:
		t.Key, t.Value = raw[:i], raw[i+1:]
		t.Op = OpEqual
		if raw[i] == '~' {
			t.Op = OpMatch
		}
	}

	if t.Op == OpMatch || t.Op == OpNotMatch {
		if v, ok := strings.CutSuffix(strings.TrimSpace(t.Value), ",i"); ok {
			t.Value, t.IgnoreCase = v, true
		}
	}

	t.Key = unquote(t.Key)
	t.Value = unquote(t.Value)

	if t.Op != OpExists && t.Op != OpNotExists && strings.HasPrefix(strings.TrimSpace(t.Key), "!") {
		return Tag{}, &ValidationError{
			Field:  "tag",
			Reason: fmt.Sprintf("%q negates a key and compares a value; use key!=value or !key", s),
		}
	}
	if t.Key == "" {
		return Tag{}, &ValidationError{Field: "tag", Reason: fmt.Sprintf("%q has no key", s)}
	}
	if t.Op != OpExists && t.Op != OpNotExists && t.Value == "" {
		return Tag{}, &ValidationError{Field: "tag", Reason: fmt.Sprintf("%q has no value", s)}
	}

	return t, nil
}

// Filter renders the tag as an Overpass QL filter with quoted, escaped
// key and value, e.g. ["shop"="bakery"].
func (t Tag) Filter() string {
	switch t.Op {
	case OpExists:
		return "[" + quote(t.Key) + "]"
	case OpNotExists:
		return "[!" + quote(t.Key) + "]"
	default:
		filter := "[" + quote(t.Key) + string(t.Op) + quote(t.Value)
		if t.IgnoreCase {
			filter += ",i"
		}
		return filter + "]"
	}
}

// String renders the tag the way users write it.
func (t Tag) String() string {
	if t.Op == OpNotExists {
		return "!" + t.Key
	}
	if t.IgnoreCase {
		return t.Key + string(t.Op) + t.Value + ",i"
	}
	return t.Key + string(t.Op) + t.Value
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}
