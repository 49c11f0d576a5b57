package domtest

import (
	"fmt"
	"strings"
	"sync"
)

type attrSelector struct {
	name  string
	op    string // "", "=", "^="
	value string
}

type compound struct {
	tag     string
	id      string
	classes []string
	attrs   []attrSelector
}

// selector is a descendant chain, outermost ancestor first.
type selector []compound

type selectorList []selector

var selectorCache sync.Map // string -> selectorList

func mustParse(s string) selectorList {
	if l, ok := selectorCache.Load(s); ok {
		return l.(selectorList)
	}
	l, err := parseSelectorList(s)
	if err != nil {
		panic(fmt.Sprintf("domtest: %v", err))
	}
	selectorCache.Store(s, l)
	return l
}

func parseSelectorList(s string) (selectorList, error) {
	var list selectorList
	for _, part := range splitTopLevel(s, ',') {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty selector in %q", s)
		}
		var sel selector
		for _, c := range splitTopLevel(part, ' ') {
			if c == "" {
				continue
			}
			cp, err := parseCompound(c)
			if err != nil {
				return nil, fmt.Errorf("selector %q: %w", s, err)
			}
			sel = append(sel, cp)
		}
		list = append(list, sel)
	}
	return list, nil
}

// splitTopLevel splits s on sep outside brackets and quotes.
func splitTopLevel(s string, sep rune) []string {
	var (
		parts []string
		depth int
		quote rune
		start int
	)
	for i, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '[':
			depth++
		case r == ']':
			depth--
		case r == sep && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

func isIdent(r byte) bool {
	return r == '-' || r == '_' || r == '*' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func readIdent(s string, i int) (string, int) {
	j := i
	for j < len(s) && isIdent(s[j]) {
		j++
	}
	return s[i:j], j
}

func parseCompound(s string) (compound, error) {
	var c compound
	i := 0
	if i < len(s) && isIdent(s[i]) {
		c.tag, i = readIdent(s, i)
		c.tag = strings.ToLower(c.tag)
		if c.tag == "*" {
			c.tag = ""
		}
	}
	for i < len(s) {
		switch s[i] {
		case '#':
			var id string
			id, i = readIdent(s, i+1)
			if id == "" {
				return c, fmt.Errorf("empty id in %q", s)
			}
			c.id = id
		case '.':
			var class string
			class, i = readIdent(s, i+1)
			if class == "" {
				return c, fmt.Errorf("empty class in %q", s)
			}
			c.classes = append(c.classes, class)
		case '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return c, fmt.Errorf("unterminated attribute in %q", s)
			}
			a, err := parseAttr(s[i+1 : i+end])
			if err != nil {
				return c, err
			}
			c.attrs = append(c.attrs, a)
			i += end + 1
		default:
			return c, fmt.Errorf("unsupported selector syntax %q", s)
		}
	}
	return c, nil
}

func parseAttr(s string) (attrSelector, error) {
	for _, op := range []string{"^=", "="} {
		if idx := strings.Index(s, op); idx >= 0 {
			name := strings.TrimSpace(s[:idx])
			value := strings.TrimSpace(s[idx+len(op):])
			value = strings.Trim(value, `"'`)
			if name == "" {
				return attrSelector{}, fmt.Errorf("empty attribute name in [%s]", s)
			}
			return attrSelector{name: strings.ToLower(name), op: op, value: value}, nil
		}
	}
	name := strings.TrimSpace(s)
	if name == "" || strings.ContainsAny(name, "~|$*") {
		return attrSelector{}, fmt.Errorf("unsupported attribute selector [%s]", s)
	}
	return attrSelector{name: strings.ToLower(name)}, nil
}

func (c compound) matches(e *Element) bool {
	if c.tag != "" && c.tag != e.tag {
		return false
	}
	if c.id != "" && c.id != e.attrs["id"] {
		return false
	}
	for _, cl := range c.classes {
		if !e.HasClass(cl) {
			return false
		}
	}
	for _, a := range c.attrs {
		v, ok := e.Attr(a.name)
		if !ok {
			return false
		}
		switch a.op {
		case "=":
			if v != a.value {
				return false
			}
		case "^=":
			if !strings.HasPrefix(v, a.value) {
				return false
			}
		}
	}
	return true
}

func (s selector) matches(e *Element) bool {
	if len(s) == 0 || !s[len(s)-1].matches(e) {
		return false
	}
	i := len(s) - 2
	for p := e.parent; p != nil && i >= 0; p = p.parent {
		if s[i].matches(p) {
			i--
		}
	}
	return i < 0
}

func (l selectorList) matches(e *Element) bool {
	for _, s := range l {
		if s.matches(e) {
			return true
		}
	}
	return false
}
