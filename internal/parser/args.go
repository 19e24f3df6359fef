package parser

import (
	"regexp"
	"strings"
)

var (
	attrRe   = regexp.MustCompile(`^(\w+):(.*)$`)
	quotedRe = regexp.MustCompile(`"([^"]*)"`)
)

// args holds the arguments that follow a directive word: bare positional
// tokens and key:value attributes. Double quotes group words and are dropped.
type args struct {
	positional []string
	attrs      map[string]string
}

func parseArgs(rest string) args {
	a := args{attrs: make(map[string]string)}
	for _, tok := range tokenize(rest) {
		if tok.quoted {
			a.positional = append(a.positional, tok.text)
			continue
		}
		m := attrRe.FindStringSubmatch(tok.text)
		// "https://..." is a value, not an attribute named https.
		if m == nil || strings.HasPrefix(m[2], "//") {
			a.positional = append(a.positional, tok.text)
			continue
		}
		a.attrs[m[1]] = m[2]
	}
	return a
}

type token struct {
	text   string
	quoted bool
}

func tokenize(s string) []token {
	var (
		out     []token
		cur     strings.Builder
		inQuote bool
		started bool
		quoted  bool
	)
	flush := func() {
		if started {
			out = append(out, token{text: cur.String(), quoted: quoted})
		}
		cur.Reset()
		started, quoted = false, false
	}
	for _, r := range s {
		switch {
		case r == '"':
			if !started {
				quoted = true
			}
			started = true
			inQuote = !inQuote
		case (r == ' ' || r == '\t') && !inQuote:
			flush()
		default:
			started = true
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}

// get returns the first attribute present among keys.
func (a args) get(keys ...string) string {
	for _, k := range keys {
		if v, ok := a.attrs[k]; ok {
			return v
		}
	}
	return ""
}

// pos returns the i-th positional argument or "".
func (a args) pos(i int) string {
	if i < len(a.positional) {
		return a.positional[i]
	}
	return ""
}

// quotedText returns the first double-quoted string in s.
func quotedText(s string) (string, bool) {
	m := quotedRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}
