// Package names implements identifier mangling, reserved-word escaping
// and literal rewriting for the Erlang target.
package names

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Reserved is the fixed set of Erlang reserved words that must be quoted
// when emitted as atoms.
var Reserved = map[string]bool{
	"after": true, "and": true, "andalso": true, "band": true,
	"begin": true, "bnot": true, "bor": true, "bsl": true, "bsr": true,
	"bxor": true, "catch": true, "div": true, "end": true, "fun": true,
	"not": true, "or": true, "orelse": true, "receive": true, "rem": true,
	"try": true, "when": true, "xor": true, "!": true,
}

// StdlibModules is the fixed list of Erlang/OTP standard-library module
// names, exposed so an external type checker can detect user modules
// that would collide with them. This package's own code never consults
// the list for anything but exporting it.
var StdlibModules = map[string]bool{
	"array": true, "base64": true, "calendar": true, "dict": true,
	"erlang": true, "ets": true, "gen_server": true, "io": true,
	"io_lib": true, "lists": true, "maps": true, "math": true,
	"os": true, "proplists": true, "queue": true, "rand": true,
	"re": true, "sets": true, "string": true, "supervisor": true,
	"timer": true, "unicode": true,
}

var safeAtom = regexp.MustCompile(`^[a-z][a-z0-9_@]*$`)

// Atom quotes name with single quotes if it is reserved or contains any
// character outside [a-z][a-z0-9_@]*.
func Atom(name string) string {
	if Reserved[name] || !safeAtom.MatchString(name) {
		return "'" + name + "'"
	}
	return name
}

// ModuleSegment escapes one segment of a dotted module path. A module path
// segment cannot be single-quoted (module attributes do not accept quoted
// atoms the way ordinary atoms do), so a reserved segment is suffixed with
// an underscore instead.
func ModuleSegment(seg string) string {
	if Reserved[seg] {
		return seg + "_"
	}
	return seg
}

// Capitalize upper-cases the first codepoint of s and leaves the rest
// untouched — Erlang variable names must start with an uppercase letter.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// SnakeCase converts a Pascal/camelCase constructor or type name into the
// lower_snake_case atom Erlang expects for record and tag names.
func SnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	out := b.String()
	out = strings.TrimPrefix(out, "_")
	return out
}

// Int normalises an integer literal: strips underscores and rewrites
// source radix prefixes to Erlang's `Base#Digits` form.
func Int(raw string) string {
	s := strings.ReplaceAll(raw, "_", "")
	neg := ""
	if strings.HasPrefix(s, "-") {
		neg = "-"
		s = s[1:]
	}
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		return neg + "16#" + strings.ToUpper(s[2:])
	case strings.HasPrefix(s, "0o") || strings.HasPrefix(s, "0O"):
		return neg + "8#" + s[2:]
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		return neg + "2#" + s[2:]
	default:
		return neg + s
	}
}

// Float normalises a float literal: strips underscores and appends a
// trailing "0" when the literal ends in a bare ".".
func Float(raw string) string {
	s := strings.ReplaceAll(raw, "_", "")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}

// EscapeString escapes s for inclusion inside an Erlang double-quoted
// string body (used both for `<<"…"/utf8>>` binaries and raw bit-string
// segment strings).
func EscapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
