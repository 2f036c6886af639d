package console

import (
	"strings"
	"unicode"
)

// EntryPrefix marks entry points in a class command's entry table.
const EntryPrefix = "Execute"

// commandSuffix is stripped from identifiers before inference.
const commandSuffix = "Command"

// Infer derives a command name from a handler identifier:
//
//	SayHelloCommand         -> say-hello
//	commands.SayHelloCommand -> say-hello
//	Tasks::checklist        -> checklist
//	var_dump                -> var-dump
//
// A qualifier before the last '.', '\', ':' or '/' is dropped, a trailing
// "Command" is stripped, and a hyphen is inserted wherever a lowercase
// letter is followed by an uppercase one. The result is lowercase.
func Infer(ident string) string {
	if idx := strings.LastIndexAny(ident, `.\:/`); idx >= 0 {
		ident = ident[idx+1:]
	}
	if trimmed := strings.TrimSuffix(ident, commandSuffix); trimmed != "" {
		ident = trimmed
	}

	var sb strings.Builder
	var prev rune
	for _, r := range ident {
		switch {
		case r == '_' || r == ' ':
			r = '-'
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			sb.WriteRune('-')
		}
		sb.WriteRune(unicode.ToLower(r))
		prev = r
	}
	return strings.Trim(sb.String(), "-")
}

// Camelize turns a hyphen, underscore or space separated name into an
// upper camel case identifier: "hello-world" -> "HelloWorld".
func Camelize(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	var sb strings.Builder
	for _, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		sb.WriteString(string(runes))
	}
	return sb.String()
}

// EntryName returns the entry-point key for a sub-command name.
func EntryName(sub string) string {
	return EntryPrefix + Camelize(sub)
}

// SubcommandName is the inverse of EntryName for display.
func SubcommandName(entry string) string {
	return Infer(strings.TrimPrefix(entry, EntryPrefix))
}
