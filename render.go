package contractgen

import (
	"regexp"
	"strings"
)

// Conditional block delimiters. Blocks do not nest.
const (
	blockMinor = "IF_MINOR"
	blockAdult = "IF_ADULT"
)

var (
	minorBlockPattern  = conditionalBlock(blockMinor)
	adultBlockPattern  = conditionalBlock(blockAdult)
	placeholderPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)
)

// conditionalBlock matches {{#NAME}}...{{/NAME}} lazily across newlines.
func conditionalBlock(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)\{\{#` + name + `\}\}(.*?)\{\{/` + name + `\}\}`)
}

// ResolveConditionals keeps the IF_MINOR or IF_ADULT regions depending on
// IS_MINOR and removes the other kind entirely, delimiters included.
func ResolveConditionals(template string, isMinor bool) string {
	keep, drop := minorBlockPattern, adultBlockPattern
	if !isMinor {
		keep, drop = adultBlockPattern, minorBlockPattern
	}
	out := drop.ReplaceAllLiteralString(template, "")
	return keep.ReplaceAllString(out, "$1")
}

// Substitute replaces every {{KEY}} with its value, one pass per field in
// field order. Placeholders without a matching field are left verbatim.
func Substitute(template string, f *Fields) string {
	out := template
	for _, key := range f.Keys() {
		out = strings.ReplaceAll(out, "{{"+key+"}}", f.Value(key))
	}
	return out
}

// Render resolves conditionals from IS_MINOR and substitutes all fields.
// Pure: no I/O, and the same inputs always yield the same output.
func Render(template string, f *Fields) string {
	return Substitute(ResolveConditionals(template, IsTruthy(f.Value(FieldIsMinor))), f)
}

// Placeholders lists the distinct placeholder names in text, in order of
// first appearance. Conditional delimiters are not placeholders.
func Placeholders(text string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Unresolved lists placeholders left in a rendered document.
func Unresolved(doc string) []string {
	return Placeholders(doc)
}
