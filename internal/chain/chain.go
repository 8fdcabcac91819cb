package chain

import (
	"fmt"
	"regexp"
	"strings"
)

// DriverClass is the name of the synthesized class holding main.
const DriverClass = "Test"

// ClassDefinition describes one level of the inheritance chain.
type ClassDefinition struct {
	Name   string `yaml:"name" toml:"name" json:"name"`
	Method string `yaml:"method" toml:"method" json:"method"`
	Body   string `yaml:"body" toml:"body" json:"body"`
}

// Program holds the two artifacts produced from a chain.
type Program struct {
	Source string
	Output string
}

var quotedLiteral = regexp.MustCompile(`"([^"]*)"`)

// DefaultClass returns the default definition for the level at index i.
func DefaultClass(i int) ClassDefinition {
	level := i + 1
	return ClassDefinition{
		Name:   fmt.Sprintf("Class%d", level),
		Method: fmt.Sprintf("print%d()", level),
		Body:   fmt.Sprintf("System.out.println(\"%d\");", level),
	}
}

// Defaults returns n default definitions.
func Defaults(n int) []ClassDefinition {
	if n <= 0 {
		return nil
	}

	defs := make([]ClassDefinition, n)
	for i := range defs {
		defs[i] = DefaultClass(i)
	}

	return defs
}

// Generate builds the source text and simulated output for defs.
func Generate(defs []ClassDefinition) Program {
	return Program{
		Source: Source(defs),
		Output: SimulatedOutput(defs),
	}
}

// Source renders every class declaration followed by the driver class.
//
// Entry 0 has no parent; every later entry extends the one before it. The
// driver instantiates the last class and calls each level's method in order.
func Source(defs []ClassDefinition) string {
	if len(defs) == 0 {
		return ""
	}

	declarations := make([]string, 0, len(defs))
	for i, def := range defs {
		extends := ""
		if i > 0 {
			extends = " extends " + defs[i-1].Name
		}

		declarations = append(declarations, fmt.Sprintf(
			"class %s%s {\n  void %s {\n    %s\n  }\n}",
			def.Name, extends, def.Method, def.Body,
		))
	}

	calls := make([]string, 0, len(defs))
	for _, def := range defs {
		calls = append(calls, "        obj."+CallTarget(def.Method)+"();")
	}

	last := defs[len(defs)-1].Name

	var b strings.Builder
	b.WriteString(strings.Join(declarations, "\n\n"))
	b.WriteString("\n\npublic class " + DriverClass + " {\n")
	b.WriteString("  public static void main(String[] args) {\n")
	b.WriteString("    " + last + " obj = new " + last + "();\n")
	b.WriteString(strings.Join(calls, "\n"))
	b.WriteString("\n  }\n}")

	return b.String()
}

// SimulatedOutput returns one line per definition, in order.
func SimulatedOutput(defs []ClassDefinition) string {
	lines := make([]string, 0, len(defs))
	for _, def := range defs {
		if literal, ok := ExtractQuoted(def.Body); ok {
			lines = append(lines, literal)
			continue
		}

		lines = append(lines, def.Body)
	}

	return strings.Join(lines, "\n")
}

// ExtractQuoted returns the text between the first two double quotes in body.
func ExtractQuoted(body string) (string, bool) {
	match := quotedLiteral.FindStringSubmatch(body)
	if match == nil {
		return "", false
	}

	return match[1], true
}

// CallTarget turns a method signature into the name used in the driver call.
// Only the first "()" is removed; a method without one is returned unchanged.
func CallTarget(method string) string {
	return strings.Replace(method, "()", "", 1)
}
