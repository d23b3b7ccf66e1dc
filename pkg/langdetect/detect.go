// Package langdetect guesses the programming language of code paragraphs.
//
// Reddit bodies carry code as indented lines, and the paragraph parser emits
// one Code paragraph per line. Runs groups consecutive code paragraphs back
// into blocks and Detect labels each block using go-enry plus a few cheap
// textual heuristics for snippets too short for the classifier.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Text is returned when no language can be determined.
const Text = "text"

// classifierCandidates bounds the enry classifier to languages that commonly
// appear in posts.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "C#", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Lua", "PHP",
}

// heuristic reports a language for code, or "" when it does not apply.
type heuristic func(code string) string

// heuristics run in order; the first match wins.
//
//nolint:gochecknoglobals // Read-only lookup table.
var heuristics = []heuristic{
	prefixed("go", "package "),
	detectPython,
	detectHTML,
	detectJSON,
	prefixed("sql", "SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "),
	containing("rust", "fn main()", "println!", "let mut "),
	containing("csharp", "using System", "Console.WriteLine"),
	containing("javascript", "=>", "console.log", "const ", "function "),
	detectYAML,
}

// Detect returns the language of code, or Text.
func Detect(code string) string {
	if strings.TrimSpace(code) == "" {
		return Text
	}

	content := []byte(code)
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	for _, h := range heuristics {
		if lang := h(code); lang != "" {
			return lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return Text
}

func prefixed(lang string, prefixes ...string) heuristic {
	return func(code string) string {
		trimmed := strings.TrimSpace(code)
		for _, p := range prefixes {
			if strings.HasPrefix(trimmed, p) || strings.HasPrefix(strings.ToUpper(trimmed), p) {
				return lang
			}
		}
		return ""
	}
}

func containing(lang string, needles ...string) heuristic {
	return func(code string) string {
		for _, n := range needles {
			if strings.Contains(code, n) {
				return lang
			}
		}
		return ""
	}
}

func detectPython(code string) string {
	switch {
	case strings.Contains(code, "def ") && strings.Contains(code, "):"):
		return "python"
	case strings.Contains(code, "__name__"):
		return "python"
	case strings.HasPrefix(strings.TrimSpace(code), "import ") && !strings.Contains(code, "import ("):
		return "python"
	}
	return ""
}

func detectHTML(code string) string {
	lower := strings.ToLower(code)
	for _, tag := range []string{"<!doctype html", "<html", "<head>", "<body>", "<div"} {
		if strings.Contains(lower, tag) {
			return "html"
		}
	}
	return ""
}

func detectJSON(code string) string {
	trimmed := strings.TrimSpace(code)
	if (strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")) && strings.Contains(trimmed, `"`) {
		return "json"
	}
	return ""
}

// detectYAML needs at least two "key: value" or "- item" lines.
func detectYAML(code string) string {
	count := 0
	for line := range strings.Lines(code) {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
		case strings.HasPrefix(line, "- "):
			count++
		case strings.Contains(line, ": ") && !strings.ContainsAny(line, "({\""):
			count++
		}
	}
	if count >= 2 {
		return "yaml"
	}
	return ""
}

// normalize converts enry language names to fence-style tags.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C#":
		return "csharp"
	case "C++":
		return "cpp"
	default:
		return strings.ToLower(lang)
	}
}
