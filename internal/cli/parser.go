package cli

import (
	"regexp"
	"strings"
)

// pattern pairs an action name with the regex that recognizes it. The list
// is ordered: the first match wins.
type pattern struct {
	action string
	re     *regexp.Regexp
}

var commandPatterns = []pattern{
	{"move", regexp.MustCompile(`(?i)^(?:move|go|travel)(?:\s+to)?\s+(?P<room>.+)$`)},
	{"suggest", regexp.MustCompile(`(?i)^suggest\s+(?P<character>.+?)\s+with\s+(?P<weapon>.+?)\s+in\s+(?P<room>.+)$`)},
	{"accuse", regexp.MustCompile(`(?i)^accuse\s+(?P<character>.+?)\s+with\s+(?P<weapon>.+?)\s+in\s+(?P<room>.+)$`)},
	{"path", regexp.MustCompile(`(?i)^path\s+(?P<room>.+)$`)},
	{"note", regexp.MustCompile(`(?i)^note\s+(?P<text>.+)$`)},
	{"unnote", regexp.MustCompile(`(?i)^unnote\s+(?P<text>.+)$`)},
	{"notes", regexp.MustCompile(`(?i)^(?:view\s+)?notes$`)},
	{"odds", regexp.MustCompile(`(?i)^odds$`)},
	{"hint", regexp.MustCompile(`(?i)^hint$`)},
	{"look", regexp.MustCompile(`(?i)^look$`)},
	{"hand", regexp.MustCompile(`(?i)^hand$`)},
	{"map", regexp.MustCompile(`(?i)^map$`)},
	{"help", regexp.MustCompile(`(?i)^help$`)},
	{"quit", regexp.MustCompile(`(?i)^quit$`)},
}

// parseCommand matches a raw input line against the known command patterns
// and extracts the named arguments. Unrecognized input yields ("unknown",
// empty map); the arguments arrive as plain strings, already trimmed, and
// any name correction happens later in the fuzzy pass.
func parseCommand(input string) (string, map[string]string) {
	input = strings.TrimSpace(input)
	for _, p := range commandPatterns {
		match := p.re.FindStringSubmatch(input)
		if match == nil {
			continue
		}
		args := make(map[string]string)
		for i, name := range p.re.SubexpNames() {
			if name != "" && i < len(match) {
				args[name] = strings.TrimSpace(match[i])
			}
		}
		return p.action, args
	}
	return "unknown", map[string]string{}
}
