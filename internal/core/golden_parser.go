package core

import (
	"strings"

	"goldcheck/internal/types"
)

// Golden document markers. Role blocks open with ###BEGIN <MARKER>###
// and close with any line containing ###END. Config-file sub-sections
// are ###-wrapped lines naming a .conf file.
const (
	roleBeginPrefix = "###BEGIN "
	roleEndToken    = "###END"
	markerDelimiter = "###"
)

// ParseGoldenDocument parses a golden configuration document into an
// ordered list of expectations. Pure function of its input: re-parsing
// the same text yields the same sequence.
//
// Recognition rules, per line (trimmed):
//   - a role begin marker opens a role block and resets file/stanza state;
//   - a line containing ###END closes the current role block;
//   - inside a block, a ###-wrapped line containing ".conf" selects the
//     active config file (delimiters stripped);
//   - a [name] line selects the active stanza;
//   - any other non-comment line containing "=" while both a file and a
//     stanza are active yields one expectation; inline # comments are
//     stripped from the value and empty values are dropped;
//   - everything else is ignored without error.
//
// Repeated role blocks with the same role accumulate independently in
// document order; duplicate expectations are never merged.
func ParseGoldenDocument(text string) []types.Expectation {
	var expectations []types.Expectation

	var currentRole types.Role
	inRole := false
	configFile := ""
	stanza := ""

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)

		if role, ok := matchRoleBegin(line); ok {
			currentRole = role
			inRole = true
			configFile = ""
			stanza = ""
			continue
		}

		if inRole && strings.Contains(line, roleEndToken) {
			inRole = false
			configFile = ""
			stanza = ""
			continue
		}

		if !inRole {
			continue
		}

		if isConfigFileMarker(line) {
			configFile = strings.TrimSpace(strings.Trim(line, "#"))
			continue
		}

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			stanza = line[1 : len(line)-1]
			continue
		}

		if strings.Contains(line, "=") && configFile != "" && stanza != "" {
			parts := strings.SplitN(line, "=", 2)
			setting := strings.TrimSpace(parts[0])
			expected := strings.TrimSpace(parts[1])

			// Inline comments truncate the value.
			if idx := strings.Index(expected, "#"); idx >= 0 {
				expected = strings.TrimSpace(expected[:idx])
			}

			if expected == "" {
				continue
			}

			expectations = append(expectations, types.Expectation{
				Role:          currentRole,
				ConfigFile:    configFile,
				Stanza:        stanza,
				Setting:       setting,
				ExpectedValue: expected,
			})
		}
	}

	return expectations
}

// matchRoleBegin reports whether a line contains a role begin marker.
func matchRoleBegin(line string) (types.Role, bool) {
	for _, rm := range types.RoleMarkers {
		if strings.Contains(line, roleBeginPrefix+rm.Marker+markerDelimiter) {
			return rm.Role, true
		}
	}
	return "", false
}

// isConfigFileMarker recognizes config-file sub-section markers such as
// ###distsearch.conf###.
func isConfigFileMarker(line string) bool {
	return strings.HasPrefix(line, markerDelimiter) &&
		strings.HasSuffix(line, markerDelimiter) &&
		strings.Contains(line, ConfFileSuffix)
}
