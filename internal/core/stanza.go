package core

import "strings"

// ExtractSetting scans stanza-formatted text (btool output or raw .conf
// content) for a setting inside the target stanza. Blank lines and #
// comments are skipped; a [name] line switches the current stanza.
// Returns nil when the setting is not found. First match wins.
func ExtractSetting(raw, targetStanza, targetSetting string) *string {
	currentStanza := ""

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentStanza = line[1 : len(line)-1]
			continue
		}

		if currentStanza == targetStanza && strings.Contains(line, "=") {
			parts := strings.SplitN(line, "=", 2)
			setting := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if setting == targetSetting {
				return &value
			}
		}
	}

	return nil
}
