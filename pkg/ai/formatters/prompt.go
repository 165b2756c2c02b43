// Package formatters turns resume fragments into chat prompts for the AI
// gateway. Each formatter owns one operation's instructions.
package formatters

import (
	"encoding/json"
	"strings"
)

// Prompt is a system instruction plus the user turn.
type Prompt struct {
	System string
	User   string
}

func mustMarshal(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

// contextBlock renders "Label: value" lines, skipping empty values.
func contextBlock(lines ...[2]string) string {
	var sb strings.Builder
	for _, l := range lines {
		if strings.TrimSpace(l[1]) == "" {
			continue
		}
		sb.WriteString(l[0])
		sb.WriteString(": ")
		sb.WriteString(l[1])
		sb.WriteString("\n")
	}
	return sb.String()
}
