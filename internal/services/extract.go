package services

import (
	"encoding/json"
	"strings"

	"examgen/internal/models"
)

// ParseArtifact recovers a structured object from free-form model output. It
// never fails: when no JSON object can be parsed, the full original text is
// preserved under models.RawResponseKey so callers always receive a usable
// artifact.
func ParseArtifact(content string) models.Artifact {
	candidate := stripFences(strings.TrimSpace(content))

	if start := strings.Index(candidate, "{"); start != -1 {
		if end := strings.LastIndex(candidate, "}"); end > start {
			var artifact models.Artifact
			if err := json.Unmarshal([]byte(candidate[start:end+1]), &artifact); err == nil && artifact != nil {
				return artifact
			}
		}
	}

	return models.Artifact{models.RawResponseKey: content}
}

// stripFences removes markdown code block formatting if present, so that
// replies like ```json {...} ``` still parse.
func stripFences(content string) string {
	if !strings.HasPrefix(content, "```") {
		return content
	}

	// Skip past the opening ``` and optional language identifier (e.g. "json")
	start := 3
	if newlineIdx := strings.Index(content[start:], "\n"); newlineIdx != -1 {
		start += newlineIdx + 1
	}

	if endIdx := strings.Index(content[start:], "```"); endIdx != -1 {
		content = content[start : start+endIdx]
	} else {
		// No closing ```, just take everything after the opening
		content = content[start:]
	}

	return strings.TrimSpace(content)
}
