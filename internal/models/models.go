package models

// QuestionTypes lists the question formats the generator can be asked for.
var QuestionTypes = []string{
	"Multiple Choice",
	"True/False",
	"Short Answer",
	"Essay",
	"Fill in the Blank",
	"Matching",
	"Problem Solving",
	"Case Analysis",
}

// BloomLevels is the six-step cognitive taxonomy, ordered from recall to creation.
var BloomLevels = []string{
	"Remember",
	"Understand",
	"Apply",
	"Analyze",
	"Evaluate",
	"Create",
}

// RawResponseKey is the single field of the fallback artifact produced when the
// model reply contains no parseable JSON object.
const RawResponseKey = "raw_response"

// Artifact is the loosely typed result of a generation operation. The model
// decides the shape, so callers must treat every field as optional.
type Artifact map[string]any

// IsFallback reports whether the artifact is the unparsed-text fallback.
func (a Artifact) IsFallback() bool {
	if len(a) != 1 {
		return false
	}
	_, ok := a[RawResponseKey]
	return ok
}

// QuestionText pulls the question text out of a banked entry, when present.
func QuestionText(entry any) string {
	m, ok := entry.(map[string]any)
	if !ok {
		return ""
	}
	text, _ := m["question"].(string)
	return text
}
