package models

import "testing"

func TestArtifact_IsFallback(t *testing.T) {
	tests := []struct {
		name     string
		artifact Artifact
		want     bool
	}{
		{"Fallback", Artifact{RawResponseKey: "text"}, true},
		{"Parsed", Artifact{"topic": "algebra"}, false},
		{"RawAmongOthers", Artifact{RawResponseKey: "text", "topic": "algebra"}, false},
		{"Empty", Artifact{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.artifact.IsFallback(); got != tt.want {
				t.Errorf("IsFallback() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuestionText(t *testing.T) {
	tests := []struct {
		name  string
		entry any
		want  string
	}{
		{"Present", map[string]any{"question": "What is DNA?"}, "What is DNA?"},
		{"Missing", map[string]any{"id": 1}, ""},
		{"WrongType", map[string]any{"question": 42}, ""},
		{"NotAMap", "plain string", ""},
		{"Nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuestionText(tt.entry); got != tt.want {
				t.Errorf("QuestionText(%v) = %q, want %q", tt.entry, got, tt.want)
			}
		})
	}
}
