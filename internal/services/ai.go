package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"examgen/internal/models"
)

var (
	// ErrChatUnavailable is returned when no chat endpoint is configured.
	ErrChatUnavailable = errors.New("chat endpoint is not configured")
)

const systemPrompt = "You are an exam preparation assistant. Always respond with a single JSON object matching the requested shape."

const chatTimeout = 2 * time.Minute

// AIService talks to an OpenAI-compatible chat endpoint (a local Ollama server
// by default) and turns free-form model replies into artifacts. Every
// operation issues exactly one chat completion and is strictly sequential.
type AIService struct {
	client *openai.Client
	model  string
}

func NewAIService(apiKey, model, endpoint string) *AIService {
	if model == "" {
		return &AIService{}
	}

	cfg := openai.DefaultConfig(apiKey)
	if endpoint != "" {
		cfg.BaseURL = endpoint
	}

	return &AIService{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (s *AIService) disabled() bool {
	return s.client == nil || s.model == ""
}

func (s *AIService) chat(ctx context.Context, prompt string) (string, error) {
	if s.disabled() {
		return "", ErrChatUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, chatTimeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", fmt.Errorf("request chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// GenerateQuestions creates practice questions from study content and banks
// every question of a successful result in the session.
func (s *AIService) GenerateQuestions(ctx context.Context, sess *Session, content string, numQuestions int, questionType, difficulty string) (models.Artifact, error) {
	reply, err := s.chat(ctx, buildQuestionsPrompt(content, numQuestions, questionType, difficulty))
	if err != nil {
		return nil, err
	}
	artifact := ParseArtifact(reply)
	sess.AddQuestions(artifact)
	return artifact, nil
}

// GenerateByBloom creates questions targeting one cognitive level of Bloom's
// taxonomy for a topic.
func (s *AIService) GenerateByBloom(ctx context.Context, topic, bloomLevel string) (models.Artifact, error) {
	reply, err := s.chat(ctx, buildBloomPrompt(topic, bloomLevel))
	if err != nil {
		return nil, err
	}
	return ParseArtifact(reply), nil
}

// CreatePracticeExam builds a full sectioned exam over the given topics and
// records a successful result in the session's quiz history.
func (s *AIService) CreatePracticeExam(ctx context.Context, sess *Session, topics []string, durationMinutes int) (models.Artifact, error) {
	reply, err := s.chat(ctx, buildExamPrompt(topics, durationMinutes))
	if err != nil {
		return nil, err
	}
	artifact := ParseArtifact(reply)
	sess.AddExam(artifact)
	return artifact, nil
}

// GenerateFlashcards creates front/back study cards from content.
func (s *AIService) GenerateFlashcards(ctx context.Context, content string, numCards int) (models.Artifact, error) {
	reply, err := s.chat(ctx, buildFlashcardsPrompt(content, numCards))
	if err != nil {
		return nil, err
	}
	return ParseArtifact(reply), nil
}

// CheckAnswer grades a student answer against the expected answer.
func (s *AIService) CheckAnswer(ctx context.Context, question, studentAnswer, expectedAnswer string) (models.Artifact, error) {
	reply, err := s.chat(ctx, buildCheckAnswerPrompt(question, studentAnswer, expectedAnswer))
	if err != nil {
		return nil, err
	}
	return ParseArtifact(reply), nil
}
