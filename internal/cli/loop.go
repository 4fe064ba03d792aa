package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"examgen/internal/models"
	"examgen/internal/services"
	"examgen/internal/ui"
)

// generator is the slice of AIService the loop depends on; tests substitute a
// stub so no chat endpoint is needed.
type generator interface {
	GenerateQuestions(ctx context.Context, sess *services.Session, content string, numQuestions int, questionType, difficulty string) (models.Artifact, error)
	GenerateByBloom(ctx context.Context, topic, bloomLevel string) (models.Artifact, error)
	CreatePracticeExam(ctx context.Context, sess *services.Session, topics []string, durationMinutes int) (models.Artifact, error)
	GenerateFlashcards(ctx context.Context, content string, numCards int) (models.Artifact, error)
	CheckAnswer(ctx context.Context, question, studentAnswer, expectedAnswer string) (models.Artifact, error)
}

const contentSentinel = "EOF"

// runLoop drives the interactive menu until the user exits or input runs out.
// One operation issues one blocking chat call; failures are reported and the
// loop continues.
func runLoop(in io.Reader, out io.Writer, gen generator, sess *services.Session, model string) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fmt.Fprintln(out, ui.Banner(model))

	for {
		fmt.Fprintln(out, ui.Menu())
		fmt.Fprintln(out, ui.Dim(fmt.Sprintf("Question bank: %d questions | Exams: %d", len(sess.QuestionBank), len(sess.QuizHistory))))

		choice, ok := promptLine(scanner, out, "Select option")
		if !ok || choice == "0" || choice == "" {
			fmt.Fprintln(out, ui.Label("Goodbye! Ace that exam!"))
			return nil
		}

		switch choice {
		case "1":
			generateQuestions(scanner, out, gen, sess)
		case "2":
			generateByBloom(scanner, out, gen)
		case "3":
			createPracticeExam(scanner, out, gen, sess)
		case "4":
			generateFlashcards(scanner, out, gen)
		case "5":
			checkAnswer(scanner, out, gen)
		case "6":
			viewBank(out, sess)
		default:
			// Unrecognized choice: redisplay the menu.
		}
	}
}

func generateQuestions(scanner *bufio.Scanner, out io.Writer, gen generator, sess *services.Session) {
	content := readContent(scanner, out)
	num := promptInt(scanner, out, "Number of questions", 5)
	qtype := promptDefault(scanner, out, "Question type", "Mixed")
	difficulty := promptDefault(scanner, out, "Difficulty (easy/medium/hard)", "medium")

	fmt.Fprintln(out, ui.Dim("Generating questions..."))
	artifact, err := gen.GenerateQuestions(context.Background(), sess, content, num, qtype, difficulty)
	if err != nil {
		fmt.Fprintln(out, ui.Error(err))
		return
	}
	fmt.Fprintln(out, ui.Panel("Generated Questions", artifact))
}

func generateByBloom(scanner *bufio.Scanner, out io.Writer, gen generator) {
	topic := promptDefault(scanner, out, "Topic", "")
	fmt.Fprintln(out, ui.Dim("Bloom's levels: "+strings.Join(models.BloomLevels, ", ")))
	level := promptDefault(scanner, out, "Bloom's level", "Apply")

	fmt.Fprintln(out, ui.Dim("Generating questions..."))
	artifact, err := gen.GenerateByBloom(context.Background(), topic, level)
	if err != nil {
		fmt.Fprintln(out, ui.Error(err))
		return
	}
	fmt.Fprintln(out, ui.Panel(level+" Level Questions", artifact))
}

func createPracticeExam(scanner *bufio.Scanner, out io.Writer, gen generator, sess *services.Session) {
	raw := promptDefault(scanner, out, "Topics (comma-separated)", "")
	topics := splitTopics(raw)
	duration := promptInt(scanner, out, "Duration (minutes)", 60)

	fmt.Fprintln(out, ui.Dim("Building exam..."))
	artifact, err := gen.CreatePracticeExam(context.Background(), sess, topics, duration)
	if err != nil {
		fmt.Fprintln(out, ui.Error(err))
		return
	}
	fmt.Fprintln(out, ui.Panel("Practice Exam", artifact))
}

func generateFlashcards(scanner *bufio.Scanner, out io.Writer, gen generator) {
	content := readContent(scanner, out)
	num := promptInt(scanner, out, "Number of flashcards", 10)

	fmt.Fprintln(out, ui.Dim("Generating flashcards..."))
	artifact, err := gen.GenerateFlashcards(context.Background(), content, num)
	if err != nil {
		fmt.Fprintln(out, ui.Error(err))
		return
	}
	fmt.Fprintln(out, ui.Panel("Flashcards", artifact))
	fmt.Fprintln(out, ui.Dim("Suggested review intervals (days): "+formatIntervals(services.SuggestSchedule(6))))
}

func checkAnswer(scanner *bufio.Scanner, out io.Writer, gen generator) {
	question := promptDefault(scanner, out, "Question", "")
	student := promptDefault(scanner, out, "Your answer", "")
	expected := promptDefault(scanner, out, "Correct answer", "")

	fmt.Fprintln(out, ui.Dim("Evaluating answer..."))
	artifact, err := gen.CheckAnswer(context.Background(), question, student, expected)
	if err != nil {
		fmt.Fprintln(out, ui.Error(err))
		return
	}
	fmt.Fprintln(out, ui.Panel("Answer Evaluation", artifact))
}

func viewBank(out io.Writer, sess *services.Session) {
	recent := sess.RecentQuestions(5)
	if len(recent) == 0 {
		fmt.Fprintln(out, ui.Dim("No questions in bank."))
		return
	}
	for i, entry := range recent {
		text := models.QuestionText(entry)
		if text == "" {
			text = "N/A"
		}
		fmt.Fprintf(out, "  %d: %s\n", i+1, truncate(text, 60))
	}
}

// readContent collects study content, either extracted from a PDF or pasted
// line by line until the sentinel.
func readContent(scanner *bufio.Scanner, out io.Writer) string {
	path := promptDefault(scanner, out, "PDF file (leave empty to paste text)", "")
	if path != "" {
		text, err := services.ReadPDFText(path)
		if err != nil {
			fmt.Fprintln(out, ui.Error(err))
		} else {
			return text
		}
	}

	fmt.Fprintln(out, ui.Dim("Paste study content (end with '"+contentSentinel+"'):"))
	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == contentSentinel {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func promptLine(scanner *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprintf(out, "%s: ", ui.Label(label))
	if !scanner.Scan() {
		fmt.Fprintln(out)
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func promptDefault(scanner *bufio.Scanner, out io.Writer, label, fallback string) string {
	suffix := ""
	if fallback != "" {
		suffix = " [" + fallback + "]"
	}
	val, ok := promptLine(scanner, out, label+suffix)
	if !ok || val == "" {
		return fallback
	}
	return val
}

func promptInt(scanner *bufio.Scanner, out io.Writer, label string, fallback int) int {
	val := promptDefault(scanner, out, label, strconv.Itoa(fallback))
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func splitTopics(raw string) []string {
	var topics []string
	for _, part := range strings.Split(raw, ",") {
		topics = append(topics, strings.TrimSpace(part))
	}
	return topics
}

func formatIntervals(days []int) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
