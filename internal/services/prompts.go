package services

import (
	"encoding/json"
	"fmt"
)

// The builders below render the instruction sent to the model for each
// operation. They are pure string templating: parameter values are embedded
// verbatim and every prompt carries a literal example of the JSON shape the
// model should return. Nothing is validated or escaped here; a malformed
// parameter only ever confuses the model, not the builder.

func buildQuestionsPrompt(content string, numQuestions int, questionType, difficulty string) string {
	return fmt.Sprintf(`Generate exam practice questions from this content.

Content:
%s

Number of Questions: %d
Question Type: %s
Difficulty: %s

Return JSON:
{
    "topic": "main topic covered",
    "difficulty": "%s",
    "questions": [
        {
            "id": 1,
            "type": "question type",
            "bloom_level": "cognitive level",
            "question": "question text",
            "options": ["A) option", "B) option", "C) option", "D) option"],
            "correct_answer": "A",
            "explanation": "why this is correct",
            "common_mistakes": ["wrong answers students pick"],
            "hint": "helpful hint",
            "points": 10
        }
    ],
    "total_points": 50,
    "time_estimate": "minutes to complete",
    "study_tips": ["tips based on question topics"]
}`, content, numQuestions, questionType, difficulty, difficulty)
}

func buildBloomPrompt(topic, bloomLevel string) string {
	return fmt.Sprintf(`Generate questions at %s cognitive level for this topic.

Topic: %s
Bloom's Level: %s

Return JSON:
{
    "topic": "%s",
    "bloom_level": "%s",
    "level_description": "what this level tests",
    "action_verbs": ["verbs used at this level"],
    "questions": [
        {
            "id": 1,
            "question": "question testing %s",
            "type": "appropriate question type",
            "answer_key": "expected answer",
            "grading_rubric": "how to evaluate",
            "sample_excellent_answer": "what a great answer looks like"
        }
    ],
    "progression": {
        "prerequisite_level": "level before this",
        "next_level": "level after this",
        "how_to_upgrade": "how to make question harder"
    }
}`, bloomLevel, topic, bloomLevel, topic, bloomLevel, bloomLevel)
}

func buildExamPrompt(topics []string, durationMinutes int) string {
	topicList := jsonList(topics)
	return fmt.Sprintf(`Create a practice exam.

Topics: %s
Duration: %d minutes

Return JSON:
{
    "exam_info": {
        "title": "Practice Exam",
        "topics_covered": %s,
        "total_time": "%d minutes",
        "total_points": 100
    },
    "instructions": "exam instructions",
    "sections": [
        {
            "section": "Section A: Multiple Choice",
            "points": 30,
            "time_allocation": "15 minutes",
            "questions": [
                {
                    "number": 1,
                    "question": "question text",
                    "options": ["A)", "B)", "C)", "D)"],
                    "points": 5,
                    "answer": "A",
                    "topic": "which topic"
                }
            ]
        }
    ],
    "answer_key": [
        {
            "question": 1,
            "answer": "A",
            "explanation": "why"
        }
    ],
    "grading_scale": {
        "A": "90-100",
        "B": "80-89",
        "C": "70-79",
        "D": "60-69",
        "F": "below 60"
    },
    "study_recommendations": ["based on exam content"]
}`, topicList, durationMinutes, topicList, durationMinutes)
}

func buildFlashcardsPrompt(content string, numCards int) string {
	return fmt.Sprintf(`Generate study flashcards from this content.

Content:
%s

Number of Cards: %d

Return JSON:
{
    "topic": "main topic",
    "flashcards": [
        {
            "id": 1,
            "front": "question/term/prompt",
            "back": "answer/definition/explanation",
            "category": "subtopic",
            "difficulty": "easy/medium/hard",
            "memory_tip": "how to remember"
        }
    ],
    "study_suggestions": {
        "spaced_repetition": "recommended schedule",
        "grouping": "how to organize cards",
        "review_order": "suggested sequence"
    }
}`, content, numCards)
}

func buildCheckAnswerPrompt(question, studentAnswer, expectedAnswer string) string {
	return fmt.Sprintf(`Evaluate this student answer.

Question: %s
Student's Answer: %s
Expected Answer: %s

Return JSON:
{
    "question": "%s",
    "student_answer": "%s",
    "correct_answer": "%s",
    "evaluation": {
        "is_correct": true,
        "score": 85,
        "max_score": 100
    },
    "feedback": {
        "strengths": ["what's good"],
        "weaknesses": ["what's missing"],
        "misconceptions": ["any misunderstandings"],
        "specific_corrections": ["what to fix"]
    },
    "improved_answer": "how to write a better answer",
    "related_concepts": ["concepts to review"],
    "encouragement": "motivational feedback"
}`, question, studentAnswer, expectedAnswer, question, studentAnswer, expectedAnswer)
}

// jsonList renders a string slice as a JSON array literal for embedding in a
// prompt. Marshalling a string slice cannot fail.
func jsonList(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}
