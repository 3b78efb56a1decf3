package tutor

import (
	"fmt"
	"strings"
)

// difficultyGuidance maps the 1-5 catalog difficulty to prompt wording.
func difficultyGuidance(level int) string {
	switch {
	case level <= 2:
		return "Foundational level. Check the meaning of terms and basic concepts. Keep numbers simple."
	case level == 3:
		return "Standard level. Check basic calculations and understanding of the core method."
	default:
		return "Advanced level. Check deep understanding and the ability to combine multiple ideas."
	}
}

// mathNotationRules keeps generated content readable without a formula
// renderer on the client.
const mathNotationRules = `FORMULA NOTATION:
- Fractions: 1/2 or (numerator)/(denominator)
- Square roots: sqrt(2)
- Powers: x^2
- Never use LaTeX notation ($, \frac, etc.)`

func TutorSystemPrompt(subject string) string {
	return fmt.Sprintf(`You are an expert high-school %s teacher. You produce study material that a student with no prior exposure can follow. You respond ONLY in the exact format the task requests, with no extra commentary.`, subject)
}

// BuildDiagnosticPrompt asks for count diagnostic questions in increasing
// difficulty, starting from basic terminology.
func BuildDiagnosticPrompt(subject, unitName string, difficultyLevel, count int) string {
	return fmt.Sprintf(`Unit: %s
Difficulty: %s

Write %d diagnostic questions to assess the student's current understanding of this unit.

RULES:
1. Order questions from easiest to hardest (the first checks a basic term or definition)
2. Each question must be answerable in free text
3. %s

Respond with a JSON array only:
[
  {
    "question": "the question text",
    "expected_answer": "the key points a correct answer must contain"
  }
]`, unitName, difficultyGuidance(difficultyLevel), count, mathNotationRules)
}

// BuildLecturePrompt asks for a short markdown lecture split into sections.
// Weak points from the diagnostic, when present, steer the emphasis.
func BuildLecturePrompt(subject, unitName, description string, difficultyLevel int, weakPoints []string) string {
	weakContext := ""
	if len(weakPoints) > 0 {
		weakContext = fmt.Sprintf("\n\nWEAK POINTS FROM THE DIAGNOSTIC:\n%s\nAddress these explicitly in the lecture.", strings.Join(weakPoints, "\n"))
	}

	return fmt.Sprintf(`Unit: %s
Description: %s
Difficulty: %s%s

Write a concise lecture for this unit that a student with no prior knowledge can follow.

STRUCTURE (use "## " markdown headings so the lecture splits into slides):
1. What this unit covers (one sentence, plain words)
2. Understanding from the ground up — explain in everyday language before introducing terms, always say why, include at least one concrete example
3. The 3 key points to remember, each with a short example
4. Common mistakes — 1 or 2 errors beginners make, and the correct way to think about them

STYLE:
- Short sentences
- Define every technical term in parentheses the first time it appears
- Use bullet points freely
- %s`, unitName, description, difficultyGuidance(difficultyLevel), weakContext, mathNotationRules)
}

// BuildPracticePrompt asks for one practice question, optionally biased
// toward previously identified weak points.
func BuildPracticePrompt(subject, unitName string, difficultyLevel int, weakPoints []string) string {
	weakContext := ""
	if len(weakPoints) > 0 {
		weakContext = fmt.Sprintf("\n\nPREVIOUSLY IDENTIFIED WEAK POINTS:\n%s\nWrite a question that helps the student overcome these.", strings.Join(weakPoints, "\n"))
	}

	return fmt.Sprintf(`Unit: %s
Difficulty: %s%s

Write one practice question for this unit.

RULES:
1. Be concrete about what to produce ("find the value of...", "explain why...")
2. Include every fact needed to answer in the question text
3. For calculations, keep the numbers simple
4. %s

Respond with a JSON object only:
{
  "question": "the question text",
  "expected_answer": "the key points a correct answer must contain (used as the grading rubric)"
}`, unitName, difficultyGuidance(difficultyLevel), weakContext, mathNotationRules)
}

// BuildEvaluationPrompt asks for a graded judgment of a free-text answer
// against the expected answer.
func BuildEvaluationPrompt(question, userAnswer, expectedAnswer string) string {
	return fmt.Sprintf(`Evaluate the student's answer to the following question.

QUESTION:
%s

EXPECTED ANSWER:
%s

STUDENT'S ANSWER:
%s

GRADING GUIDELINES:
1. Acknowledge partially correct reasoning even when the final answer is wrong
2. Be specific about what is right and what is missing
3. Include a word of encouragement
4. Suggest what to study next

Respond with a JSON object only:
{
  "is_correct": true or false (partially correct counts as false),
  "explanation": "detailed feedback in 3-5 sentences; if correct, explain why it is correct",
  "weak_point": "the gap in understanding this answer reveals, in one sentence (empty string if correct)"
}`, question, expectedAnswer, userAnswer)
}

// BuildCustomUnitPrompt asks the model to propose a new study unit for a
// learner-described topic.
func BuildCustomUnitPrompt(subject, query string) string {
	return fmt.Sprintf(`A student wants to study the following topic: %q
Subject: %s

Based on this learning need, propose a new study unit.

Respond with a JSON object only:
{
  "unit_name": "unit name (a few words)",
  "description": "one-line description of the unit",
  "difficulty_level": an integer from 1 to 5,
  "estimated_time": estimated study time in minutes,
  "prerequisite_concepts": ["prerequisite 1", "prerequisite 2"]
}`, query, subject)
}

// BuildSearchPrompt asks the model to match a free-text query to catalog
// subjects.
func BuildSearchPrompt(query string, subjects []string) string {
	return fmt.Sprintf(`A student is searching for something to study with the keyword %q.

From this subject list, suggest the 3 most relevant subjects and units:
%s

Respond with a JSON array only:
[
  {
    "subject": "subject name",
    "unit": "unit name",
    "reason": "why this unit matches (one sentence)"
  }
]`, query, strings.Join(subjects, ", "))
}
