package models

// Question types supported by the quiz form.
const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeText           = "text"
	QuestionTypeSlider         = "slider"
	QuestionTypeTags           = "tags"
)

// QuizQuestion describes one question of the fixed quiz form.
type QuizQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Min      int      `json:"min,omitempty"`
	Max      int      `json:"max,omitempty"`
	Step     int      `json:"step,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Required bool     `json:"required"`
}

// QuizAnswer holds one answer. Answer is a string, a number, or a list of
// tag strings depending on the question's declared type.
type QuizAnswer struct {
	QuestionID string      `json:"questionId"`
	Answer     interface{} `json:"answer"`
}

// QuizSubmission is the payload of a completed quiz.
type QuizSubmission struct {
	UserID  string       `json:"userId"`
	Answers []QuizAnswer `json:"answers"`
}

// QuizResult is a stored quiz submission.
type QuizResult struct {
	ID          string       `json:"id"`
	AnswerSetID string       `json:"answerSetId"`
	UserID      string       `json:"userId"`
	Answers     []QuizAnswer `json:"answers"`
	CompletedAt string       `json:"completedAt"`
	CreatedAt   string       `json:"createdAt"`
}

// QuizQuestions is the fixed question set presented to every user.
var QuizQuestions = []QuizQuestion{
	{
		ID:       "skills",
		Question: "What are your top 3 skills?",
		Type:     QuestionTypeText,
		Required: true,
	},
	{
		ID:       "career_goal",
		Question: "What is your ideal career goal?",
		Type:     QuestionTypeText,
		Required: true,
	},
	{
		ID:       "experience_level",
		Question: "What is your current experience level?",
		Type:     QuestionTypeMultipleChoice,
		Options:  []string{"Beginner", "Some Experience", "Intermediate", "Advanced", "Expert"},
		Required: true,
	},
	{
		ID:       "interests",
		Question: "Select areas that interest you:",
		Type:     QuestionTypeTags,
		Tags:     []string{"Technology", "Business", "Healthcare", "Arts", "Education", "Science", "Finance", "Marketing"},
		Required: true,
	},
	{
		ID:       "learning_style",
		Question: "How do you prefer to learn?",
		Type:     QuestionTypeMultipleChoice,
		Options:  []string{"Online courses", "Books", "Hands-on projects", "Mentorship", "Group learning"},
		Required: true,
	},
	{
		ID:       "time_commitment",
		Question: "How many hours per week can you dedicate to career development?",
		Type:     QuestionTypeSlider,
		Min:      1,
		Max:      20,
		Step:     1,
		Required: true,
	},
}

// AnswerString returns the answer for questionID as a string, or "" when
// absent or of a different shape.
func AnswerString(answers []QuizAnswer, questionID string) string {
	for _, a := range answers {
		if a.QuestionID != questionID {
			continue
		}
		if s, ok := a.Answer.(string); ok {
			return s
		}
		return ""
	}
	return ""
}

// AnswerTags returns the answer for questionID as a string list, or nil when
// absent or of a different shape. JSON decoding yields []interface{}, so both
// shapes are accepted.
func AnswerTags(answers []QuizAnswer, questionID string) []string {
	for _, a := range answers {
		if a.QuestionID != questionID {
			continue
		}
		switch v := a.Answer.(type) {
		case []string:
			return v
		case []interface{}:
			tags := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					tags = append(tags, s)
				}
			}
			return tags
		}
		return nil
	}
	return nil
}
