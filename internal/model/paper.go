package model

// QuestionType enumerates the supported kinds of questions.
type QuestionType string

const (
	QuestionTypeMCQ         QuestionType = "mcq"
	QuestionTypeNumerical   QuestionType = "numerical"
	QuestionTypeDescriptive QuestionType = "descriptive"
)

// Question is a single entry of a paper. Optional per-type fields are
// pointers so a missing field is distinguishable from a zero value;
// renderers degrade gracefully when they are absent.
type Question struct {
	Type          QuestionType `json:"type"`
	Text          string       `json:"text"`
	Options       []string     `json:"options,omitempty"`
	CorrectOption *int         `json:"correctOption,omitempty"`
	Answer        *string      `json:"answer,omitempty"`
	Solution      *string      `json:"solution,omitempty"`
	Images        []string     `json:"images,omitempty"`
}

// HasOptions reports whether the question carries a renderable MCQ option
// block. A non-MCQ type or an empty options list yields false.
func (q Question) HasOptions() bool {
	return q.Type == QuestionTypeMCQ && len(q.Options) > 0
}

// AnswerText resolves the answer-key cell text for the question:
// the letter of the correct option for a valid MCQ, the literal answer
// field otherwise, or empty when neither is usable.
func (q Question) AnswerText() string {
	if q.Type == QuestionTypeMCQ {
		if q.CorrectOption != nil && *q.CorrectOption >= 0 && *q.CorrectOption < len(q.Options) {
			return string(rune('A' + *q.CorrectOption))
		}
		return ""
	}
	if q.Answer != nil {
		return *q.Answer
	}
	return ""
}

// HasSolution reports whether the question contributes a solutions block.
func (q Question) HasSolution() bool {
	return q.Solution != nil && *q.Solution != ""
}

// Paper is the validated, immutable input to one generation call.
type Paper struct {
	Title        string
	Subject      string
	Date         string
	Duration     string
	TotalMarks   string
	Instructions []string
	Questions    []Question
	Logo         string
}

// Fallback literals for optional paper fields.
const (
	DefaultTitle   = "Question Paper"
	DefaultSubject = "General"
	DefaultValue   = "N/A"
)

// GeneratePaperRequest is the JSON payload for the paper generation endpoint.
// Only questions is required; it may be empty but must be present.
type GeneratePaperRequest struct {
	Title        string     `json:"title" binding:"omitempty,max=300"`
	Subject      string     `json:"subject" binding:"omitempty,max=200"`
	Date         string     `json:"date" binding:"omitempty,max=100"`
	Duration     string     `json:"duration" binding:"omitempty,max=100"`
	TotalMarks   string     `json:"totalMarks" binding:"omitempty,max=100"`
	Instructions []string   `json:"instructions" binding:"omitempty,dive,max=1000"`
	Questions    []Question `json:"questions" binding:"required"`
	Logo         string     `json:"logo" binding:"omitempty,max=500"`
}

// ToPaper converts the request into a Paper, applying the documented
// fallback literals for absent optional fields.
func (r GeneratePaperRequest) ToPaper() Paper {
	p := Paper{
		Title:        r.Title,
		Subject:      r.Subject,
		Date:         r.Date,
		Duration:     r.Duration,
		TotalMarks:   r.TotalMarks,
		Instructions: r.Instructions,
		Questions:    r.Questions,
		Logo:         r.Logo,
	}
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	if p.Subject == "" {
		p.Subject = DefaultSubject
	}
	if p.Date == "" {
		p.Date = DefaultValue
	}
	if p.Duration == "" {
		p.Duration = DefaultValue
	}
	if p.TotalMarks == "" {
		p.TotalMarks = DefaultValue
	}
	return p
}
