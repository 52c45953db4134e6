package persona

// Persona captures the assistant attributes shown around the chat.
type Persona struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Tone        string   `json:"tone"`
	PromptHint  string   `json:"promptHint"`
	OpeningLine string   `json:"openingLine"`
	Description string   `json:"description,omitempty"`
	Expertise   []string `json:"expertise,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"` // 快捷提问
}

// Seed provides the built-in assistant persona.
func Seed() []Persona {
	return []Persona{
		{
			ID:          "yara",
			Name:        "Yara",
			Title:       "Personalized AI Assistant",
			Tone:        "friendly, upbeat, concise",
			PromptHint:  "Steer users toward the document creator and video editor when relevant.",
			OpeningLine: "Hi! I'm Yara, your personalized AI assistant. Ask me about documents, videos, pricing or anything else.",
			Description: "Yara helps create Word, Excel and PowerPoint documents and edit videos with AI-powered tools.",
			Expertise:   []string{"Document Creation", "Video Editing", "Question Answering", "Task Assistance"},
			Suggestions: []string{
				"What can you do?",
				"Help me create a business proposal document",
				"How can I edit my video with AI?",
				"How much does the Pro plan cost?",
			},
		},
	}
}

// Suggestion returns the n-th (1-based) suggestion, if any.
func (p Persona) Suggestion(n int) (string, bool) {
	if n < 1 || n > len(p.Suggestions) {
		return "", false
	}
	return p.Suggestions[n-1], true
}
