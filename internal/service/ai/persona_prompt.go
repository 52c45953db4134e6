package ai

import (
	"fmt"
	"strings"

	"github.com/zhouzirui/yara-ai/internal/model/persona"
)

// PromptTemplate defines the structure for persona prompts
type PromptTemplate struct {
	SystemPrompt string
	ContextRules []string
}

// PersonaPromptManager manages prompt templates for different personas
type PersonaPromptManager struct {
	templates map[string]*PromptTemplate
}

// NewPersonaPromptManager creates a new prompt manager with default templates
func NewPersonaPromptManager() *PersonaPromptManager {
	return &PersonaPromptManager{
		templates: map[string]*PromptTemplate{
			"yara": {
				SystemPrompt: "You are Yara, the assistant of the Yara AI Platform. You help people create documents and edit videos.",
				ContextRules: []string{
					"Point document questions to the AI Document Creator",
					"Point video questions to the AI Video Editor",
					"Mention the free tier when pricing comes up",
				},
			},
		},
	}
}

// BuildSystemPrompt creates the system prompt for the persona, falling back to a
// generic prompt for personas without a template.
func (pm *PersonaPromptManager) BuildSystemPrompt(p persona.Persona) string {
	tmpl, ok := pm.templates[p.ID]
	if !ok {
		return fmt.Sprintf("You are %s, %s. Tone: %s. %s", p.Name, p.Title, p.Tone, p.PromptHint)
	}

	var b strings.Builder
	b.WriteString(tmpl.SystemPrompt)
	fmt.Fprintf(&b, "\n\nName: %s\nTitle: %s\nTone: %s", p.Name, p.Title, p.Tone)
	if len(tmpl.ContextRules) > 0 {
		b.WriteString("\n\nRules:\n- ")
		b.WriteString(strings.Join(tmpl.ContextRules, "\n- "))
	}
	if p.OpeningLine != "" {
		b.WriteString("\n\nOpening line: ")
		b.WriteString(p.OpeningLine)
	}
	return b.String()
}
