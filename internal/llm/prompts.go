package llm

import (
	"fmt"
	"strings"
)

// DefaultInstruction steers the model when the caller supplies no context.
const DefaultInstruction = "Make it more professional and impactful."

// BuildSuggestionPrompt renders the single-turn instruction for one field
// suggestion.
func BuildSuggestionPrompt(input SuggestInput) string {
	instruction := strings.TrimSpace(input.Context)
	if instruction == "" {
		instruction = DefaultInstruction
	}
	return fmt.Sprintf(`You are a professional resume editor.
Improve the following text for a resume's %q section.
Context/Instruction: %s

Original Text:
%q

Provide only the improved text, nothing else.`, input.Field, instruction, input.CurrentText)
}
