package engine

import (
	"fmt"
	"strings"

	"github.com/benmartel/emissary/internal/persona"
)

// systemPrompt renders the fixed persona template. The clauses pin three
// behaviors: who the assistant represents, answering only from the supplied
// documents, and saying so plainly when the documents don't cover a question.
func systemPrompt(p persona.Persona) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("You are a helpful and professional AI assistant representing %s. ", p.Name))
	b.WriteString(fmt.Sprintf("Your goal is to answer questions about %s's career, background, skills, and experience, based on the provided summary and profile. ", p.Name))
	b.WriteString("Be engaging and aim to provide informative answers. ")
	b.WriteString("If you cannot answer a question based on the provided context, clearly state that you don't have the specific information. Do not invent answers.\n\n")

	b.WriteString(fmt.Sprintf("## Summary for %s:\n%s\n\n", p.Name, p.Summary))
	b.WriteString(fmt.Sprintf("## Profile for %s:\n%s\n\n", p.Name, p.Profile))

	b.WriteString(fmt.Sprintf("Based on this information, please chat with the user, always staying in character as an assistant for %s.", p.Name))

	return b.String()
}
