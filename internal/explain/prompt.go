package explain

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a patient math teacher preparing students for an admissions screening test. Explain how to solve one multiple-choice question so a student can follow every step.`

func buildUserMessage(p Problem) string {
	var b strings.Builder

	if p.Concept != "" {
		b.WriteString(fmt.Sprintf("Topic: %s\n", p.Concept))
	}
	b.WriteString("Question:\n")
	b.WriteString(p.Text)
	b.WriteString("\n")

	if len(p.Options) > 0 {
		b.WriteString("\nOptions:\n")
		for _, o := range p.Options {
			b.WriteString(fmt.Sprintf("(%s) %s\n", o.Letter, o.Text))
		}
	}
	b.WriteString(fmt.Sprintf("\nCorrect answer: %s\n", p.Answer))

	b.WriteString(`
Instructions:
1. Solve the question in short numbered steps. One calculation per step.
2. Finish at the correct answer given above. Do not pick a different option.
3. Write the final answer exactly as the matching option shows it.
4. Add one tip about the shortcut or the usual mistake.
5. Use plain text for all math. Write "Rs." for rupees, * for multiplication and / for division.`)

	return b.String()
}
