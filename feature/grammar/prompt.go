package grammar

import (
	"fmt"
	"strings"
)

// Tone modes supported by BuildTonePrompt.
const (
	ToneFormal   = "formal"
	ToneInformal = "informal"
)

// BuildGrammarPrompt builds the system and user messages for a grammar
// check batch. Entries are numbered one per line; the model is instructed
// to return exactly one corrected line per entry.
func BuildGrammarPrompt(language string, values []string) (system, user string) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `You are a grammar checker for %s translations. Your task is to check and correct grammar errors while preserving ALL placeholders, HTML tags, Markdown syntax, URLs, and escape sequences exactly as they appear.

HARD CONSTRAINTS:
1. NEVER change placeholders: %%{name}, %%{count}, {{count}}, {count}, %%s, %%d, %%1$s, etc.
2. NEVER change HTML tags, Markdown syntax, URLs, or escape sequences.
3. Keep the same meaning and tone (preserve formal vs informal, product terminology).
4. Prefer UI-friendly concise text.
5. If the text is already correct, return it unchanged.
`, language)

	if isGerman(language) {
		sb.WriteString(`
GERMAN-SPECIFIC CHECKS:
- Check clause order and verb-final position in subordinate clauses.
- Check comma rules (including "dass", relative clauses, infinitive clauses).
- Check agreement (case, number, gender).
- Ensure consistent "Sie" forms and capitalization.
- Avoid overly long nested sentences; split only when clearly better.
`)
	}

	sb.WriteString("\nFor each entry, return ONLY the corrected text (or original if no changes needed). No explanations, no commentary.")

	return sb.String(), numberedEntries(
		"Check and correct the following translation entries. Return each corrected entry on a new line, in the same order:",
		values,
	)
}

// BuildTonePrompt builds the system and user messages for a tone
// adjustment batch. Mode must be ToneFormal or ToneInformal.
func BuildTonePrompt(language, mode string, values []string) (system, user string, err error) {
	var instruction string
	switch mode {
	case ToneFormal:
		instruction = "Convert all text to formal German using 'Sie' form. Use formal verb forms, formal pronouns (Sie, Ihnen, Ihr), and formal capitalization."
	case ToneInformal:
		instruction = "Convert all text to informal German using 'Du' form. Use informal verb forms, informal pronouns (du, dir, dein), and informal capitalization."
	default:
		return "", "", fmt.Errorf("invalid tone mode: %s", mode)
	}

	system = fmt.Sprintf(`You are a tone adjuster for %s translations. Your task is to adjust the tone of the text while preserving ALL placeholders, HTML tags, Markdown syntax, URLs, and escape sequences exactly as they appear.

HARD CONSTRAINTS:
1. NEVER change placeholders: %%{name}, %%{count}, {{count}}, {count}, %%s, %%d, %%1$s, etc.
2. NEVER change HTML tags, Markdown syntax, URLs, or escape sequences.
3. Keep the same meaning and product terminology.
4. Prefer UI-friendly concise text.
5. If the text already has the desired tone, return it unchanged.

TONE ADJUSTMENT:
%s

For each entry, return ONLY the adjusted text (or original if no changes needed). No explanations, no commentary.`, language, instruction)

	user = numberedEntries(
		fmt.Sprintf("Adjust the tone of the following %s translation entries to %s. Return each adjusted entry on a new line, in the same order:", language, mode),
		values,
	)
	return system, user, nil
}

func numberedEntries(header string, values []string) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n\n")
	for i, value := range values {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, value)
	}
	return sb.String()
}

func isGerman(language string) bool {
	switch strings.ToLower(language) {
	case "de", "de-ch":
		return true
	}
	return false
}
