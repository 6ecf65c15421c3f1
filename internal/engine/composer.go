package engine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/healthbot/backend/internal/knowledge"
)

// BuildPrompt assembles the single instruction string sent to the generation
// provider: persona, formatting rules, the full condition catalog, then the
// verbatim user message. Pure string assembly; identical inputs produce
// byte-identical prompts.
//
// The whole catalog is embedded on every call. Fine at the current size;
// a larger catalog would need a relevance filter before this becomes a
// token-budget problem.
func BuildPrompt(message, language string, kb *knowledge.Base) string {
	var b strings.Builder

	b.WriteString("You are a helpful health assistant for rural and semi-urban populations.\n")
	fmt.Fprintf(&b, "User's preferred language: %s\n\n", language)

	b.WriteString(`IMPORTANT FORMATTING RULES:
- Always answer in clear, structured bullet points
- Use emojis for visual appeal and easy reading
- Avoid long paragraphs - break information into digestible points
- Use headers and subheaders for organization
- Include actionable steps and clear next steps
- Make information culturally appropriate for rural/semi-urban areas

RESPONSE FORMAT:
## 🏥 [Main Topic]
**Your Question:** [Brief summary]

### 📋 [Section 1]
• [Bullet point 1]
• [Bullet point 2]
• [Bullet point 3]

### 💡 [Section 2]
• [Actionable advice 1]
• [Actionable advice 2]

### ⚠️ [Important Notes]
• [Warning or important info]

### 📞 [Next Steps]
• [What to do next]

`)

	fmt.Fprintf(&b, "Available disease information: %s\n\n", serializeCatalog(kb))
	fmt.Fprintf(&b, "User message: %s", message)

	return b.String()
}

// serializeCatalog renders the catalog as indented JSON keyed by condition
// name. encoding/json sorts map keys, so the output is stable.
func serializeCatalog(kb *knowledge.Base) string {
	catalog := make(map[string]knowledge.Condition, kb.Len())
	for _, c := range kb.Conditions() {
		catalog[c.Name] = c
	}

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		// Condition contains only strings and string slices; marshalling
		// cannot fail for real inputs.
		return "{}"
	}

	return string(data)
}
