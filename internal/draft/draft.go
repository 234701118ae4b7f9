// Package draft turns a transcript into structured ticket text and recovers
// the {header, description} object from the model's free-text reply.
package draft

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"epos-support-agent/internal/models"
)

// SystemInstruction is the fixed system message for the drafting completion.
const SystemInstruction = "Convert the transcription JSON into a clean HTML template with sections for Full Text and Segments."

const promptTemplate = `
You are an assistant that creates **professional JIRA tickets**.

Take the following issue report (transcription from audio):

"%s"

Generate:
1. **Header** → A short, clear title (max 10 words).
2. **Description** → Well-structured with:
   - ✅ Summary section
   - 🔎 Steps to Reproduce (numbered list)
   - ⚠️ Impact
   - 🛠️ Suggested Fix / Next Steps
   - Use **bold** for key terms
   - Add emojis/icons where helpful for readability

Return output strictly in **HTML TEMPLATE AS JSON** with fields: header, description.
`

// Prompt embeds the raw transcript into the drafting prompt.
func Prompt(transcript string) string {
	return fmt.Sprintf(promptTemplate, transcript)
}

var (
	fenceOpen  = regexp.MustCompile("(?i)^```json")
	fenceClose = regexp.MustCompile("(?i)```$")

	// quotedValue matches a JSON string value between a colon and a closing
	// quote followed by a comma or brace, across line breaks.
	quotedValue = regexp.MustCompile(`(?s):\s*"\s*(.*?)"\s*([,}])`)

	rawNewline = regexp.MustCompile(`\n\s*`)
)

// Parse normalizes the model's reply and decodes it into a DraftContent.
// Models routinely wrap the JSON in a markdown fence and leave literal
// newlines inside quoted values; both are repaired before the strict parse.
// Anything still unparseable yields nil, never an error: a malformed draft
// degrades to an absent one.
func Parse(reply string) *models.DraftContent {
	cleaned := fenceOpen.ReplaceAllString(reply, "")
	cleaned = fenceClose.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	cleaned = quotedValue.ReplaceAllStringFunc(cleaned, func(match string) string {
		parts := quotedValue.FindStringSubmatch(match)
		fixed := rawNewline.ReplaceAllString(parts[1], `\n`)
		return `: "` + fixed + `"` + parts[2]
	})

	var content models.DraftContent
	if err := json.Unmarshal([]byte(cleaned), &content); err != nil {
		return nil
	}

	return &content
}
