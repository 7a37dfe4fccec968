package verify

import (
	"fmt"

	"memoscan/internal/model"
)

// fieldPrompt asks the oracle to compare one AI-generated field value
// against selected source context, judging semantic equivalence rather
// than exact string match, and to answer in a fixed JSON schema.
func fieldPrompt(field model.FieldID, aiValue, context string) string {
	return fmt.Sprintf(`You are verifying AI-generated data against source documents using contextual understanding.

FIELD TO VERIFY: %s
AI-GENERATED VALUE: "%s"

RELEVANT SOURCE CONTEXT:
%s

TASK: Verify if the AI value is correct based on the source context. Use semantic understanding - values don't need to match exactly if they mean the same thing contextually.

EXAMPLES:
- If AI says "John Smith" and source says "J. Smith" or "John Smith, CEO" -> CORRECT
- If AI says "San Francisco, CA" and source says "SF" or "San Francisco" -> CORRECT
- If AI says "$5M" and source says "5 million dollars" -> CORRECT
- If AI says "2020" and source shows founding timeline in 2020 -> CORRECT

Return JSON only:
{
  "accuracy_score": 0-100,
  "source_value": "what the source actually contains (or 'Not found')",
  "citation": "specific quote from source that supports your finding",
  "contextual_match": true/false
}`, field, aiValue, context)
}

// sectionPrompt asks the oracle to fact-check one memo section against
// selected source context, reporting contradictions rather than
// paraphrase differences.
func sectionPrompt(section model.SectionID, excerpt, context string) string {
	return fmt.Sprintf(`You are fact-checking an investment memo section against source documents using contextual understanding.

MEMO SECTION: %s
MEMO CONTENT:
%s

SOURCE DOCUMENTS CONTEXT:
%s

TASK: Find any factually incorrect information in the memo by comparing it contextually to the source documents. Use semantic understanding - look for contradictions in meaning, not just exact word matches.

IMPORTANT:
- If no factual errors are found, set accuracy_score to 85+ and wrong_info to "None"
- Look for contextual contradictions (e.g., different years, amounts, names, stages)
- Consider synonymous terms as correct (e.g., "CEO" vs "Chief Executive")

Return JSON only:
{
  "accuracy_score": 0-100,
  "wrong_info": "specific incorrect information found, or 'None' if no errors",
  "correct_info": "what the source documents actually say, or 'Verified correct' if no errors",
  "citation": "specific quote from source that contradicts or supports the memo"
}`, section, excerpt, context)
}
