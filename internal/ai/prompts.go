package ai

import "fmt"

// The two prompts are independent: the recipe prompt never references the
// description response, so the calls can run concurrently.

const descriptionPromptTemplate = `You are the voice of a handmade candle studio. A customer wants a custom candle and described the mood they are after as: %q. They chose the size %q.

Write a short, evocative product description for their candle. The description must include a name for the candle formatted exactly as:

**Candle Name:** "<Name>"

Then describe the top, middle, and base fragrance notes as free text in the studio's warm, personal tone.`

const recipePromptTemplate = `You are a master chandler composing a pour sheet. A customer described the scent they want as: %q, for a candle of size %q.

Respond with ONLY a JSON object, no prose, no markdown, in exactly this shape:

{"essences": ["<N> parts <material>", ...], "waxType": "<wax>", "wickType": "<wick>"}

Each essence must be a string describing a fragrance material and its parts, for example "3 parts Sandalwood". Choose a wax and wick appropriate for the size.`

// DescriptionPrompt builds the customer-voice prompt (Call A).
func DescriptionPrompt(prompt, size string) string {
	return fmt.Sprintf(descriptionPromptTemplate, prompt, size)
}

// RecipePrompt builds the recipe-voice prompt (Call B), constrained to emit JSON.
func RecipePrompt(prompt, size string) string {
	return fmt.Sprintf(recipePromptTemplate, prompt, size)
}
