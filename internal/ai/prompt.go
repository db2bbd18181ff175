package ai

// The generated text is always Indonesian; the tone preference only shifts
// register and phrasing.
const baseSystem = "You are a helpful AI assistant. Always respond in Indonesian. Be clear and concise. Adapt your tone based on the provided preference."

const antiFiller = `Do NOT include generic intros/outros (e.g., "Tentu", "berikut", "diharapkan", "Semoga membantu"). Avoid hedging. Start directly with the substance. No apologies. No meta commentary. No closing remarks.`

// fallbackSuffix is appended to the system prompt of the single fallback
// call so the cheaper model stays inside its smaller budget.
const fallbackSuffix = " Keep the answer very concise. Aim for 120-180 words."

var toneInstructions = map[string]string{
	"normal":       "Use clear, straightforward, and natural tone.",
	"professional": "Use professional, business-like tone.",
	"friendly":     "Use warm, friendly, conversational tone.",
	"casual":       "Use casual, relaxed tone.",
	"formal":       "Use formal, precise tone.",
	"creative":     "Use creative, engaging tone.",
	"funny":        "Use witty, humorous tone that is light, tasteful, and concise.",
}

// toneStyleGuides carry the detailed phrasing/length/register rules, distinct
// from the short tone instruction above.
var toneStyleGuides = map[string]string{
	"normal":       "Write in plain Indonesian, concise sentences (10-18 words), neutral word choice, no exclamation unless necessary.",
	"formal":       "Use formal diction, precise terms, passive allowed sparingly, avoid colloquialisms, no emojis.",
	"friendly":     "Use warm and approachable language, second person (Anda/kamu) consistently, contractions allowed, light emojis optional (max 1 per paragraph).",
	"casual":       "Use relaxed, conversational tone, everyday words, short sentences (8-14 words), allow colloquial expressions lightly, no emojis by default.",
	"funny":        "Use tasteful humor, light wordplay, keep it concise, avoid sarcasm that could offend, no emojis.",
	"storytelling": "Use narrative flow with a clear arc (hook -> setup -> mini-conflict -> resolution). Keep paragraphs short. Use vivid but economical imagery. No moralizing endings.",
}

// BuildSystemPrompt concatenates, in fixed order: base instruction, tone
// instruction, tone style guide, anti-filler directive. Unknown tones fall
// back to the "normal" entries of both maps rather than failing.
func BuildSystemPrompt(tone string) string {
	instruction, ok := toneInstructions[tone]
	if !ok {
		instruction = toneInstructions["normal"]
	}
	styleGuide, ok := toneStyleGuides[tone]
	if !ok {
		styleGuide = toneStyleGuides["normal"]
	}
	return baseSystem + " " + instruction + " " + styleGuide + " " + antiFiller
}
