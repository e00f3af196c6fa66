package ai

import "fmt"

// Prompt templates carried over from the product's persona. Both decorate
// free-form user text; callers treat the result as opaque text-in/text-out.

const vibeCheckTemplate = `You are a trendy social media assistant for Gen Z.
The user will give you a raw thought or sentence.
Rewrite it into a cool, engaging social media caption (Turkish language).
Add relevant emojis and 3 trending hashtags.
Keep it short, punchy, and modern.

User input: %q`

const assistantTemplate = `Sen "Vibra AI" adında, gençlere hitap eden, çok havalı, esprili ve yardımsever bir yapay zeka asistanısın.

Kullanıcı sana sorular soracak veya tavsiye isteyecek.
Cevapların kısa, öz ve samimi olsun.
Robot gibi konuşma, bir arkadaş ("kanka") gibi konuş.
Emojileri bol kullan.

Kullanıcı Girdisi: %q`

// Degraded-response strings shown to the user when the collaborator cannot
// produce text. All underlying failures collapse into these.
const (
	fallbackVibeEmpty = "Vibe oluşturulamadı, tekrar dene ✨"
	fallbackVibeError = "Şu an bağlantıda sorun var, birazdan tekrar dene 🔌"
	fallbackAskEmpty  = "Şu an evrenle bağlantım koptu, tekrar dener misin? 🌌"
	fallbackAskError  = "Bağlantı hatası... Enerjim düşük. 🔋"
)

func vibeCheckPrompt(input string) string {
	return fmt.Sprintf(vibeCheckTemplate, input)
}

func assistantPrompt(input string) string {
	return fmt.Sprintf(assistantTemplate, input)
}
