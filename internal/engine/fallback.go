package engine

import "fmt"

// fallbackMarker is part of the user-visible contract: every degraded reply
// carries it in the status section.
const fallbackMarker = "AI service temporarily unavailable"

const fallbackDisclaimer = "**Note:** This is general guidance only. Always consult a healthcare provider for proper diagnosis and treatment."

// FallbackResponse produces the fixed safety reply used whenever generation
// is unavailable, whether the provider was never configured or a call
// failed. Same section template as the generated responses, so the caller
// sees one response shape regardless of the internal path.
func FallbackResponse(message string) string {
	return fmt.Sprintf(`## 🏥 Health Assistant Response

**Your Question:** "%s"

### ⚠️ Current Status
• %s
• Providing general health guidance

### 💡 General Health Tips
• **Always consult** healthcare professionals for serious concerns
• **Maintain good hygiene** and regular exercise
• **Eat a balanced diet** with fresh fruits and vegetables
• **Get adequate sleep** (7-9 hours daily)
• **Stay hydrated** (8-10 glasses of water daily)

### 🚨 When to Seek Medical Help
• Persistent or severe symptoms
• Difficulty breathing
• High fever (above 101°F/38.3°C)
• Severe pain or discomfort
• Any emergency symptoms

### 📞 Next Steps
• Contact your nearest health clinic
• Ask about telehealth options if travel is difficult
• Don't delay seeking professional medical advice

%s`, message, fallbackMarker, fallbackDisclaimer)
}
