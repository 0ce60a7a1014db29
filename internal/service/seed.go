package service

import (
	"time"

	"github.com/agrisaarthi/assistant-platform/internal/model"
)

// newChatTitle is the default multilingual title for a fresh session.
func newChatTitle() model.Localized {
	return model.Localized{
		Hindi:   "नई चैट",
		Kannada: "ಹೊಸ ಚಾಟ್",
		Tamil:   "புதிய அரட்டை",
		English: "New Chat",
	}
}

// greeting is the assistant message seeded into every new session.
func greeting() model.Localized {
	return model.Localized{
		Hindi:   "नमस्ते! मैं आपका Krishimitra हूं। आज मैं आपकी कैसे मदद कर सकता हूं?",
		Kannada: "ನಮಸ್ಕಾರ! ನಾನು ನಿಮ್ಮ Krishimitra. ಇಂದು ನಾನು ನಿಮಗೆ ಹೇಗೆ ಸಹಾಯ ಮಾಡಬಹುದು?",
		Tamil:   "வணக்கம்! நான் உங்கள் Krishimitra. இன்று நான் உங்களுக்கு எப்படி உதவ முடியும்?",
		English: "Hello! I am your Krishimitra. How can I help you today?",
	}
}

// seedSessions is the fixed example set used when nothing is persisted or
// the persisted data cannot be parsed.
func seedSessions() []*model.Session {
	return []*model.Session{
		{
			ID: "session-1",
			Title: model.Localized{
				Hindi:   "गेहूं की बीमारी के बारे में",
				Kannada: "ಗೋಧಿ ರೋಗದ ಬಗ್ಗೆ",
				Tamil:   "கோதுமை நோய் பற்றி",
				English: "About Wheat Disease",
			},
			LastMessage: "Thank you for the detailed explanation about wheat rust disease.",
			Timestamp:   time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			Messages: []model.Message{
				{
					ID:   1,
					Type: model.MessageTypeAI,
					Content: model.Localized{
						Hindi:   "नमस्ते! मैं आपका Krishimitra हूं। मैं आपकी खेती से संबंधित सभी समस्याओं में मदद कर सकता हूं।",
						Kannada: "ನಮಸ್ಕಾರ! ನಾನು ನಿಮ್ಮ Krishimitra. ನಾನು ನಿಮ್ಮ ಕೃಷಿಗೆ ಸಂಬಂಧಿಸಿದ ಎಲ್ಲಾ ಸಮಸ್ಯೆಗಳಲ್ಲಿ ಸಹಾಯ ಮಾಡಬಹುದು.",
						Tamil:   "வணக்கம்! நான் உங்கள் Krishimitra. உங்கள் விவசாயம் தொடர்பான அனைத்து பிரச்சனைகளிலும் நான் உதவ முடியும்.",
						English: "Hello! I am your Krishimitra. I can help you with all your farming-related problems.",
					},
					Timestamp: time.Date(2024, 1, 15, 10, 25, 0, 0, time.UTC),
				},
			},
		},
		{
			ID: "session-2",
			Title: model.Localized{
				Hindi:   "मक्का की फसल की सिंचाई",
				Kannada: "ಮೆಕ್ಕೆ ಜೋಳದ ನೀರಾವರಿ",
				Tamil:   "சோள பயிர் நீர்ப்பாசனம்",
				English: "Corn Crop Irrigation",
			},
			LastMessage: "When should I water my corn crop during the flowering stage?",
			Timestamp:   time.Date(2024, 1, 14, 15, 45, 0, 0, time.UTC),
			Messages: []model.Message{
				{
					ID:   1,
					Type: model.MessageTypeAI,
					Content: model.Localized{
						Hindi:   "मक्का की सिंचाई के बारे में आपका स्वागत है। मैं आपकी मदद करूंगा।",
						Kannada: "ಮೆಕ್ಕೆ ಜೋಳದ ನೀರಾವರಿ ಬಗ್ಗೆ ನಿಮಗೆ ಸ್ವಾಗತ. ನಾನು ನಿಮಗೆ ಸಹಾಯ ಮಾಡುತ್ತೇನೆ.",
						Tamil:   "சோள நீர்ப்பாசனம் பற்றி உங்களுக்கு வரவேற்பு. நான் உங்களுக்கு உதவுவேன்.",
						English: "Welcome to corn irrigation guidance. I will help you.",
					},
					Timestamp: time.Date(2024, 1, 14, 15, 40, 0, 0, time.UTC),
				},
			},
		},
		{
			ID: "session-3",
			Title: model.Localized{
				Hindi:   "टमाटर के बाजार भाव",
				Kannada: "ಟೊಮೇಟೊ ಮಾರುಕಟ್ಟೆ ಬೆಲೆ",
				Tamil:   "தக்காளி சந்தை விலை",
				English: "Tomato Market Prices",
			},
			LastMessage: "Current tomato prices are ₹25 per kg in your local market.",
			Timestamp:   time.Date(2024, 1, 13, 9, 20, 0, 0, time.UTC),
			Messages: []model.Message{
				{
					ID:   1,
					Type: model.MessageTypeAI,
					Content: model.Localized{
						Hindi:   "टमाटर के बाजार भाव की जानकारी के लिए मैं यहां हूं।",
						Kannada: "ಟೊಮೇಟೊ ಮಾರುಕಟ್ಟೆ ಬೆಲೆಯ ಮಾಹಿತಿಗಾಗಿ ನಾನು ಇಲ್ಲಿದ್ದೇನೆ.",
						Tamil:   "தக்காளி சந்தை விலை தகவலுக்காக நான் இங்கே இருக்கிறேன்.",
						English: "I am here for tomato market price information.",
					},
					Timestamp: time.Date(2024, 1, 13, 9, 15, 0, 0, time.UTC),
				},
			},
		},
	}
}
