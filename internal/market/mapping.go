// Package market queries the data.gov.in commodity price resource.
package market

// Display strings (any supported language) map to the canonical English
// terms the upstream API filters on.

var varietyMapping = map[string]string{
	"केला": "Banana", "ಬಾಳೆಹಣ್ಣು": "Banana", "வாழைப்பழம்": "Banana", "Banana": "Banana",
	"चावल": "Rice", "ಅಕ್ಕಿ": "Rice", "அரிசி": "Rice", "Rice": "Rice",
	"गेहूं": "Wheat", "ಗೋಧಿ": "Wheat", "கோதுமை": "Wheat", "Wheat": "Wheat",
	"प्याज": "Onion", "ಈರುಳ್ಳಿ": "Onion", "வெங்காயம்": "Onion", "Onion": "Onion",
	"आलू": "Potato", "ಆಲೂಗಡ್ಡೆ": "Potato", "உருளைக்கிழங்கு": "Potato", "Potato": "Potato",
	"टमाटर": "Tomato", "ಟೊಮೇಟೊ": "Tomato", "தக்காளி": "Tomato", "Tomato": "Tomato",
	"मिर्च": "Chili", "ಮೆಣಸಿನಕಾಯಿ": "Chili", "மிளகாய்": "Chili", "Chili": "Chili",
}

var stateMapping = map[string]string{
	"केरल": "Kerala", "ಕೇರಳ": "Kerala", "கேரளா": "Kerala", "Kerala": "Kerala",
	"कर्नाटक": "Karnataka", "ಕರ್ನಾಟಕ": "Karnataka", "கர்நாடகா": "Karnataka", "Karnataka": "Karnataka",
	"तमिलनाडु": "Tamil Nadu", "ತಮಿಳುನಾಡು": "Tamil Nadu", "தமிழ்நாடு": "Tamil Nadu", "Tamil Nadu": "Tamil Nadu",
	"महाराष्ट्र": "Maharashtra", "ಮಹಾರಾಷ್ಟ್ರ": "Maharashtra", "மகாராஷ்டிரா": "Maharashtra", "Maharashtra": "Maharashtra",
	"पंजाब": "Punjab", "ಪಂಜಾಬ್": "Punjab", "பஞ்சாப்": "Punjab", "Punjab": "Punjab",
	"हरियाणा": "Haryana", "ಹರಿಯಾಣ": "Haryana", "ஹரியானா": "Haryana", "Haryana": "Haryana",
	"उत्तर प्रदेश": "Uttar Pradesh", "ಉತ್ತರ ಪ್ರದೇಶ": "Uttar Pradesh", "உத்தரபிரதேசம்": "Uttar Pradesh", "Uttar Pradesh": "Uttar Pradesh",
	"राजस्थान": "Rajasthan", "ರಾಜಸ್ಥಾನ": "Rajasthan", "ராஜஸ்தான்": "Rajasthan", "Rajasthan": "Rajasthan",
}

// CanonicalVariety resolves a display string to the canonical variety.
func CanonicalVariety(display string) (string, bool) {
	v, ok := varietyMapping[display]
	return v, ok
}

// CanonicalState resolves a display string to the canonical state name.
func CanonicalState(display string) (string, bool) {
	v, ok := stateMapping[display]
	return v, ok
}
