package service

import (
	"context"
	"time"

	"github.com/agrisaarthi/assistant-platform/internal/model"
)

// DefaultAnalysisDelay matches the original simulated analysis latency.
const DefaultAnalysisDelay = 3 * time.Second

// DiagnosisService simulates crop disease analysis: after a fixed delay
// it returns the canned multilingual diagnosis.
type DiagnosisService struct {
	delay time.Duration
	now   func() time.Time
}

// NewDiagnosisService creates the service with the given analysis delay.
func NewDiagnosisService(delay time.Duration) *DiagnosisService {
	if delay <= 0 {
		delay = DefaultAnalysisDelay
	}
	return &DiagnosisService{delay: delay, now: time.Now}
}

// Analyze waits out the analysis delay, honoring context cancellation,
// and returns the diagnosis for the referenced image.
func (s *DiagnosisService) Analyze(ctx context.Context, imageName string) (*model.Diagnosis, error) {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return &model.Diagnosis{
		Disease: model.Localized{
			Hindi:   "पत्ती झुलसा रोग",
			Kannada: "ಎಲೆ ಸುಡು ರೋಗ",
			Tamil:   "இலை கருகல் நோய்",
			English: "Leaf Blight",
		},
		Severity:   "Moderate",
		Confidence: 92,
		Treatment: model.LocalizedList{
			Hindi: []string{
				"प्रभावित पत्तियों को तुरंत हटाएं",
				"तांबा आधारित फफूंदनाशक का छिड़काव करें",
				"उचित जल निकासी सुनिश्चित करें",
				"पानी देने की आवृत्ति कम करें",
			},
			Kannada: []string{
				"ಬಾಧಿತ ಎಲೆಗಳನ್ನು ತಕ್ಷಣ ತೆಗೆದುಹಾಕಿ",
				"ತಾಮ್ರ ಆಧಾರಿತ ಶಿಲೀಂಧ್ರನಾಶಕ ಸಿಂಪಡಿಸಿ",
				"ಸರಿಯಾದ ಒಳಚರಂಡಿ ಖಚಿತಪಡಿಸಿ",
				"ನೀರಾವರಿ ಆವರ್ತನ ಕಡಿಮೆ ಮಾಡಿ",
			},
			Tamil: []string{
				"பாதிக்கப்பட்ட இலைகளை உடனே அகற்றவும்",
				"தாமிர அடிப்படை பூஞ்சைக்கொல்லி தெளிக்கவும்",
				"சரியான வடிகால் உறுதி செய்யவும்",
				"நீர்ப்பாசன அளவை குறைக்கவும்",
			},
			English: []string{
				"Remove affected leaves immediately",
				"Apply copper-based fungicide",
				"Ensure proper drainage",
				"Reduce watering frequency",
			},
		},
		Prevention: model.LocalizedList{
			Hindi:   []string{"प्रमाणित बीज का उपयोग करें", "फसल चक्र अपनाएं"},
			Kannada: []string{"ಪ್ರಮಾಣಿತ ಬೀಜ ಬಳಸಿ", "ಬೆಳೆ ಸರದಿ ಅನುಸರಿಸಿ"},
			Tamil:   []string{"சான்றளிக்கப்பட்ட விதைகளை பயன்படுத்தவும்", "பயிர் சுழற்சியை பின்பற்றவும்"},
			English: []string{"Use certified seeds", "Follow crop rotation"},
		},
		AnalyzedAt: s.now(),
	}, nil
}
