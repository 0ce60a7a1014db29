package speech

import (
	"sync"

	"go.uber.org/zap"

	"github.com/agrisaarthi/assistant-platform/internal/model"
	"github.com/agrisaarthi/assistant-platform/pkg/logger"
)

// Recognizer presents a uniform start/stop/transcript contract over an
// injected Engine. It has two states, idle and listening; every path back
// to idle (explicit stop, engine end-of-speech, engine error) goes through
// the engine's end/error events so observers never see a stale listening
// flag.
type Recognizer struct {
	engine Engine
	logger *logger.Logger

	mu         sync.Mutex
	listening  bool
	transcript string
	errCode    string
	language   model.Language
}

// NewRecognizer creates a Recognizer over the given engine, configured for
// the given language. A nil engine marks the capability unsupported: start
// attempts short-circuit with ErrNotSupported and nothing else happens.
func NewRecognizer(engine Engine, lang model.Language, log *logger.Logger) *Recognizer {
	r := &Recognizer{
		engine:   engine,
		logger:   log,
		language: lang,
	}

	if engine == nil {
		return r
	}

	engine.Configure(Config{
		Continuous:      false,
		InterimResults:  true,
		MaxAlternatives: 1,
		Locale:          LocaleFor(lang),
	})
	engine.Subscribe(Callbacks{
		OnStart:  r.handleStart,
		OnResult: r.handleResult,
		OnEnd:    r.handleEnd,
		OnError:  r.handleError,
	})
	return r
}

// IsSupported reports whether an engine is available.
func (r *Recognizer) IsSupported() bool {
	return r.engine != nil
}

// IsListening reports whether a capture is in flight.
func (r *Recognizer) IsListening() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listening
}

// Transcript returns the current visible transcript: the most recent final
// text if one exists for the current utterance, otherwise the most recent
// interim text.
func (r *Recognizer) Transcript() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.transcript
}

// Err returns the last recorded error code, or "" if none.
func (r *Recognizer) Err() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errCode
}

// Language returns the currently configured language.
func (r *Recognizer) Language() model.Language {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.language
}

// SetLanguage switches the recognition language. The engine's locale is
// updated immediately; a capture already in flight keeps its utterance and
// the new locale applies as soon as the engine permits.
func (r *Recognizer) SetLanguage(lang model.Language) {
	r.mu.Lock()
	r.language = lang
	engine := r.engine
	r.mu.Unlock()

	if engine != nil {
		engine.SetLocale(LocaleFor(lang))
	}
}

// StartListening begins a capture. It is a no-op while already listening.
// Without an engine it records ErrNotSupported. A failure to start is
// caught and recorded without entering the listening state.
func (r *Recognizer) StartListening() {
	r.mu.Lock()
	if r.engine == nil {
		r.errCode = ErrNotSupported
		r.mu.Unlock()
		return
	}
	if r.listening {
		r.mu.Unlock()
		return
	}
	r.errCode = ""
	r.transcript = ""
	engine := r.engine
	r.mu.Unlock()

	if err := engine.Start(); err != nil {
		r.logger.Error("failed to start speech capture", zap.Error(err))
		r.mu.Lock()
		r.errCode = "start-failed"
		r.mu.Unlock()
	}
}

// StopListening requests a graceful end of capture. The transition back to
// idle happens when the engine's end event fires, not synchronously here.
func (r *Recognizer) StopListening() {
	r.mu.Lock()
	engine := r.engine
	listening := r.listening
	r.mu.Unlock()

	if engine != nil && listening {
		engine.Stop()
	}
}

// ResetTranscript clears the transcript and any recorded error, regardless
// of listening state.
func (r *Recognizer) ResetTranscript() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transcript = ""
	r.errCode = ""
}

// Close aborts any in-flight capture so no engine callbacks fire after
// disposal.
func (r *Recognizer) Close() {
	r.mu.Lock()
	engine := r.engine
	r.engine = nil
	r.mu.Unlock()

	if engine != nil {
		engine.Abort()
	}
}

func (r *Recognizer) handleStart() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listening = true
	r.errCode = ""
}

func (r *Recognizer) handleResult(ev ResultEvent) {
	var finalText, interimText string
	for i := ev.ResultIndex; i < len(ev.Results); i++ {
		res := ev.Results[i]
		if len(res.Alternatives) == 0 {
			continue
		}
		if res.IsFinal {
			finalText += res.Alternatives[0].Transcript
		} else {
			interimText += res.Alternatives[0].Transcript
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if finalText != "" {
		r.transcript = finalText
	} else {
		r.transcript = interimText
	}
}

func (r *Recognizer) handleEnd() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listening = false
}

func (r *Recognizer) handleError(code string) {
	switch code {
	case ErrNetwork:
		r.logger.Error("speech capture network error")
	case ErrNotAllowed:
		r.logger.Error("speech capture not allowed")
	case ErrNoSpeech:
		r.logger.Warn("no speech detected")
	default:
		r.logger.Error("speech capture error", zap.String("code", code))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.errCode = code
	r.listening = false
}
