package speech

import (
	"errors"
	"testing"

	"github.com/agrisaarthi/assistant-platform/internal/model"
	"github.com/agrisaarthi/assistant-platform/pkg/logger"
)

// fakeEngine records configuration and lets tests fire engine events.
type fakeEngine struct {
	cfg         Config
	locale      string
	cb          Callbacks
	starts      int
	stops       int
	aborts      int
	startErr    error
	autoOnStart bool
}

func (f *fakeEngine) Configure(cfg Config) { f.cfg = cfg; f.locale = cfg.Locale }
func (f *fakeEngine) SetLocale(l string)   { f.locale = l }
func (f *fakeEngine) Subscribe(cb Callbacks) {
	f.cb = cb
}

func (f *fakeEngine) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	f.starts++
	if f.autoOnStart {
		f.cb.OnStart()
	}
	return nil
}

func (f *fakeEngine) Stop() {
	f.stops++
	f.cb.OnEnd()
}

func (f *fakeEngine) Abort() { f.aborts++ }

func interim(text string) ResultEvent {
	return ResultEvent{Results: []Result{{IsFinal: false, Alternatives: []Alternative{{Transcript: text}}}}}
}

func final(text string) ResultEvent {
	return ResultEvent{Results: []Result{{IsFinal: true, Alternatives: []Alternative{{Transcript: text}}}}}
}

func newTestRecognizer(engine Engine, lang model.Language) *Recognizer {
	return NewRecognizer(engine, lang, logger.Nop())
}

func TestLocaleConfiguration(t *testing.T) {
	tests := []struct {
		lang   model.Language
		locale string
	}{
		{model.LanguageHindi, "hi-IN"},
		{model.LanguageKannada, "kn-IN"},
		{model.LanguageTamil, "ta-IN"},
		{model.LanguageEnglish, "en-US"},
	}

	for _, tt := range tests {
		engine := &fakeEngine{autoOnStart: true}
		r := newTestRecognizer(engine, tt.lang)
		r.StartListening()
		if engine.locale != tt.locale {
			t.Errorf("%s: locale = %q, want %q", tt.lang, engine.locale, tt.locale)
		}
		if engine.starts != 1 {
			t.Errorf("%s: starts = %d, want 1", tt.lang, engine.starts)
		}
	}
}

func TestConfigureDefaults(t *testing.T) {
	engine := &fakeEngine{}
	newTestRecognizer(engine, model.LanguageEnglish)

	if engine.cfg.Continuous {
		t.Error("continuous should be false: one utterance per start")
	}
	if !engine.cfg.InterimResults {
		t.Error("interim results should be enabled")
	}
	if engine.cfg.MaxAlternatives != 1 {
		t.Errorf("max alternatives = %d, want 1", engine.cfg.MaxAlternatives)
	}
}

func TestStartWhileListeningIsNoOp(t *testing.T) {
	engine := &fakeEngine{autoOnStart: true}
	r := newTestRecognizer(engine, model.LanguageEnglish)

	r.StartListening()
	if !r.IsListening() {
		t.Fatal("expected listening after start")
	}

	r.StartListening()
	if engine.starts != 1 {
		t.Errorf("starts = %d, want 1 (duplicate start must be a no-op)", engine.starts)
	}
	if !r.IsListening() {
		t.Error("state changed by duplicate start")
	}
}

func TestStartUnsupported(t *testing.T) {
	r := newTestRecognizer(nil, model.LanguageHindi)

	if r.IsSupported() {
		t.Fatal("nil engine should be unsupported")
	}

	r.StartListening()
	if r.IsListening() {
		t.Error("unsupported recognizer must not enter listening state")
	}
	if r.Err() != ErrNotSupported {
		t.Errorf("err = %q, want %q", r.Err(), ErrNotSupported)
	}
}

func TestStartFailureStaysIdle(t *testing.T) {
	engine := &fakeEngine{startErr: errors.New("engine busy")}
	r := newTestRecognizer(engine, model.LanguageEnglish)

	r.StartListening()
	if r.IsListening() {
		t.Error("failed start must not enter listening state")
	}
	if r.Err() == "" {
		t.Error("failed start must record an error")
	}
}

func TestInterimThenFinalTranscript(t *testing.T) {
	engine := &fakeEngine{autoOnStart: true}
	r := newTestRecognizer(engine, model.LanguageEnglish)
	r.StartListening()

	engine.cb.OnResult(interim("whe"))
	if got := r.Transcript(); got != "whe" {
		t.Errorf("after interim: transcript = %q, want %q", got, "whe")
	}

	engine.cb.OnResult(final("wheat prices"))
	if got := r.Transcript(); got != "wheat prices" {
		t.Errorf("after final: transcript = %q, want %q", got, "wheat prices")
	}
}

func TestFinalTakesPrecedenceOverInterim(t *testing.T) {
	engine := &fakeEngine{autoOnStart: true}
	r := newTestRecognizer(engine, model.LanguageEnglish)
	r.StartListening()

	engine.cb.OnResult(ResultEvent{Results: []Result{
		{IsFinal: true, Alternatives: []Alternative{{Transcript: "sow "}}},
		{IsFinal: false, Alternatives: []Alternative{{Transcript: "in oct"}}},
	}})
	if got := r.Transcript(); got != "sow " {
		t.Errorf("transcript = %q, want finalized text", got)
	}
}

func TestStopTransitionsViaEndEvent(t *testing.T) {
	engine := &fakeEngine{autoOnStart: true}
	r := newTestRecognizer(engine, model.LanguageEnglish)

	r.StartListening()
	r.StopListening()
	if engine.stops != 1 {
		t.Fatalf("stops = %d, want 1", engine.stops)
	}
	// fakeEngine fires OnEnd synchronously from Stop.
	if r.IsListening() {
		t.Error("expected idle after engine end event")
	}

	// Stop while idle must not reach the engine.
	r.StopListening()
	if engine.stops != 1 {
		t.Errorf("stops = %d, want 1 (stop while idle is a no-op)", engine.stops)
	}
}

func TestEngineEndWithoutStop(t *testing.T) {
	engine := &fakeEngine{autoOnStart: true}
	r := newTestRecognizer(engine, model.LanguageEnglish)

	r.StartListening()
	engine.cb.OnEnd() // silence timeout
	if r.IsListening() {
		t.Error("engine end-of-speech must return recognizer to idle")
	}
}

func TestResetTranscript(t *testing.T) {
	engine := &fakeEngine{autoOnStart: true}
	r := newTestRecognizer(engine, model.LanguageEnglish)

	r.StartListening()
	engine.cb.OnResult(final("hello"))
	engine.cb.OnError(ErrNetwork)

	r.ResetTranscript()
	if r.Transcript() != "" {
		t.Error("transcript not cleared")
	}
	if r.Err() != "" {
		t.Error("error not cleared")
	}

	// Also valid while idle.
	r.ResetTranscript()
	if r.Transcript() != "" || r.Err() != "" {
		t.Error("reset while idle should clear state")
	}
}

func TestEngineErrorReturnsToIdle(t *testing.T) {
	for _, code := range []string{ErrNotAllowed, ErrNoSpeech, ErrNetwork, "audio-capture"} {
		engine := &fakeEngine{autoOnStart: true}
		r := newTestRecognizer(engine, model.LanguageEnglish)

		r.StartListening()
		engine.cb.OnError(code)
		if r.IsListening() {
			t.Errorf("%s: expected idle after engine error", code)
		}
		if r.Err() != code {
			t.Errorf("%s: err = %q, want code recorded", code, r.Err())
		}

		// The recognizer stays usable after a non-fatal error.
		r.StartListening()
		if engine.starts != 2 {
			t.Errorf("%s: recognizer not restartable after error", code)
		}
	}
}

func TestSetLanguageUpdatesLocaleImmediately(t *testing.T) {
	engine := &fakeEngine{autoOnStart: true}
	r := newTestRecognizer(engine, model.LanguageEnglish)

	r.SetLanguage(model.LanguageTamil)
	if engine.locale != "ta-IN" {
		t.Errorf("locale = %q, want ta-IN without restart", engine.locale)
	}
	if r.Language() != model.LanguageTamil {
		t.Errorf("language = %q, want tamil", r.Language())
	}
}

func TestCloseAbortsCapture(t *testing.T) {
	engine := &fakeEngine{autoOnStart: true}
	r := newTestRecognizer(engine, model.LanguageEnglish)

	r.StartListening()
	r.Close()
	if engine.aborts != 1 {
		t.Errorf("aborts = %d, want 1", engine.aborts)
	}

	// After disposal the recognizer behaves as unsupported.
	r.StartListening()
	if r.Err() != ErrNotSupported {
		t.Errorf("err = %q, want %q after close", r.Err(), ErrNotSupported)
	}
}
