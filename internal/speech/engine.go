// Package speech adapts an event-driven speech-to-text engine behind a
// stable start/stop/transcript contract. The engine is injected, so the
// recognizer's state machine is testable against a fake implementation.
package speech

// Config mirrors the knobs a recognition engine exposes before capture
// begins. The adapter keeps Continuous false (one utterance per start)
// and InterimResults true (live feedback before finalization).
type Config struct {
	Continuous      bool
	InterimResults  bool
	MaxAlternatives int
	Locale          string
}

// Alternative is one candidate transcription for a result.
type Alternative struct {
	Transcript string
	Confidence float64
}

// Result is one (possibly provisional) transcription result. A result is
// provisional until IsFinal is set, after which it will not change.
type Result struct {
	IsFinal      bool
	Alternatives []Alternative
}

// ResultEvent carries the engine's result list for the current utterance.
// Results before ResultIndex are unchanged since the previous event.
type ResultEvent struct {
	ResultIndex int
	Results     []Result
}

// Callbacks are the engine event hooks the adapter subscribes to. Any of
// them may be invoked from the engine's own goroutine.
type Callbacks struct {
	OnStart  func()
	OnResult func(ResultEvent)
	OnEnd    func()
	OnError  func(code string)
}

// Engine is the external speech-to-text capability. A nil Engine means
// the capability is unavailable on this platform.
type Engine interface {
	// Configure applies capture settings. Called once at adapter
	// construction, before any Start.
	Configure(cfg Config)

	// SetLocale updates the recognition locale. Takes effect immediately
	// if the engine permits it, otherwise on the next Start.
	SetLocale(locale string)

	// Subscribe registers the event hooks.
	Subscribe(cb Callbacks)

	// Start begins capturing one utterance.
	Start() error

	// Stop requests a graceful end of capture; the engine signals
	// completion asynchronously through OnEnd.
	Stop()

	// Abort tears down capture without waiting for a final result.
	Abort()
}

// Engine error codes, as reported through Callbacks.OnError.
const (
	ErrNotAllowed = "not-allowed"
	ErrNoSpeech   = "no-speech"
	ErrNetwork    = "network"
)

// ErrNotSupported is recorded when start is attempted without an engine.
const ErrNotSupported = "not-supported"
