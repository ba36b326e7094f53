package speech

import "context"

// Request describes one utterance. Parameters mirror the platform TTS
// surface: language code plus rate/pitch/volume in the 0..1-ish ranges the
// synthesizer expects.
type Request struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Rate     float64 `json:"rate"`
	Pitch    float64 `json:"pitch"`
	Volume   float64 `json:"volume"`
}

// Engine hands utterances to a synthesizer. Implementations are best effort;
// callers log failures and move on.
type Engine interface {
	Speak(ctx context.Context, req Request) error
	Stop(ctx context.Context) error
}
