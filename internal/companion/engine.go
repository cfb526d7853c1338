package companion

import (
	"math/rand"
	"time"

	"github.com/mindwell/companion/internal"
)

// Engine bundles a validated rule table with a random source. It holds
// no conversational state: name and history arrive as explicit arguments
// on every call, and nothing survives between calls.
type Engine struct {
	table []Category
	rng   *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source, letting tests seed template selection.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithTable replaces the default rule table.
func WithTable(table []Category) Option {
	return func(e *Engine) {
		e.table = table
	}
}

// NewEngine builds an engine over the default rule table. Table
// validation failures surface here, at load time.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{table: DefaultTable}
	for _, opt := range opts {
		opt(e)
	}

	if err := ValidateTable(e.table); err != nil {
		return nil, err
	}

	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return e, nil
}

// Reply generates one companion turn from the user's message, the prior
// conversation history, and the display name. Synchronous and immediate;
// any "thinking" delay is the caller's presentation concern.
func (e *Engine) Reply(text string, history []internal.Message, name string) Result {
	cat := Classify(text, e.table)
	sentiment := Score(text)
	sum := Summarize(history)

	return SelectResponse(cat, sum, sentiment, name, e.rng)
}

// Welcome generates the first-contact greeting for an empty history.
func (e *Engine) Welcome(name string) string {
	return Greet(name, e.rng)
}

// Table returns the engine's rule table.
func (e *Engine) Table() []Category {
	return e.table
}
