// Package chat runs the interactive question/answer session: command
// dispatch, the responder decision chain and learning new answers.
package chat

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kittclouds/jay/internal/store"
	"github.com/kittclouds/jay/pkg/matcher"
	"github.com/kittclouds/jay/pkg/memory"
)

// Default sentiment thresholds; a polarity must be strictly beyond them.
const (
	DefaultPositiveThreshold = 0.5
	DefaultNegativeThreshold = -0.5
)

// Matcher finds the known question closest to an input.
type Matcher interface {
	FindBestMatch(input string, questions []string) (matcher.Match, bool)
	Fit(questions []string) bool
}

// IntentDetector scores intent categories present in a text.
type IntentDetector interface {
	Detect(text string) map[string]float64
}

// SentimentAnalyzer rates the polarity of a text in [-1, 1].
type SentimentAnalyzer interface {
	Polarity(text string) float64
}

// Terminal is the prompt/reply surface of a session.
type Terminal interface {
	Prompt(prompt string) (string, error)
	Say(msg string)
}

// Options tunes a session. Zero values fall back to defaults.
type Options struct {
	UserName          string
	Commands          CommandTable
	Replies           Replies
	PositiveThreshold float64
	NegativeThreshold float64
	RefitOnLearn      bool
}

// Dependencies are the collaborators a session drives.
type Dependencies struct {
	Store     store.Store
	Matcher   Matcher
	Intents   IntentDetector
	Sentiment SentimentAnalyzer
	Terminal  Terminal
	Logger    *zap.Logger
}

// Context is the last question/answer pair the bot matched or learned.
type Context struct {
	LastQuestion string
	LastAnswer   string
}

// State is the lifecycle state of a session.
type State int

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Session owns the mutable state of one conversation.
type Session struct {
	id   string
	kb   *store.KnowledgeBase
	deps Dependencies
	opts Options
	log  *zap.Logger

	recall  *memory.Recall
	history *memory.History
	ctx     Context
	state   State
}

// NewSession creates a running session over kb.
func NewSession(kb *store.KnowledgeBase, deps Dependencies, opts Options) *Session {
	if kb == nil {
		kb = store.NewKnowledgeBase(nil)
	}
	if opts.UserName == "" {
		opts.UserName = "Hikari"
	}
	if len(opts.Commands) == 0 {
		opts.Commands = DefaultCommands()
	}
	opts.Replies = opts.Replies.withDefaults()
	if opts.PositiveThreshold == 0 {
		opts.PositiveThreshold = DefaultPositiveThreshold
	}
	if opts.NegativeThreshold == 0 {
		opts.NegativeThreshold = DefaultNegativeThreshold
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()

	return &Session{
		id:      id,
		kb:      kb,
		deps:    deps,
		opts:    opts,
		log:     logger.With(zap.String("session", id)),
		recall:  memory.NewRecall(),
		history: memory.NewHistory(),
		state:   StateRunning,
	}
}

// ID returns the session identifier used in log fields.
func (s *Session) ID() string { return s.id }

// Context returns the last matched or learned pair.
func (s *Session) Context() Context { return s.ctx }

// History returns the interactions recorded so far.
func (s *Session) History() []memory.Interaction { return s.history.Interactions() }

// Recall returns the pairs learned this session.
func (s *Session) Recall() []store.Entry { return s.recall.Entries() }

// KnowledgeBase returns the knowledge base the session reads and extends.
func (s *Session) KnowledgeBase() *store.KnowledgeBase { return s.kb }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

func (s *Session) say(msg string) {
	s.deps.Terminal.Say(msg)
}
