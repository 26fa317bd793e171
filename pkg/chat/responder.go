package chat

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kittclouds/jay/internal/store"
	"github.com/kittclouds/jay/pkg/intent"
)

// Respond answers one user input. The first applicable rule wins:
// greeting, farewell, knowledge base match, preferences, then the
// sentiment reply followed by session recall or learning a new answer.
func (s *Session) Respond(ctx context.Context, input string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	intents := s.deps.Intents.Detect(input)
	switch {
	case intent.Has(intents, intent.Greeting):
		s.say(s.opts.Replies.Greeting)
		return nil
	case intent.Has(intents, intent.Farewell):
		s.say(s.opts.Replies.Farewell)
		return nil
	}

	if match, ok := s.deps.Matcher.FindBestMatch(input, s.kb.Questions()); ok {
		answer, _ := s.kb.AnswerFor(match.Question)
		s.log.Debug("knowledge base match",
			zap.String("question", match.Question),
			zap.Float64("score", match.Score))
		s.ctx = Context{LastQuestion: match.Question, LastAnswer: answer}
		s.say(answer)
		return nil
	}

	if intent.Has(intents, intent.Preferences) {
		s.say(s.opts.Replies.Preferences)
		return nil
	}

	polarity := s.deps.Sentiment.Polarity(input)
	switch {
	case polarity > s.opts.PositiveThreshold:
		s.say(s.opts.Replies.GoodMood)
	case polarity < s.opts.NegativeThreshold:
		s.say(s.opts.Replies.SomethingWrong)
	default:
		s.say(s.opts.Replies.NotUnderstood)
	}

	if e, ok := s.recall.Lookup(input); ok {
		s.say(expand(s.opts.Replies.Remembered, "{answer}", e.Answer))
		s.history.Record(input, e.Answer)
		return nil
	}

	s.say(s.opts.Replies.Unknown)
	prompt := expand(s.opts.Replies.LearnPrompt, "{skip}", s.opts.Commands.Primary(CommandSkip))
	answer, err := s.deps.Terminal.Prompt(prompt)
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	if s.opts.Commands.Is(CommandSkip, answer) {
		s.log.Debug("learning skipped", zap.String("question", input))
		return nil
	}
	if err := s.learn(input, answer); err != nil {
		return err
	}
	s.ctx = Context{LastQuestion: input, LastAnswer: answer}
	s.history.Record(input, answer)
	return nil
}

// learn persists a new pair, then remembers it for the session.
// A failed save leaves the session memory untouched.
func (s *Session) learn(question, answer string) error {
	s.kb.Append(store.Entry{Question: question, Answer: answer})
	if err := s.deps.Store.Save(s.kb); err != nil {
		return fmt.Errorf("failed to save knowledge base: %w", err)
	}
	s.recall.Remember(question, answer)
	s.say(expand(s.opts.Replies.Learned, "{user}", s.opts.UserName))

	s.log.Info("learned answer",
		zap.String("question", question),
		zap.Int("entries", s.kb.Len()))

	if s.opts.RefitOnLearn {
		s.deps.Matcher.Fit(s.kb.Questions())
	}
	return nil
}
