package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Run reads user lines until the quit command, end of input or ctx is done.
// Errors raised during a turn end the session and are returned.
func (s *Session) Run(ctx context.Context) error {
	s.log.Info("session started", zap.Int("entries", s.kb.Len()))
	defer func() {
		s.state = StateStopped
		s.log.Info("session stopped",
			zap.Int("interactions", s.history.Len()),
			zap.Int("learned", s.recall.Len()))
	}()

	prompt := s.opts.UserName + ": "
	for s.state == StateRunning {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.deps.Terminal.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		if err := s.Handle(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

// Handle dispatches one input line: a command or a turn for the responder.
func (s *Session) Handle(ctx context.Context, line string) error {
	cmd, ok := s.opts.Commands.Lookup(line)
	if !ok {
		return s.Respond(ctx, line)
	}

	switch cmd {
	case CommandQuit:
		s.state = StateStopped
		return nil
	case CommandTeach:
		return s.teach(line)
	default:
		// A stray skip outside a learn prompt is an ordinary input.
		return s.Respond(ctx, line)
	}
}

// teach stores the next line as the answer to the teach token itself,
// exactly as typed. Every reply is stored, the skip token included.
func (s *Session) teach(token string) error {
	answer, err := s.deps.Terminal.Prompt(s.opts.Replies.TeachPrompt)
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	return s.learn(token, answer)
}
