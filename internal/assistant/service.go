package assistant

import (
	"context"
	"log"
	"strings"
)

// Fixed apology when the hosted model is configured but unreachable.
// Failures never propagate to the chat widget.
const apologyReply = "I'm having trouble connecting right now. Please call us directly."

type LLM interface {
	Reply(ctx context.Context, query string) (string, error)
}

// Service answers chat queries. With an LLM it delegates and apologizes
// on failure; without one it falls back to the keyword rules. It has no
// access to the booking pipeline or repository.
type Service struct {
	llm LLM
}

func NewService(llm LLM) *Service {
	return &Service{llm: llm}
}

func (s *Service) Respond(ctx context.Context, query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return ruleFallbackReply
	}

	if s.llm == nil {
		return RuleReply(query)
	}

	reply, err := s.llm.Reply(ctx, query)
	if err != nil || reply == "" {
		log.Printf("assistant: llm reply failed: %v", err)
		return apologyReply
	}
	return reply
}
