// Package provider wraps the remote text-generation capability with
// HR-specific prompting, greeting detection and failure fallbacks.
package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"hrdesk/internal/domain"
)

// Greeting-style inputs are answered statically, before any remote call.
var greetings = []string{
	"hello", "hi", "hey", "who are you", "can you tell about yourself",
	"introduce yourself", "tell about you", "about yourself", "what you do for me ",
}

const greetingResponse = `Detected Use Case: General HR Inquiry

Hello! I'm your virtual HR assistant, designed to help you with any questions related to company policies, benefits, forms, holidays, reimbursements, and more.

While I don't have a personal background like a human, I can guide you through the HR information provided by your organization.

Please feel free to ask about any HR-related topic, for example:
- "What is the leave policy?"
- "How to apply for reimbursement?"
- "Can you show me the holiday calendar?"

I'm here to help!`

// Adapter turns {context, query, useCase} into a grounded answer. Every path
// returns a string: generator failures are converted to a fixed fallback
// message and never propagate.
type Adapter struct {
	generator domain.Generator
	timeout   time.Duration
	logger    *zap.Logger
}

func NewAdapter(generator domain.Generator, timeout time.Duration, logger *zap.Logger) *Adapter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{generator: generator, timeout: timeout, logger: logger}
}

// GenerateAnswer produces the answer text for the given query. Greeting-like
// queries short-circuit to a static introduction without touching the
// generation provider.
func (a *Adapter) GenerateAnswer(ctx context.Context, contextText, query, useCase string) string {
	if IsGreeting(query) {
		return greetingResponse
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	prompt := buildPrompt(contextText, query, useCase)
	start := time.Now()
	answer, err := a.generator.Complete(ctx, prompt)
	if err != nil {
		a.logger.Warn("generation failed, using fallback",
			zap.String("use_case", useCase),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return fallbackResponse(query, useCase)
	}
	a.logger.Debug("generation completed",
		zap.String("use_case", useCase),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("answer_len", len(answer)))
	return answer
}

// IsGreeting reports whether the query matches the greeting vocabulary.
func IsGreeting(query string) bool {
	lower := strings.ToLower(query)
	for _, g := range greetings {
		if strings.Contains(lower, g) {
			return true
		}
	}
	return false
}

func buildPrompt(contextText, query, useCase string) string {
	if strings.TrimSpace(contextText) == "" {
		contextText = "No relevant documents found"
	}
	return fmt.Sprintf(`ROLE: You are an expert HR assistant for a large company.
TASK: Answer the employee's question based on company documents.

USE CASE: %s
USER QUESTION: %q

COMPANY DOCUMENTS:
%s

INSTRUCTIONS:
1. Start with "Detected Use Case: [use case]"
2. Provide a clear, accurate answer from the documents
3. If listing items (dates, policies), use bullet points
4. Mention document sources when possible
5. If information is incomplete, say so honestly
6. Keep response professional but friendly

YOUR RESPONSE:
`, useCase, query, contextText)
}

func fallbackResponse(query, useCase string) string {
	return fmt.Sprintf(`I apologize, but I encountered a technical difficulty processing your query.

Detected Use Case: %s
Question: %s

Please try rephrasing your question or contact HR directly for assistance.`, useCase, query)
}
