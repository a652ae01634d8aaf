// Package conversation provides command parsing and user notification implementations.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/pizzaco/internal/domain"
	"github.com/hammamikhairi/pizzaco/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches user input to intents using keywords and simple patterns.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log.With("parser")}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(menu|list|m|pizzas)$`), domain.IntentShowMenu},
		{regexp.MustCompile(`(?i)^(orders|order\?|cart|basket|o)$`), domain.IntentShowOrders},
		{regexp.MustCompile(`(?i)^(clear|reset|c|clear orders?)$`), domain.IntentClearOrders},
		{regexp.MustCompile(`(?i)^(status|hours|open\??|time)$`), domain.IntentStatus},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.IntentHelp},
		{regexp.MustCompile(`(?i)^(quit|exit|bye|q)$`), domain.IntentQuit},
	}
	return p
}

// commandRules match "<verb> <argument>" inputs whose argument becomes
// the intent payload.
var commandRules = []struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}{
	{regexp.MustCompile(`(?i)^(?:order|buy|add|get)\s+(.+)$`), domain.IntentOrder},
	{regexp.MustCompile(`(?i)^(?:info|ingredients|show|details)\s+(.+)$`), domain.IntentShowItem},
}

// Parse converts user input into an intent.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	// A bare menu number orders that pizza.
	if len(trimmed) <= 2 && isDigits(trimmed) {
		return &domain.Intent{Type: domain.IntentOrder, Payload: trimmed}, nil
	}

	for _, rule := range p.patterns {
		if rule.regex.MatchString(trimmed) {
			p.log.Debug("matched intent: %s", rule.intent)
			return &domain.Intent{Type: rule.intent}, nil
		}
	}

	for _, rule := range commandRules {
		if m := rule.regex.FindStringSubmatch(trimmed); m != nil {
			payload := strings.TrimSpace(m[1])
			p.log.Debug("matched intent: %s (payload=%q)", rule.intent, payload)
			return &domain.Intent{Type: rule.intent, Payload: payload}, nil
		}
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
