package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Darshan-Yash/Periodic-table/internal/catalog"
	"github.com/Darshan-Yash/Periodic-table/internal/domain/element"
	ptable_errors "github.com/Darshan-Yash/Periodic-table/pkg/errors"
)

// ChatClient is the outbound chat-completion call. Satisfied by
// openrouter.Client.
type ChatClient interface {
	ChatCompletion(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

const systemPrompt = `You are a helpful chemistry assistant specializing in the periodic table of elements.
You provide accurate, educational, and engaging information about chemical elements.
Keep your responses clear, factual, and appropriate for students and chemistry enthusiasts.
If element data is provided, use it to give accurate information.`

type AskService struct {
	catalog *catalog.Catalog
	chat    ChatClient
}

func NewAskService(cat *catalog.Catalog, chat ChatClient) *AskService {
	return &AskService{catalog: cat, chat: chat}
}

type AskResult struct {
	Answer         string
	ElementContext string
}

// Answer forwards the question to the provider, first enriching the system
// prompt with a fact block for the first element mentioned in the question.
// At most one element's facts are ever attached.
func (s *AskService) Answer(ctx context.Context, question string) (AskResult, error) {
	if strings.TrimSpace(question) == "" {
		return AskResult{}, ptable_errors.ErrInvalidInput
	}

	var elementContext string
	if el, ok := s.catalog.MatchQuestion(question); ok {
		elementContext = factBlock(el)
	}

	prompt := systemPrompt
	if elementContext != "" {
		prompt += "\n\nHere is the relevant element data:" + elementContext
	}

	answer, err := s.chat.ChatCompletion(ctx, prompt, question)
	if err != nil {
		return AskResult{}, err
	}

	return AskResult{Answer: answer, ElementContext: elementContext}, nil
}

func factBlock(el element.Element) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\nElement Data for %s (%s):\n", el.Name, el.Symbol)
	fmt.Fprintf(&b, "- Atomic Number: %d\n", el.AtomicNumber)
	fmt.Fprintf(&b, "- Atomic Weight: %s\n", formatFloat(el.AtomicWeight))
	fmt.Fprintf(&b, "- Group: %d\n", el.Group)
	fmt.Fprintf(&b, "- Period: %d\n", el.Period)
	fmt.Fprintf(&b, "- State at STP: %s\n", el.State)
	fmt.Fprintf(&b, "- Electron Configuration: %s\n", el.ElectronConfiguration)
	fmt.Fprintf(&b, "- Density: %s g/cm³\n", formatFloat(el.Density))
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
