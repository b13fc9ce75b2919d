package notifier

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

const rule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// ConsoleNotifier simulates SMS delivery by printing to a writer.
type ConsoleNotifier struct {
	mu  sync.Mutex
	Out io.Writer
}

// NewConsoleNotifier prints to stdout.
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{Out: os.Stdout}
}

func (c *ConsoleNotifier) SendWithRetry(_ context.Context, text string, _ int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintf(c.Out, "%s\n📱 SMS NOTIFICATION\n%s\n%s\n%s\n\n", rule, rule, stripTags(text), rule)
	return err
}

// stripTags removes the HTML markup used for Telegram.
func stripTags(s string) string {
	out := make([]rune, 0, len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>' && inTag:
			inTag = false
		case !inTag:
			out = append(out, r)
		}
	}
	return string(out)
}
