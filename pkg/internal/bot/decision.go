package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lan-twttr/lantwttr/pkg/internal/models"
	"github.com/samber/lo"
)

const (
	ActionTweet = "TWEET"
	ActionReply = "REPLY"
	ActionQuote = "QUOTE"
)

const contextWindow = 5

// Decision is the parsed ACTION/ID/CONTENT block the model is instructed to
// produce.
type Decision struct {
	Action  string
	ID      int
	Content string
}

// ParseDecision reads the line-oriented KEY: value format. ACTION and
// CONTENT are required; a missing or malformed ID parses as 0, which later
// degrades a REPLY or QUOTE into a plain tweet.
func ParseDecision(text string) (Decision, error) {
	fields := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		key, value, found := strings.Cut(line, ": ")
		if !found {
			continue
		}
		fields[strings.ToUpper(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	action, hasAction := fields["ACTION"]
	content, hasContent := fields["CONTENT"]
	if !hasAction || !hasContent {
		return Decision{}, fmt.Errorf("decision is missing ACTION or CONTENT")
	}

	// Models sometimes wrap the content in quotes on their own.
	if strings.HasPrefix(content, `"`) && strings.HasSuffix(content, `"`) && len(content) >= 2 {
		content = content[1 : len(content)-1]
	}

	id, _ := strconv.Atoi(fields["ID"])

	return Decision{
		Action:  strings.ToUpper(action),
		ID:      id,
		Content: content,
	}, nil
}

// FormatContext renders the newest posts into the plain-text timeline the
// prompt template embeds. The feed arrives newest first already.
func FormatContext(posts []models.Post) string {
	if len(posts) == 0 {
		return "The timeline is empty."
	}

	lines := lo.Map(lo.Subset(posts, 0, contextWindow), func(item models.Post, _ int) string {
		text := strings.ReplaceAll(item.Text, "\n", " ")
		return fmt.Sprintf("Tweet (ID %d) by @%s: \"%s\"", item.ID, item.Author, text)
	})

	return strings.Join(lines, "\n")
}
