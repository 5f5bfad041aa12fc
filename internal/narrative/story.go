package narrative

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"bddreport/internal/model"
)

// preamble terminators in JBehave story files.
var storyBodyKeywords = []string{"Scenario:", "GivenStories:", "Lifecycle:", "Examples:"}

// LoadStoryNarrative reads the narrative preamble of a JBehave .story file.
func LoadStoryNarrative(path string) (*model.Narrative, bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("read story: %w", err)
	}
	defer file.Close()
	return ParseStoryNarrative(file)
}

// ParseStoryNarrative extracts the title, meta values and narrative text
// that precede the first scenario.
func ParseStoryNarrative(r io.Reader) (*model.Narrative, bool, error) {
	scanner := bufio.NewScanner(r)
	narrative := &model.Narrative{}
	inMeta := false
	inNarrative := false
	text := make([]string, 0)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if isStoryBody(line) {
			break
		}
		switch {
		case strings.HasPrefix(line, "!--"):
			continue
		case line == "Meta:":
			inMeta = true
			continue
		case line == "Narrative:":
			inMeta = false
			inNarrative = true
			continue
		}
		if inMeta {
			if line == "" {
				inMeta = false
				continue
			}
			applyMeta(narrative, line)
			continue
		}
		if line == "" {
			continue
		}
		if inNarrative {
			text = append(text, line)
			continue
		}
		if narrative.Title == "" {
			narrative.Title = line
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, false, fmt.Errorf("scan story: %w", err)
	}
	if !inNarrative || len(text) == 0 {
		return nil, false, nil
	}
	narrative.Text = strings.Join(text, "\n")
	return narrative, true, nil
}

func isStoryBody(line string) bool {
	for _, keyword := range storyBodyKeywords {
		if strings.HasPrefix(line, keyword) {
			return true
		}
	}
	return false
}

// applyMeta reads "@key value" or "@key: value" annotations.
func applyMeta(narrative *model.Narrative, line string) {
	key, value, ok := metaEntry(line)
	if !ok {
		return
	}
	switch key {
	case "type":
		narrative.Type = value
	case "issue", "card", "cardnumber":
		narrative.CardNumber = value
	}
}

func metaEntry(line string) (string, string, bool) {
	if !strings.HasPrefix(line, "@") {
		return "", "", false
	}
	body := strings.TrimPrefix(line, "@")
	idx := strings.IndexAny(body, ": \t")
	if idx < 0 {
		return strings.ToLower(body), "", true
	}
	key := strings.ToLower(strings.TrimSpace(body[:idx]))
	value := strings.TrimSpace(strings.TrimLeft(body[idx:], ": \t"))
	return key, value, key != ""
}
