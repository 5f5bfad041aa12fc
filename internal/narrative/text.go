package narrative

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"bddreport/internal/model"
)

// Directory narrative file names, in lookup order.
var DirectoryFileNames = []string{"narrative.txt", "narrative.md"}

// LoadTextNarrative reads a narrative.txt style file.
func LoadTextNarrative(path string) (*model.Narrative, bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("read narrative: %w", err)
	}
	defer file.Close()
	return ParseTextNarrative(file)
}

// ParseTextNarrative treats "@key:value" lines as metadata, the first
// other line as the title and everything after it as the text.
func ParseTextNarrative(r io.Reader) (*model.Narrative, bool, error) {
	scanner := bufio.NewScanner(r)
	narrative := &model.Narrative{}
	text := make([]string, 0)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == "Narrative:" {
			continue
		}
		if strings.HasPrefix(line, "@") {
			applyMeta(narrative, line)
			continue
		}
		if narrative.Title == "" {
			narrative.Title = strings.TrimSpace(strings.TrimLeft(line, "#"))
			continue
		}
		text = append(text, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, false, fmt.Errorf("scan narrative: %w", err)
	}
	if narrative.Title == "" && len(text) == 0 {
		return nil, false, nil
	}
	narrative.Text = strings.Join(text, "\n")
	return narrative, true, nil
}
