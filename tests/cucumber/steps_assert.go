//go:build cucumber

package cucumber

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"bddreport/internal/model"
)

func (s *featureState) theExitCodeIs(code int) error {
	if s.exitCode != code {
		return fmt.Errorf("expected exit code %d, got %d (stderr %q)", code, s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output:\n%s", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected %q in error output, got %q", text, s.stderr.String())
	}
	return nil
}

// theOutputListsCommands asserts the output contains expected command names.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

// theOutputContainsTags decodes "tags --json" output and checks every row
// after the header is present.
func (s *featureState) theOutputContainsTags(table *godog.Table) error {
	var results []struct {
		Tags []model.TestTag `json:"tags"`
	}
	if err := json.Unmarshal(s.stdout.Bytes(), &results); err != nil {
		return fmt.Errorf("decode tags output: %w", err)
	}
	found := model.NewTagSet()
	for _, result := range results {
		found.AddAll(result.Tags...)
	}
	for i, row := range table.Rows {
		if i == 0 || len(row.Cells) < 2 {
			continue
		}
		tag := model.Tag(row.Cells[1].Value, row.Cells[0].Value)
		if !found.Contains(tag) {
			return fmt.Errorf("expected tag %v in %v", tag, found.Slice())
		}
	}
	return nil
}
