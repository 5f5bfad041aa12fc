package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bddreport/internal/model"
)

// SaveOutcomeTags records an outcome and its derived tags and returns the outcome id.
func (s *Store) SaveOutcomeTags(ctx context.Context, outcome model.TestOutcome, tags *model.TagSet) (string, error) {
	id := uuid.NewString()
	story := ""
	if outcome.UserStory != nil {
		story = outcome.UserStory.Name
	}
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO outcomes (outcome_id, name, test_case, path, story, result, recorded_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id,
			outcome.Name,
			nullableString(outcome.TestCase),
			nullableString(outcome.Path),
			nullableString(story),
			nullableString(outcome.Result),
			time.Now().UTC(),
		); err != nil {
			return fmt.Errorf("insert outcome: %w", err)
		}
		if tags == nil {
			return nil
		}
		for position, tag := range tags.Slice() {
			if _, err := tx.ExecContext(
				ctx,
				`INSERT INTO outcome_tags (outcome_id, tag_name, tag_type, position)
				 VALUES (?, ?, ?, ?)`,
				id,
				tag.Name,
				tag.Type,
				position,
			); err != nil {
				return fmt.Errorf("insert tag %s: %w", tag, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// OutcomeTags returns the tags stored for an outcome in insertion order.
func (s *Store) OutcomeTags(ctx context.Context, outcomeID string) (*model.TagSet, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT tag_name, tag_type FROM outcome_tags WHERE outcome_id = ? ORDER BY position`,
		outcomeID,
	)
	if err != nil {
		return nil, fmt.Errorf("query outcome tags: %w", err)
	}
	defer rows.Close()
	tags := model.NewTagSet()
	for rows.Next() {
		var tag model.TestTag
		if err := rows.Scan(&tag.Name, &tag.Type); err != nil {
			return nil, fmt.Errorf("scan outcome tag: %w", err)
		}
		tags.Add(tag)
	}
	return tags, rows.Err()
}

// OutcomeCounts returns the number of stored outcomes per result.
func (s *Store) OutcomeCounts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT COALESCE(result, ''), COUNT(*) FROM outcomes GROUP BY 1`,
	)
	if err != nil {
		return nil, fmt.Errorf("query outcome counts: %w", err)
	}
	defer rows.Close()
	counts := map[string]int{}
	for rows.Next() {
		var result string
		var count int
		if err := rows.Scan(&result, &count); err != nil {
			return nil, fmt.Errorf("scan outcome count: %w", err)
		}
		counts[result] = count
	}
	return counts, rows.Err()
}

// TagsByType returns the distinct tags of one type across all outcomes, sorted by name.
func (s *Store) TagsByType(ctx context.Context, tagType string) ([]model.TestTag, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT DISTINCT tag_name FROM outcome_tags WHERE tag_type = ? ORDER BY tag_name`,
		tagType,
	)
	if err != nil {
		return nil, fmt.Errorf("query tags by type: %w", err)
	}
	defer rows.Close()
	var tags []model.TestTag
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, model.Tag(name, tagType))
	}
	return tags, rows.Err()
}
