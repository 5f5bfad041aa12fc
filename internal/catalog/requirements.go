package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"bddreport/internal/model"
)

// StoredRequirement is a flattened requirement row.
type StoredRequirement struct {
	Name          string
	QualifiedName string
	Type          string
	Depth         int
	Parent        string
}

// SaveRequirements replaces the stored requirement tree.
func (s *Store) SaveRequirements(ctx context.Context, roots []*model.Requirement) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM requirements`); err != nil {
			return fmt.Errorf("clear requirements: %w", err)
		}
		for _, root := range roots {
			if err := insertRequirement(ctx, tx, root, "", 0); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertRequirement(ctx context.Context, tx *sql.Tx, requirement *model.Requirement, parentID string, depth int) error {
	id := uuid.NewString()
	var title, card, text string
	if requirement.Narrative != nil {
		title = requirement.Narrative.Title
		card = requirement.Narrative.CardNumber
		text = requirement.Narrative.Text
	}
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO requirements
		 (requirement_id, parent_id, name, qualified_name, type, depth, path, title, card_number, narrative)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		nullableString(parentID),
		requirement.Name,
		requirement.QualifiedName(),
		requirement.Type,
		depth,
		nullableString(requirement.Path),
		nullableString(title),
		nullableString(card),
		nullableString(text),
	); err != nil {
		return fmt.Errorf("insert requirement %s: %w", requirement.Name, err)
	}
	for _, child := range requirement.Children {
		if err := insertRequirement(ctx, tx, child, id, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Requirements lists stored requirements ordered by depth then qualified name.
func (s *Store) Requirements(ctx context.Context) ([]StoredRequirement, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT r.name, r.qualified_name, r.type, r.depth, COALESCE(p.name, '')
		 FROM requirements r
		 LEFT JOIN requirements p ON p.requirement_id = r.parent_id
		 ORDER BY r.depth, r.qualified_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("query requirements: %w", err)
	}
	defer rows.Close()
	var out []StoredRequirement
	for rows.Next() {
		var row StoredRequirement
		if err := rows.Scan(&row.Name, &row.QualifiedName, &row.Type, &row.Depth, &row.Parent); err != nil {
			return nil, fmt.Errorf("scan requirement: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
