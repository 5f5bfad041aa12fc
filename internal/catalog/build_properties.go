package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"bddreport/internal/buildinfo"
)

const (
	sectionGeneral    = "general"
	sectionCapability = "capability"
)

// SaveBuildProperties replaces the stored build properties.
func (s *Store) SaveBuildProperties(ctx context.Context, props buildinfo.BuildProperties) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM build_properties`); err != nil {
			return fmt.Errorf("clear build properties: %w", err)
		}
		for position, property := range props.General {
			if err := insertProperty(ctx, tx, sectionGeneral, "", property.Label, property.Value, position); err != nil {
				return err
			}
		}
		for _, driver := range props.Drivers {
			capabilities := props.DriverCapabilities[driver]
			for position, key := range capabilities.Keys() {
				if err := insertProperty(ctx, tx, sectionCapability, driver, key, capabilities[key], position); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func insertProperty(ctx context.Context, tx *sql.Tx, section, driver, label, value string, position int) error {
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO build_properties (section, driver, label, value, position)
		 VALUES (?, ?, ?, ?, ?)`,
		section,
		nullableString(driver),
		label,
		value,
		position,
	); err != nil {
		return fmt.Errorf("insert build property %s: %w", label, err)
	}
	return nil
}

// BuildProperties reads the stored build properties back.
func (s *Store) BuildProperties(ctx context.Context) (buildinfo.BuildProperties, error) {
	props := buildinfo.BuildProperties{DriverCapabilities: map[string]buildinfo.Properties{}}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT section, COALESCE(driver, ''), label, value
		 FROM build_properties
		 ORDER BY section DESC, driver, position`,
	)
	if err != nil {
		return props, fmt.Errorf("query build properties: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var section, driver, label, value string
		if err := rows.Scan(&section, &driver, &label, &value); err != nil {
			return props, fmt.Errorf("scan build property: %w", err)
		}
		switch section {
		case sectionGeneral:
			props.General = append(props.General, buildinfo.Property{Label: label, Value: value})
		case sectionCapability:
			capabilities, ok := props.DriverCapabilities[driver]
			if !ok {
				capabilities = buildinfo.Properties{}
				props.DriverCapabilities[driver] = capabilities
				props.Drivers = append(props.Drivers, driver)
			}
			capabilities[label] = value
		}
	}
	return props, rows.Err()
}
