package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/daylab/labmate/internal/catalog"
)

type itemRepo struct {
	db *sql.DB
}

func (r *itemRepo) ReplaceAll(ctx context.Context, items []catalog.Item) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO items (
			name_ko, name_en, formula, cas, molar_mass, density,
			location_area, location_cabinet,
			toxic, restricted, prohibited, school_designated
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, it := range items {
		_, err := stmt.ExecContext(ctx,
			nullStr(it.NameKo), nullStr(it.NameEn), nullStr(it.Formula), nullStr(it.CAS),
			nullF64(it.MolarMass), nullF64(it.Density),
			nullStr(it.LocationArea), nullStr(it.LocationCabinet),
			it.Hazard.Toxic, it.Hazard.Restricted, it.Hazard.Prohibited, it.Hazard.SchoolDesignated,
		)
		if err != nil {
			return fmt.Errorf("insert item %d: %w", i, err)
		}
	}

	return tx.Commit()
}

func (r *itemRepo) All(ctx context.Context) ([]catalog.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name_ko, name_en, formula, cas, molar_mass, density,
		       location_area, location_cabinet,
		       toxic, restricted, prohibited, school_designated
		FROM items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []catalog.Item
	for rows.Next() {
		var (
			it                                    catalog.Item
			nameKo, nameEn, formula, cas          sql.NullString
			molarMass, density                    sql.NullFloat64
			locArea, locCabinet                   sql.NullString
			toxic, restricted, prohibited, school bool
		)
		err := rows.Scan(
			&nameKo, &nameEn, &formula, &cas, &molarMass, &density,
			&locArea, &locCabinet,
			&toxic, &restricted, &prohibited, &school,
		)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.NameKo = strPtr(nameKo)
		it.NameEn = strPtr(nameEn)
		it.Formula = strPtr(formula)
		it.CAS = strPtr(cas)
		it.MolarMass = f64Ptr(molarMass)
		it.Density = f64Ptr(density)
		it.LocationArea = strPtr(locArea)
		it.LocationCabinet = strPtr(locCabinet)
		it.Hazard = catalog.Hazard{
			Toxic:            toxic,
			Restricted:       restricted,
			Prohibited:       prohibited,
			SchoolDesignated: school,
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *itemRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

func nullStr(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func nullF64(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func strPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func f64Ptr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
