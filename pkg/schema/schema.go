package schema

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"

	"gorm.io/gorm"
	gormschema "gorm.io/gorm/schema"

	"github.com/doodlesbykumbi/cms-in-go/pkg/model"
)

// Sync drops every model table and creates it again. All rows are lost.
func Sync(ctx context.Context, db *gorm.DB) error {
	if err := Drop(ctx, db); err != nil {
		return err
	}

	migrator := db.WithContext(ctx).Migrator()
	for _, value := range model.All() {
		table, err := tableOf(db, value)
		if err != nil {
			return err
		}
		if err := migrator.AutoMigrate(value); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table, err)
		}
		log.Printf("Created table %s", table)
	}
	return nil
}

// Drop drops every model table, children first. Missing tables are skipped.
func Drop(ctx context.Context, db *gorm.DB) error {
	migrator := db.WithContext(ctx).Migrator()
	values := model.All()
	slices.Reverse(values)
	for _, value := range values {
		table, err := tableOf(db, value)
		if err != nil {
			return err
		}
		if err := migrator.DropTable(value); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}

// Verify checks that every model table exists with all of its columns, its
// foreign key constraints and its named unique indexes. Every problem found
// is reported, not just the first.
func Verify(ctx context.Context, db *gorm.DB) error {
	migrator := db.WithContext(ctx).Migrator()

	var problems []error
	for _, value := range model.All() {
		s, err := parse(db, value)
		if err != nil {
			return err
		}
		if !migrator.HasTable(value) {
			problems = append(problems, fmt.Errorf("missing table %s", s.Table))
			continue
		}
		for _, column := range s.DBNames {
			if !migrator.HasColumn(value, column) {
				problems = append(problems, fmt.Errorf("missing column %s.%s", s.Table, column))
			}
		}
		for _, rel := range s.Relationships.BelongsTo {
			if !migrator.HasConstraint(value, rel.Name) {
				problems = append(problems, fmt.Errorf("missing foreign key %s.%s", s.Table, rel.Name))
			}
		}
		for _, index := range uniqueIndexes(s) {
			if !migrator.HasIndex(value, index) {
				problems = append(problems, fmt.Errorf("missing unique index %s.%s", s.Table, index))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("schema verification failed: %w", errors.Join(problems...))
	}
	return nil
}

func parse(db *gorm.DB, value any) (*gormschema.Schema, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(value); err != nil {
		return nil, fmt.Errorf("failed to parse model %T: %w", value, err)
	}
	return stmt.Schema, nil
}

func tableOf(db *gorm.DB, value any) (string, error) {
	s, err := parse(db, value)
	if err != nil {
		return "", err
	}
	return s.Table, nil
}

func uniqueIndexes(s *gormschema.Schema) []string {
	var names []string
	for _, field := range s.Fields {
		if name := field.TagSettings["UNIQUEINDEX"]; name != "" && name != "UNIQUEINDEX" {
			names = append(names, name)
		}
	}
	return names
}
