package postgresql

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cmlabs-hris/training-attendance/internal/pkg/database"
)

//go:embed schema.sql
var schemaSQL string

// ApplySchema creates the tables the repositories rely on when missing.
func ApplySchema(ctx context.Context, db *database.DB) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
