package sqlutil

import (
	"database/sql"
)

// Helper functions for converting sql.Null* scan targets to Go pointers

// FromSqlStringPtr converts sql.NullString to Go string pointer
func FromSqlStringPtr(val sql.NullString) *string {
	if !val.Valid {
		return nil
	}
	return &val.String
}

// FromSqlBoolPtr converts sql.NullBool to Go bool pointer
func FromSqlBoolPtr(val sql.NullBool) *bool {
	if !val.Valid {
		return nil
	}
	return &val.Bool
}
