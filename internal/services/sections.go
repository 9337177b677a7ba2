package services

import (
	"errors"
	"net/http"

	"github.com/btmxh/folio/internal/content"
	"github.com/btmxh/folio/internal/db"
)

var SectionTypeTakenError = errors.New("Another section already uses this type.")

const sectionColumns = baseColumns + ", section_type, title, layout"

func sectionFields(section *content.Section) []any {
	return append(baseFields(&section.Base), &section.Type, &section.Title, &section.Layout)
}

func ListSections(tx *db.Tx, visibleOnly bool) (sections []content.Section, hasErr bool) {
	return listDocuments(tx, sectionFields, "SELECT "+sectionColumns+" FROM sections"+visibilityClause(visibleOnly)+" ORDER BY sort_order, created_at")
}

func GetSection(tx *db.Tx, id content.Id) (section content.Section, hasErr bool) {
	return getDocument(tx, sectionFields, "SELECT "+sectionColumns+" FROM sections WHERE id = $1", id)
}

func GetSectionByType(tx *db.Tx, sectionType string) (section content.Section, hasErr bool) {
	return getDocument(tx, sectionFields, "SELECT "+sectionColumns+" FROM sections WHERE section_type = $1", sectionType)
}

func checkSectionTypeFree(tx *db.Tx, section *content.Section) (hasErr bool) {
	var dummy int
	var hasRow bool
	if tx.QueryRow("SELECT 1 FROM sections WHERE section_type = $1 AND id <> $2", section.Type, section.Id).Scan(&hasRow, &dummy) {
		return true
	}

	if hasRow {
		tx.PublicError(http.StatusUnprocessableEntity, SectionTypeTakenError)
		return true
	}

	return false
}

func CreateSection(tx *db.Tx, section *content.Section) (hasErr bool) {
	if validationError(tx, section.Validate()) || newBase(tx, Sections, &section.Base) || checkSectionTypeFree(tx, section) {
		return true
	}

	return tx.Exec(nil, "INSERT INTO sections ("+sectionColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		section.Id, section.Order, section.Visible, section.CreatedAt, section.UpdatedAt,
		section.Type, section.Title, section.Layout)
}

// UpdateSection also moves the entries of the section when its type changes.
func UpdateSection(tx *db.Tx, section *content.Section) (hasErr bool) {
	if validationError(tx, section.Validate()) || checkSectionTypeFree(tx, section) {
		return true
	}

	var oldType string
	var hasRow bool
	if tx.QueryRow("SELECT section_type FROM sections WHERE id = $1", section.Id).Scan(&hasRow, &oldType) ||
		notFoundUnless(tx, hasRow) {
		return true
	}

	if tx.Exec(nil,
		"UPDATE sections SET sort_order = $2, visible = $3, updated_at = NOW(), section_type = $4, title = $5, layout = $6 WHERE id = $1",
		section.Id, section.Order, section.Visible, section.Type, section.Title, section.Layout) {
		return true
	}

	if oldType == section.Type {
		return false
	}

	return tx.Exec(nil, "UPDATE entries SET section_id = $2 WHERE section_id = $1", oldType, section.Type)
}
