package services

import (
	"github.com/btmxh/folio/internal/content"
	"github.com/btmxh/folio/internal/db"
)

const highlightColumns = baseColumns + ", text, icon"

func highlightFields(highlight *content.Highlight) []any {
	return append(baseFields(&highlight.Base), &highlight.Text, &highlight.Icon)
}

func ListHighlights(tx *db.Tx, visibleOnly bool) (highlights []content.Highlight, hasErr bool) {
	return listDocuments(tx, highlightFields, "SELECT "+highlightColumns+" FROM highlights"+visibilityClause(visibleOnly)+" ORDER BY sort_order, created_at")
}

func GetHighlight(tx *db.Tx, id content.Id) (highlight content.Highlight, hasErr bool) {
	return getDocument(tx, highlightFields, "SELECT "+highlightColumns+" FROM highlights WHERE id = $1", id)
}

func CreateHighlight(tx *db.Tx, highlight *content.Highlight) (hasErr bool) {
	if validationError(tx, highlight.Validate()) || newBase(tx, Highlights, &highlight.Base) {
		return true
	}

	return tx.Exec(nil, "INSERT INTO highlights ("+highlightColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7)",
		highlight.Id, highlight.Order, highlight.Visible, highlight.CreatedAt, highlight.UpdatedAt,
		highlight.Text, highlight.Icon)
}

func UpdateHighlight(tx *db.Tx, highlight *content.Highlight) (hasErr bool) {
	if validationError(tx, highlight.Validate()) {
		return true
	}

	affected, hasErr := tx.ExecAffected(
		"UPDATE highlights SET sort_order = $2, visible = $3, updated_at = NOW(), text = $4, icon = $5 WHERE id = $1",
		highlight.Id, highlight.Order, highlight.Visible, highlight.Text, highlight.Icon)
	if hasErr {
		return true
	}

	return notFoundUnless(tx, affected)
}
