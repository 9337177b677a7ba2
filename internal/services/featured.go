package services

import (
	"github.com/btmxh/folio/internal/content"
	"github.com/btmxh/folio/internal/db"
)

const featuredColumns = baseColumns + ", text, image_url, button_text, button_url"

func featuredFields(featured *content.Featured) []any {
	return append(baseFields(&featured.Base), &featured.Text, &featured.ImageURL, &featured.ButtonText, &featured.ButtonURL)
}

func ListFeatured(tx *db.Tx, visibleOnly bool) (featured []content.Featured, hasErr bool) {
	return listDocuments(tx, featuredFields, "SELECT "+featuredColumns+" FROM featured"+visibilityClause(visibleOnly)+" ORDER BY sort_order, created_at")
}

func GetFeatured(tx *db.Tx, id content.Id) (featured content.Featured, hasErr bool) {
	return getDocument(tx, featuredFields, "SELECT "+featuredColumns+" FROM featured WHERE id = $1", id)
}

func CreateFeatured(tx *db.Tx, featured *content.Featured) (hasErr bool) {
	if validationError(tx, featured.Validate()) || newBase(tx, Featured, &featured.Base) {
		return true
	}

	return tx.Exec(nil, "INSERT INTO featured ("+featuredColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
		featured.Id, featured.Order, featured.Visible, featured.CreatedAt, featured.UpdatedAt,
		featured.Text, featured.ImageURL, featured.ButtonText, featured.ButtonURL)
}

func UpdateFeatured(tx *db.Tx, featured *content.Featured) (hasErr bool) {
	if validationError(tx, featured.Validate()) {
		return true
	}

	affected, hasErr := tx.ExecAffected(
		`UPDATE featured SET sort_order = $2, visible = $3, updated_at = NOW(),
		   text = $4, image_url = $5, button_text = $6, button_url = $7
		 WHERE id = $1`,
		featured.Id, featured.Order, featured.Visible, featured.Text, featured.ImageURL, featured.ButtonText, featured.ButtonURL)
	if hasErr {
		return true
	}

	return notFoundUnless(tx, affected)
}
