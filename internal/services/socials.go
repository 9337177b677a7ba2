package services

import (
	"github.com/btmxh/folio/internal/content"
	"github.com/btmxh/folio/internal/db"
)

const socialColumns = baseColumns + ", platform, url, icon"

func socialFields(social *content.Social) []any {
	return append(baseFields(&social.Base), &social.Platform, &social.URL, &social.Icon)
}

func ListSocials(tx *db.Tx, visibleOnly bool) (socials []content.Social, hasErr bool) {
	return listDocuments(tx, socialFields, "SELECT "+socialColumns+" FROM socials"+visibilityClause(visibleOnly)+" ORDER BY sort_order, created_at")
}

func GetSocial(tx *db.Tx, id content.Id) (social content.Social, hasErr bool) {
	return getDocument(tx, socialFields, "SELECT "+socialColumns+" FROM socials WHERE id = $1", id)
}

func CreateSocial(tx *db.Tx, social *content.Social) (hasErr bool) {
	if validationError(tx, social.Validate()) || newBase(tx, Socials, &social.Base) {
		return true
	}

	return tx.Exec(nil, "INSERT INTO socials ("+socialColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		social.Id, social.Order, social.Visible, social.CreatedAt, social.UpdatedAt,
		social.Platform, social.URL, social.Icon)
}

func UpdateSocial(tx *db.Tx, social *content.Social) (hasErr bool) {
	if validationError(tx, social.Validate()) {
		return true
	}

	affected, hasErr := tx.ExecAffected(
		"UPDATE socials SET sort_order = $2, visible = $3, updated_at = NOW(), platform = $4, url = $5, icon = $6 WHERE id = $1",
		social.Id, social.Order, social.Visible, social.Platform, social.URL, social.Icon)
	if hasErr {
		return true
	}

	return notFoundUnless(tx, affected)
}
