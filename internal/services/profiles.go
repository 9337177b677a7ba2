package services

import (
	"github.com/btmxh/folio/internal/content"
	"github.com/btmxh/folio/internal/db"
)

const profileColumns = baseColumns + ", name, headline, photo_url, about"

func profileFields(profile *content.Profile) []any {
	return append(baseFields(&profile.Base), &profile.Name, &profile.Headline, &profile.PhotoURL, &profile.About)
}

func ListProfiles(tx *db.Tx, visibleOnly bool) (profiles []content.Profile, hasErr bool) {
	return listDocuments(tx, profileFields, "SELECT "+profileColumns+" FROM profiles"+visibilityClause(visibleOnly)+" ORDER BY sort_order, created_at")
}

// GetProfile returns the first profile by order, or nil when none exists.
func GetProfile(tx *db.Tx, visibleOnly bool) (profile *content.Profile, hasErr bool) {
	profiles, hasErr := ListProfiles(tx, visibleOnly)
	if hasErr || len(profiles) == 0 {
		return nil, hasErr
	}

	return &profiles[0], false
}

func GetProfileById(tx *db.Tx, id content.Id) (profile content.Profile, hasErr bool) {
	return getDocument(tx, profileFields, "SELECT "+profileColumns+" FROM profiles WHERE id = $1", id)
}

func CreateProfile(tx *db.Tx, profile *content.Profile) (hasErr bool) {
	if validationError(tx, profile.Validate()) || newBase(tx, Profiles, &profile.Base) {
		return true
	}

	return tx.Exec(nil, "INSERT INTO profiles ("+profileColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
		profile.Id, profile.Order, profile.Visible, profile.CreatedAt, profile.UpdatedAt,
		profile.Name, profile.Headline, profile.PhotoURL, profile.About)
}

func UpdateProfile(tx *db.Tx, profile *content.Profile) (hasErr bool) {
	if validationError(tx, profile.Validate()) {
		return true
	}

	affected, hasErr := tx.ExecAffected(
		`UPDATE profiles SET sort_order = $2, visible = $3, updated_at = NOW(),
		   name = $4, headline = $5, photo_url = $6, about = $7
		 WHERE id = $1`,
		profile.Id, profile.Order, profile.Visible, profile.Name, profile.Headline, profile.PhotoURL, profile.About)
	if hasErr {
		return true
	}

	return notFoundUnless(tx, affected)
}
