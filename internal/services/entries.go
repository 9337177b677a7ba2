package services

import (
	"slices"

	"github.com/btmxh/folio/internal/content"
	"github.com/btmxh/folio/internal/db"
	"github.com/lib/pq"
)

const entryColumns = baseColumns + `, section_id, title, content, images, links, date_start, date_end, tags,
	media_links, publisher, publication_date, publication_url, publication_type, publication_type_label, co_authors`

func entryFields(entry *content.Entry) []any {
	return append(baseFields(&entry.Base),
		&entry.SectionId, &entry.Title, &entry.Content, pq.Array(&entry.Images), asJSON(&entry.Links),
		&entry.DateRange.Start, &entry.DateRange.End, pq.Array(&entry.Tags), asJSON(&entry.MediaLinks),
		&entry.Publisher, &entry.PublicationDate, &entry.PublicationURL, &entry.PublicationType,
		&entry.PublicationTypeLabel, pq.Array(&entry.CoAuthors))
}

func entryArgs(entry *content.Entry) []any {
	return []any{
		entry.Id, entry.Order, entry.Visible, entry.CreatedAt, entry.UpdatedAt,
		entry.SectionId, entry.Title, entry.Content, pq.Array(nonNil(entry.Images)), asJSON(&entry.Links),
		entry.DateRange.Start, entry.DateRange.End, pq.Array(nonNil(entry.Tags)), asJSON(&entry.MediaLinks),
		entry.Publisher, entry.PublicationDate, entry.PublicationURL, entry.PublicationType,
		entry.PublicationTypeLabel, pq.Array(nonNil(entry.CoAuthors)),
	}
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

func ListEntries(tx *db.Tx, visibleOnly bool) (entries []content.Entry, hasErr bool) {
	return listDocuments(tx, entryFields, "SELECT "+entryColumns+" FROM entries"+visibilityClause(visibleOnly)+" ORDER BY section_id, sort_order, created_at")
}

// ListSectionEntries pages through the entries of one section for the
// admin dashboard.
func ListSectionEntries(tx *db.Tx, section string, offset int) (page Pagination[content.Entry], hasErr bool) {
	entries, hasErr := listDocuments(tx, entryFields,
		"SELECT "+entryColumns+" FROM entries WHERE section_id = $1 ORDER BY sort_order, created_at LIMIT $2 OFFSET $3",
		section, DefaultPagingLimit+1, offset)
	if hasErr {
		return page, true
	}

	return NewPagination(offset, entries), false
}

func GetEntry(tx *db.Tx, id content.Id) (entry content.Entry, hasErr bool) {
	return getDocument(tx, entryFields, "SELECT "+entryColumns+" FROM entries WHERE id = $1", id)
}

func CreateEntry(tx *db.Tx, entry *content.Entry) (hasErr bool) {
	if validationError(tx, entry.Validate()) || newBase(tx, Entries, &entry.Base) {
		return true
	}

	return tx.Exec(nil, "INSERT INTO entries ("+entryColumns+`) VALUES
		($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		entryArgs(entry)...)
}

func UpdateEntry(tx *db.Tx, entry *content.Entry) (hasErr bool) {
	if validationError(tx, entry.Validate()) {
		return true
	}

	affected, hasErr := tx.ExecAffected(
		`UPDATE entries SET sort_order = $2, visible = $3, updated_at = NOW(),
		   section_id = $4, title = $5, content = $6, images = $7, links = $8, date_start = $9, date_end = $10,
		   tags = $11, media_links = $12, publisher = $13, publication_date = $14, publication_url = $15,
		   publication_type = $16, publication_type_label = $17, co_authors = $18
		 WHERE id = $1`,
		slices.Delete(entryArgs(entry), 3, 5)...)
	if hasErr {
		return true
	}

	return notFoundUnless(tx, affected)
}
