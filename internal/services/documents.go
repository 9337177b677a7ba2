package services

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/btmxh/folio/internal/content"
	"github.com/btmxh/folio/internal/db"
)

type Collection string

const (
	Profiles   Collection = "profiles"
	Highlights Collection = "highlights"
	Sections   Collection = "sections"
	Entries    Collection = "entries"
	Featured   Collection = "featured"
	Socials    Collection = "socials"
)

var Collections = []Collection{Profiles, Highlights, Sections, Entries, Featured, Socials}

var DocumentNotFoundError = errors.New("Document not found.")

func ParseCollection(name string) (Collection, error) {
	for _, collection := range Collections {
		if string(collection) == name {
			return collection, nil
		}
	}

	return "", fmt.Errorf("Invalid collection: %s", name)
}

const baseColumns = "id, sort_order, visible, created_at, updated_at"

func baseFields(base *content.Base) []any {
	return []any{&base.Id, &base.Order, &base.Visible, &base.CreatedAt, &base.UpdatedAt}
}

// newBase fills in the identity and timestamps of a document about to be
// inserted. A zero order places it after every other document.
func newBase(tx *db.Tx, collection Collection, base *content.Base) (hasErr bool) {
	base.Id = content.NewId()
	base.CreatedAt = time.Now()
	base.UpdatedAt = base.CreatedAt
	if base.Order != 0 {
		return false
	}

	return tx.QueryRow("SELECT COALESCE(MAX(sort_order), 0) + 1 FROM "+string(collection)).Scan(nil, &base.Order)
}

func notFoundUnless(tx *db.Tx, affected bool) (hasErr bool) {
	if !affected {
		tx.PublicError(http.StatusNotFound, DocumentNotFoundError)
		return true
	}

	return false
}

func DeleteDocument(tx *db.Tx, collection Collection, id content.Id) (hasErr bool) {
	affected, hasErr := tx.ExecAffected("DELETE FROM "+string(collection)+" WHERE id = $1", id)
	if hasErr {
		return true
	}

	return notFoundUnless(tx, affected)
}

func SetVisible(tx *db.Tx, collection Collection, id content.Id, visible bool) (hasErr bool) {
	affected, hasErr := tx.ExecAffected("UPDATE "+string(collection)+" SET visible = $2, updated_at = NOW() WHERE id = $1", id, visible)
	if hasErr {
		return true
	}

	return notFoundUnless(tx, affected)
}

func SetOrder(tx *db.Tx, collection Collection, id content.Id, order int) (hasErr bool) {
	affected, hasErr := tx.ExecAffected("UPDATE "+string(collection)+" SET sort_order = $2, updated_at = NOW() WHERE id = $1", id, order)
	if hasErr {
		return true
	}

	return notFoundUnless(tx, affected)
}

func validationError(tx *db.Tx, err error) (hasErr bool) {
	if err != nil {
		tx.PublicError(http.StatusUnprocessableEntity, err)
		return true
	}

	return false
}

func visibilityClause(visibleOnly bool) string {
	if visibleOnly {
		return " WHERE visible"
	}

	return ""
}

func listDocuments[T any](tx *db.Tx, fields func(*T) []any, query string, args ...any) (items []T, hasErr bool) {
	var rows *sql.Rows
	if tx.Query(&rows, query, args...) {
		return nil, true
	}

	hasErr = tx.ScanRows(rows, func(rows *sql.Rows) error {
		var item T
		if err := rows.Scan(fields(&item)...); err != nil {
			return err
		}
		items = append(items, item)
		return nil
	})
	return items, hasErr
}

func getDocument[T any](tx *db.Tx, fields func(*T) []any, query string, args ...any) (item T, hasErr bool) {
	var hasRow bool
	if tx.QueryRow(query, args...).Scan(&hasRow, fields(&item)...) {
		return item, true
	}

	return item, notFoundUnless(tx, hasRow)
}
