package services

import (
	"github.com/btmxh/folio/internal/content"
	"github.com/btmxh/folio/internal/db"
)

// LoadPortfolio reads every collection. With visibleOnly set, hidden
// documents and entries of hidden sections are left out.
func LoadPortfolio(tx *db.Tx, visibleOnly bool) (portfolio content.Portfolio, hasErr bool) {
	if portfolio.Profile, hasErr = GetProfile(tx, visibleOnly); hasErr {
		return portfolio, true
	}
	if portfolio.Highlights, hasErr = ListHighlights(tx, false); hasErr {
		return portfolio, true
	}
	if portfolio.Sections, hasErr = ListSections(tx, false); hasErr {
		return portfolio, true
	}
	if portfolio.Entries, hasErr = ListEntries(tx, false); hasErr {
		return portfolio, true
	}
	if portfolio.Featured, hasErr = ListFeatured(tx, false); hasErr {
		return portfolio, true
	}
	if portfolio.Socials, hasErr = ListSocials(tx, false); hasErr {
		return portfolio, true
	}

	if visibleOnly {
		portfolio = portfolio.OnlyVisible()
	}

	return portfolio, false
}
