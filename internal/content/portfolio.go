package content

import "github.com/btmxh/folio/internal/media"

// Portfolio is everything the public page renders.
type Portfolio struct {
	Profile    *Profile
	Highlights []Highlight
	Sections   []Section
	Entries    []Entry
	Featured   []Featured
	Socials    []Social
}

// EntriesFor returns the entries of section in display order.
func (p *Portfolio) EntriesFor(section Section) []Entry {
	var entries []Entry
	for _, entry := range p.Entries {
		if entry.SectionId == section.Type {
			entries = append(entries, entry)
		}
	}

	SortByOrder(entries)
	return entries
}

// OnlyVisible drops hidden documents, and entries whose section is hidden.
func (p Portfolio) OnlyVisible() Portfolio {
	if p.Profile != nil && !p.Profile.Visible {
		p.Profile = nil
	}

	p.Highlights = VisibleOnly(p.Highlights)
	p.Sections = VisibleOnly(p.Sections)
	p.Featured = VisibleOnly(p.Featured)
	p.Socials = VisibleOnly(p.Socials)

	sections := map[string]bool{}
	for _, section := range p.Sections {
		sections[section.Type] = true
	}

	var entries []Entry
	for _, entry := range VisibleOnly(p.Entries) {
		if sections[entry.SectionId] {
			entries = append(entries, entry)
		}
	}
	p.Entries = entries

	return p
}

// ImageRef is an image URL together with where it appears.
type ImageRef struct {
	Source string
	URL    string
}

// Images lists every image the public page may display.
func (p *Portfolio) Images() []ImageRef {
	var refs []ImageRef
	add := func(source, url string) {
		if url != "" {
			refs = append(refs, ImageRef{Source: source, URL: url})
		}
	}

	if p.Profile != nil {
		add("Profile photo", p.Profile.PhotoURL)
	}
	for _, featured := range p.Featured {
		add("Featured: "+featured.Text, featured.ImageURL)
	}
	for _, entry := range p.Entries {
		for _, image := range entry.Images {
			add("Entry: "+entry.Title, image)
		}
		for _, link := range entry.MediaLinks {
			if link.Kind == media.KindImage {
				add("Entry media: "+entry.Title, link.URL)
			}
		}
	}

	return refs
}
