package routes

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/btmxh/folio/internal/content"
	"github.com/btmxh/folio/internal/media"
	"github.com/gin-gonic/gin"
)

const publicationDateLayout = "2006-01-02"

func formString(c *gin.Context, name string) string {
	return strings.TrimSpace(c.PostForm(name))
}

func formBase(c *gin.Context, base *content.Base) error {
	if order := formString(c, "order"); order != "" {
		value, err := strconv.Atoi(order)
		if err != nil {
			return fmt.Errorf("Order must be a number.")
		}
		base.Order = value
	}

	base.Visible = c.PostForm("visible") == "true"
	return nil
}

// splitList splits s on sep, dropping blank items.
func splitList(s, sep string) []string {
	var items []string
	for _, item := range strings.Split(s, sep) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}

func splitFields(line string, n int) []string {
	fields := strings.SplitN(line, "|", n)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	for len(fields) < n {
		fields = append(fields, "")
	}

	return fields
}

// parseLinks reads one "url | text" pair per line.
func parseLinks(text string) []content.EntryLink {
	var links []content.EntryLink
	for _, line := range splitList(text, "\n") {
		fields := splitFields(line, 2)
		links = append(links, content.EntryLink{URL: fields[0], Text: fields[1]})
	}

	return links
}

func formatLinks(links []content.EntryLink) string {
	var lines []string
	for _, link := range links {
		if link.Text == "" {
			lines = append(lines, link.URL)
		} else {
			lines = append(lines, link.URL+" | "+link.Text)
		}
	}

	return strings.Join(lines, "\n")
}

// parseMediaLinks reads one "type | url | title" triple per line. Unknown
// types are kept as typed so validation can reject them.
func parseMediaLinks(text string) []media.Link {
	var links []media.Link
	for _, line := range splitList(text, "\n") {
		fields := splitFields(line, 3)
		links = append(links, media.Link{Kind: media.Kind(strings.ToLower(fields[0])), URL: fields[1], Title: fields[2]})
	}

	return links
}

func formatMediaLinks(links []media.Link) string {
	var lines []string
	for _, link := range links {
		line := string(link.Kind) + " | " + link.URL
		if link.Title != "" {
			line += " | " + link.Title
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func profileForm(c *gin.Context, profile *content.Profile) error {
	profile.Name = formString(c, "name")
	profile.Headline = formString(c, "headline")
	profile.PhotoURL = formString(c, "photo_url")
	profile.About = formString(c, "about")
	return formBase(c, &profile.Base)
}

func highlightForm(c *gin.Context, highlight *content.Highlight) error {
	highlight.Text = formString(c, "text")
	highlight.Icon = formString(c, "icon")
	return formBase(c, &highlight.Base)
}

func sectionForm(c *gin.Context, section *content.Section) error {
	section.Type = formString(c, "type")
	section.Title = formString(c, "title")
	section.Layout = content.Layout(formString(c, "layout"))
	return formBase(c, &section.Base)
}

func entryForm(c *gin.Context, entry *content.Entry) error {
	entry.SectionId = formString(c, "section")
	entry.Title = formString(c, "title")
	entry.Content = formString(c, "content")
	entry.DateRange = content.DateRange{Start: formString(c, "date_start"), End: formString(c, "date_end")}
	entry.Tags = splitList(c.PostForm("tags"), ",")
	entry.Images = splitList(c.PostForm("images"), "\n")
	entry.Links = parseLinks(c.PostForm("links"))
	entry.MediaLinks = parseMediaLinks(c.PostForm("media_links"))
	entry.Publisher = formString(c, "publisher")
	entry.PublicationURL = formString(c, "publication_url")
	entry.PublicationType = formString(c, "publication_type")
	entry.PublicationTypeLabel = formString(c, "publication_type_label")
	entry.CoAuthors = splitList(c.PostForm("co_authors"), ",")

	entry.PublicationDate = nil
	if date := formString(c, "publication_date"); date != "" {
		parsed, err := time.Parse(publicationDateLayout, date)
		if err != nil {
			return fmt.Errorf("Publication date must look like 2024-01-31.")
		}
		entry.PublicationDate = &parsed
	}

	return formBase(c, &entry.Base)
}

// entryFields prefills the list inputs of the entry form.
func entryFields(entry *content.Entry) gin.H {
	fields := gin.H{
		"Tags":            strings.Join(entry.Tags, ", "),
		"Images":          strings.Join(entry.Images, "\n"),
		"Links":           formatLinks(entry.Links),
		"MediaLinks":      formatMediaLinks(entry.MediaLinks),
		"CoAuthors":       strings.Join(entry.CoAuthors, ", "),
		"PublicationDate": "",
	}

	if entry.PublicationDate != nil {
		fields["PublicationDate"] = entry.PublicationDate.Format(publicationDateLayout)
	}

	return fields
}

func socialForm(c *gin.Context, social *content.Social) error {
	social.Platform = formString(c, "platform")
	social.URL = formString(c, "url")
	social.Icon = formString(c, "icon")
	return formBase(c, &social.Base)
}

func featuredForm(c *gin.Context, featured *content.Featured) error {
	featured.Text = formString(c, "text")
	featured.ImageURL = formString(c, "image_url")
	featured.ButtonText = formString(c, "button_text")
	featured.ButtonURL = formString(c, "button_url")
	return formBase(c, &featured.Base)
}
