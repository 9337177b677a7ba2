package media

import (
	"fmt"
	"log/slog"
	"net/url"
)

var driveHosts = []string{"drive.google.com"}
var docsHosts = []string{"docs.google.com"}

func isDrive(u *url.URL) bool {
	return hostMatches(u, driveHosts...)
}

// DriveFileID extracts the file identifier of a Google Drive link. The
// patterns are tried in order: /file/d/{id}, ?id={id}, /d/{id}.
func DriveFileID(raw string) (string, bool) {
	u, ok := parseLink(raw)
	if !ok || !isDrive(u) {
		return "", false
	}

	id := driveFileID(u)
	return id, id != ""
}

func driveFileID(u *url.URL) string {
	if id, found := segmentAfter(u.Path, "/file/d/", "/?"); found && checkId(id) {
		return id
	}

	if id := u.Query().Get("id"); checkId(id) {
		return id
	}

	if id, found := segmentAfter(u.Path, "/d/", "/?"); found && checkId(id) {
		return id
	}

	return ""
}

func driveViewURL(id string) string {
	return fmt.Sprintf("https://drive.google.com/uc?export=view&id=%s", id)
}

func driveThumbnailURL(id string) string {
	return fmt.Sprintf("https://drive.google.com/thumbnail?id=%s&sz=w1000", id)
}

func driveUserContentURL(id string) string {
	return fmt.Sprintf("https://lh3.googleusercontent.com/d/%s=w1000", id)
}

func drivePreviewURL(id string) string {
	return fmt.Sprintf("https://drive.google.com/file/d/%s/preview", id)
}

// driveImageCandidates lists the image URLs to try for a Drive file, the
// original link always last.
func driveImageCandidates(u *url.URL, raw string) []string {
	id := driveFileID(u)
	if id == "" {
		slog.Debug("Could not extract file ID from Google Drive URL", "url", raw)
		return []string{raw}
	}

	return []string{
		driveViewURL(id),
		driveThumbnailURL(id),
		driveUserContentURL(id),
		raw,
	}
}

func documentViewerURL(raw string) string {
	return "https://docs.google.com/viewer?url=" + url.QueryEscape(raw) + "&embedded=true"
}
