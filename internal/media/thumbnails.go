package media

// Thumbnail returns a preview image URL for a link, or "" when none can be
// derived without a network call.
func Thumbnail(link Link) string {
	if link.Kind == KindImage {
		return ResolveImage(link.URL).Candidates[0]
	}

	u, ok := parseLink(link.URL)
	if !ok {
		return ""
	}

	if link.Kind == KindVideo && isYoutube(u) {
		if id := youtubeVideoId(u); id != "" {
			return youtubeThumbnailURL(id)
		}
	}

	if isDrive(u) {
		if id := driveFileID(u); id != "" {
			return driveThumbnailURL(id)
		}
	}

	return ""
}
