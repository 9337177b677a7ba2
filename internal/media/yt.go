package media

import (
	"fmt"
	"net/url"
	"strings"
)

var youtubeHosts = []string{"youtube.com", "youtu.be", "yt.be", "youtube-nocookie.com"}

func isYoutube(u *url.URL) bool {
	return hostMatches(u, youtubeHosts...)
}

func youtubeVideoId(u *url.URL) string {
	if id := u.Query().Get("v"); id != "" {
		return validId(cutAt(id, "&?"))
	}

	path := strings.TrimPrefix(u.Path, "/")
	if hostMatches(u, "youtu.be", "yt.be") {
		return validId(cutAt(path, "/&?"))
	}

	for _, prefix := range []string{"embed/", "shorts/", "live/", "v/"} {
		if id, found := strings.CutPrefix(path, prefix); found {
			return validId(cutAt(id, "/&?"))
		}
	}

	return ""
}

func youtubeEmbedURL(id string, _ EmbedOptions) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s", id)
}

func youtubeThumbnailURL(id string) string {
	return fmt.Sprintf("https://i3.ytimg.com/vi/%s/maxresdefault.jpg", id)
}
