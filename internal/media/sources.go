package media

import (
	"fmt"
	"net/url"
	"strings"
)

// provider is one row of the video provider table. extract returns "" when
// the link belongs to the provider but carries no usable identifier, and
// embed returns "" when no embed URL can be built from the identifier.
type provider struct {
	name    Provider
	hosts   []string
	extract func(u *url.URL, raw string) string
	embed   func(id string, opts EmbedOptions) string
}

// videoProviders is evaluated in order, first match wins.
var videoProviders = []provider{
	{
		name:    ProviderYoutube,
		hosts:   youtubeHosts,
		extract: func(u *url.URL, _ string) string { return youtubeVideoId(u) },
		embed:   youtubeEmbedURL,
	},
	{
		name:    ProviderDailymotion,
		hosts:   []string{"dailymotion.com", "dai.ly"},
		extract: dailymotionVideoId,
		embed: func(id string, _ EmbedOptions) string {
			return fmt.Sprintf("https://www.dailymotion.com/embed/video/%s", id)
		},
	},
	{
		name:  ProviderFacebook,
		hosts: []string{"facebook.com", "fb.watch"},
		// the whole link is the identifier
		extract: func(_ *url.URL, raw string) string { return strings.TrimSpace(raw) },
		embed: func(link string, _ EmbedOptions) string {
			return "https://www.facebook.com/plugins/video.php?href=" + url.QueryEscape(link) + "&show_text=false"
		},
	},
	{
		name:    ProviderInstagram,
		hosts:   []string{"instagram.com", "instagr.am"},
		extract: instagramPostId,
		embed: func(id string, _ EmbedOptions) string {
			return fmt.Sprintf("https://www.instagram.com/p/%s/embed", id)
		},
	},
	{
		name:  ProviderVimeo,
		hosts: []string{"vimeo.com"},
		extract: func(u *url.URL, _ string) string {
			return validId(cutAt(lastPathSegment(u), "?"))
		},
		embed: func(id string, _ EmbedOptions) string {
			return fmt.Sprintf("https://player.vimeo.com/video/%s", id)
		},
	},
	{
		name:  ProviderTwitch,
		hosts: []string{"twitch.tv"},
		extract: func(u *url.URL, _ string) string {
			return validId(cutAt(lastPathSegment(u), "?"))
		},
		embed: twitchEmbedURL,
	},
	{
		name:    ProviderDrive,
		hosts:   driveHosts,
		extract: func(u *url.URL, _ string) string { return driveFileID(u) },
		embed:   func(id string, _ EmbedOptions) string { return drivePreviewURL(id) },
	},
}

func (p *provider) matches(u *url.URL) bool {
	return hostMatches(u, p.hosts...)
}

func matchVideoProvider(u *url.URL) *provider {
	for i := range videoProviders {
		if videoProviders[i].matches(u) {
			return &videoProviders[i]
		}
	}

	return nil
}

func dailymotionVideoId(u *url.URL, _ string) string {
	if id, found := segmentAfter(u.Path, "/video/", "/"); found {
		return validId(cutAt(id, "_"))
	}

	return validId(cutAt(lastPathSegment(u), "_"))
}

func instagramPostId(u *url.URL, _ string) string {
	for _, marker := range []string{"/p/", "/reel/"} {
		if id, found := segmentAfter(u.Path, marker, "/"); found {
			return validId(id)
		}
	}

	return ""
}

func twitchEmbedURL(channel string, opts EmbedOptions) string {
	if opts.ParentHost == "" {
		return ""
	}

	return fmt.Sprintf("https://player.twitch.tv/?channel=%s&parent=%s", channel, url.QueryEscape(opts.ParentHost))
}
