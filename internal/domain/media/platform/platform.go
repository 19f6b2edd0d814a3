// Package platform classifies submitted links by source platform
package platform

import (
	"strings"

	"github.com/Conte777/MediaGrab/internal/domain/media/entities"
)

var (
	youtubeHosts   = []string{"youtube.com", "youtu.be"}
	instagramHosts = []string{"instagram.com"}
)

// Classify returns the platform a link belongs to.
// It only inspects the string and never fails.
func Classify(link string) entities.Platform {
	link = strings.ToLower(link)

	switch {
	case containsAny(link, youtubeHosts):
		return entities.PlatformYouTube
	case containsAny(link, instagramHosts):
		return entities.PlatformInstagram
	default:
		return entities.PlatformUnrecognized
	}
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
