// Package useragent classifies raw User-Agent strings into the coarse
// device/browser/OS buckets the analytics dimensions group on. It is a
// substring matcher, not a full device database; unrecognized agents resolve
// to empty fields rather than errors.
package useragent

import (
	"strings"
)

// UserAgent holds the classification extracted from a raw UA string.
type UserAgent struct {
	Browser    string
	OS         string
	DeviceType string
	Bot        bool
}

// botMarkers are lowercase substrings that identify automated clients.
// Order matters only for readability; any hit flags the agent.
var botMarkers = []string{
	"bot", "crawler", "spider", "slurp", "curl/", "wget/", "python-requests",
	"go-http-client", "java/", "httpclient", "facebookexternalhit",
	"headlesschrome", "phantomjs", "lighthouse", "pingdom", "uptimerobot",
}

// Parse classifies a raw User-Agent string. An empty input yields the zero
// classification with Bot=false.
func Parse(raw string) UserAgent {
	if raw == "" {
		return UserAgent{}
	}
	ua := strings.ToLower(raw)

	result := UserAgent{
		Browser:    browserFor(ua),
		OS:         osFor(ua),
		DeviceType: deviceFor(ua),
	}
	for _, marker := range botMarkers {
		if strings.Contains(ua, marker) {
			result.Bot = true
			break
		}
	}
	return result
}

// browserFor matches in specificity order: Edge and Opera ship "chrome" in
// their UA, Chrome ships "safari", so the generic tokens go last.
func browserFor(ua string) string {
	switch {
	case strings.Contains(ua, "edg/"), strings.Contains(ua, "edge/"):
		return "edge"
	case strings.Contains(ua, "opr/"), strings.Contains(ua, "opera"):
		return "opera"
	case strings.Contains(ua, "firefox/"):
		return "firefox"
	case strings.Contains(ua, "chrome/"), strings.Contains(ua, "crios/"):
		return "chrome"
	case strings.Contains(ua, "safari/"):
		return "safari"
	case strings.Contains(ua, "msie"), strings.Contains(ua, "trident/"):
		return "ie"
	default:
		return ""
	}
}

func osFor(ua string) string {
	switch {
	case strings.Contains(ua, "windows"):
		return "Windows"
	case strings.Contains(ua, "iphone os"), strings.Contains(ua, "ipad"), strings.Contains(ua, "ios"):
		return "iOS"
	case strings.Contains(ua, "mac os"), strings.Contains(ua, "macintosh"), strings.Contains(ua, "darwin"):
		return "MacOS"
	case strings.Contains(ua, "android"):
		return "Android"
	case strings.Contains(ua, "linux"):
		return "Linux"
	default:
		return ""
	}
}

func deviceFor(ua string) string {
	switch {
	case strings.Contains(ua, "ipad"), strings.Contains(ua, "tablet"):
		return "tablet"
	case strings.Contains(ua, "mobile"), strings.Contains(ua, "iphone"), strings.Contains(ua, "android"):
		return "mobile"
	case strings.Contains(ua, "windows"), strings.Contains(ua, "macintosh"), strings.Contains(ua, "linux"), strings.Contains(ua, "x11"):
		return "desktop"
	default:
		return ""
	}
}
