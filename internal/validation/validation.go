package validation

import (
	"net/url"
	"regexp"
	"strings"
)

// CollectionIDPattern defines the valid CMS identifier format: lowercase hex.
var CollectionIDPattern = regexp.MustCompile(`^[a-f0-9]{24,32}$`)

// ValidateCollectionID checks if an id looks like a CMS collection or option id.
func ValidateCollectionID(id string) bool {
	return CollectionIDPattern.MatchString(id)
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// RootRelative rewrites a CMS weblink into a root-relative path.
// The site prefix is stripped first; any other absolute URL is reduced to its
// path, query and fragment so no domain survives.
func RootRelative(weblink, sitePrefix string) string {
	link := strings.TrimSpace(weblink)
	if sitePrefix != "" && strings.HasPrefix(link, sitePrefix) {
		link = "/" + strings.TrimPrefix(link, sitePrefix)
	}

	if u, err := url.Parse(link); err == nil && (u.Scheme != "" || u.Host != "") {
		u.Scheme = ""
		u.Host = ""
		u.User = nil
		link = u.String()
	}

	if strings.HasPrefix(link, "//") {
		link = "/" + strings.TrimLeft(link, "/")
	}
	if !strings.HasPrefix(link, "/") {
		link = "/" + link
	}
	return link
}
