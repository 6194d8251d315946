package rest

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// LinkBase decides the scheme://host used in links sent by email. A fixed
// PublicURL wins; otherwise the request host must match AllowedHosts.
// Entries match exactly, ".example.com" also matches subdomains and "*"
// matches any host.
type LinkBase struct {
	PublicURL    string
	AllowedHosts []string
}

// Resolve returns the link base for the request, or false when the request
// host is not trusted
func (b LinkBase) Resolve(c *gin.Context) (string, bool) {
	if b.PublicURL != "" {
		return strings.TrimRight(b.PublicURL, "/"), true
	}

	host := c.Request.Host
	if !b.hostAllowed(host) {
		return "", false
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	switch strings.ToLower(c.GetHeader("X-Forwarded-Proto")) {
	case "https":
		scheme = "https"
	case "http":
		scheme = "http"
	}
	return scheme + "://" + host, true
}

func (b LinkBase) hostAllowed(host string) bool {
	if host == "" {
		return false
	}
	name := host
	if h, _, err := net.SplitHostPort(host); err == nil {
		name = h
	}
	name = strings.ToLower(strings.TrimSuffix(name, "."))

	for _, pattern := range b.AllowedHosts {
		pattern = strings.ToLower(strings.TrimSpace(pattern))
		switch {
		case pattern == "":
		case pattern == "*":
			return true
		case strings.HasPrefix(pattern, "."):
			if name == pattern[1:] || strings.HasSuffix(name, pattern) {
				return true
			}
		case name == pattern:
			return true
		}
	}
	return false
}
