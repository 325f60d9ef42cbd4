package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// DocumentETag returns a strong entity tag for body: the quoted hex SHA-256
// of the exact bytes. Equal bytes always produce equal tags.
//
// Example usage:
//
//	w.Header().Set("ETag", utils.DocumentETag(doc))
func DocumentETag(body []byte) string {
	sum := sha256.Sum256(body)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}

// ETagMatches reports whether an If-None-Match header value names etag.
// Both the "*" wildcard and comma separated lists are understood; weak
// validators compare by their opaque part.
func ETagMatches(ifNoneMatch, etag string) bool {
	for ifNoneMatch != "" {
		var candidate string
		candidate, ifNoneMatch = nextETag(ifNoneMatch)
		if candidate == "*" || candidate == etag || candidate == "W/"+etag {
			return true
		}
	}
	return false
}

func nextETag(list string) (string, string) {
	start := 0
	for start < len(list) && (list[start] == ' ' || list[start] == ',') {
		start++
	}
	end := start
	for end < len(list) && list[end] != ',' {
		end++
	}

	candidate := list[start:end]
	for len(candidate) > 0 && candidate[len(candidate)-1] == ' ' {
		candidate = candidate[:len(candidate)-1]
	}
	return candidate, list[end:]
}
