// Package covers derives book cover image URLs from ISBNs and keeps a
// local on-disk cache of the images themselves.
package covers

import (
	"fmt"
	"strings"
)

// coverURLTemplate points at OpenLibrary's cover hosting. The URL is built
// blindly from the ISBN; it may reference an image that does not exist.
const coverURLTemplate = "https://covers.openlibrary.org/b/isbn/%s-L.jpg"

// ResolveCoverURL maps an ISBN to its large cover image URL.
// Returns "" for a blank ISBN. No network call is made.
func ResolveCoverURL(isbn string) string {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return ""
	}
	return fmt.Sprintf(coverURLTemplate, isbn)
}
