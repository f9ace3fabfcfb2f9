package storefront

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// GIDNumber extracts the trailing numeric id from a GraphQL global id,
// e.g. "gid://shopify/ProductVariant/123" -> 123. Returns 0 when the
// trailing segment is not numeric.
func GIDNumber(gid string) int64 {
	idx := strings.LastIndex(gid, "/")
	n, _ := strconv.ParseInt(gid[idx+1:], 10, 64)
	return n
}

// LocationGID builds a location global id from its numeric id.
func LocationGID(id int64) string {
	return fmt.Sprintf("gid://shopify/Location/%d", id)
}

// NextPageInfo extracts the page_info cursor for the next page from a
// paginated response's Link header. Returns "" when there is no next page.
func NextPageInfo(h http.Header) string {
	link := h.Get("Link")
	if link == "" {
		return ""
	}
	for _, part := range strings.Split(link, ",") {
		if !strings.Contains(part, `rel="next"`) {
			continue
		}
		start := strings.Index(part, "page_info=")
		if start < 0 {
			return ""
		}
		cursor := part[start+len("page_info="):]
		if end := strings.IndexAny(cursor, ">&"); end >= 0 {
			cursor = cursor[:end]
		}
		return cursor
	}
	return ""
}
