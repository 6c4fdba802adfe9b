package blogservice

import "github.com/microcosm-cc/bluemonday"

// contentPolicy keeps user formatting markup and drops scripts, event
// handlers and other active content.
var contentPolicy = bluemonday.UGCPolicy()

func sanitizeContent(content string) string {
	return contentPolicy.Sanitize(content)
}
