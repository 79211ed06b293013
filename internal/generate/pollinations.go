package generate

import (
	"fmt"
	"net/url"
)

const pollinationsBase = "https://image.pollinations.ai/prompt"

// PreviewURL builds the deterministic Pollinations link for a prompt. The
// service renders on GET, so the link alone is enough for a preview. It is
// never part of the fallback chain.
func PreviewURL(prompt string, width, height int) string {
	if width <= 0 {
		width = 1024
	}
	if height <= 0 {
		height = 1024
	}
	return fmt.Sprintf("%s/%s?width=%d&height=%d&nologo=true",
		pollinationsBase, url.PathEscape(prompt), width, height)
}
