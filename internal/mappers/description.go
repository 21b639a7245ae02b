package mappers

import "strings"

// ComposeDescription builds the product description markup:
// a DEADLINE/ETA header block, one blank paragraph, then the body.
// Pure function: the store silently drops malformed markup in some
// environments, so the output has to be byte-for-byte deterministic.
func ComposeDescription(deadline, eta, body string) string {
	deadline = strings.TrimSpace(deadline)
	eta = strings.TrimSpace(eta)
	body = strings.TrimSpace(body)

	var head []string
	if deadline != "" {
		head = append(head, "<strong>PREORDER DEADLINE:</strong> "+deadline)
	}
	if eta != "" {
		head = append(head, "<strong>ETA:</strong> "+eta)
	}
	headHTML := strings.Join(head, "<br>")

	// newlines del CSV son saltos de línea, no párrafos nuevos
	bodyHTML := strings.ReplaceAll(body, "\r\n", "\n")
	bodyHTML = strings.ReplaceAll(bodyHTML, "\n", "<br>")

	switch {
	case headHTML != "" && bodyHTML != "":
		return "<p>" + headHTML + "</p><p><br></p><p>" + bodyHTML + "</p>"
	case headHTML != "":
		return "<p>" + headHTML + "</p>"
	case bodyHTML != "":
		return "<p>" + bodyHTML + "</p>"
	}
	return ""
}
