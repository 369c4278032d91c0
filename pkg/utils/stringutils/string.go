package stringutils

import (
	"strings"

	"github.com/samber/lo"
)

const (
	imageSeparator     = ";"
	recipientSeparator = ","
)

// JoinImages joins the image references into the single images parameter
func JoinImages(images []string) string {
	return strings.Join(images, imageSeparator)
}

// SplitRecipients returns the trimmed, non-empty addresses of a comma separated list
func SplitRecipients(recipients string) []string {
	parts := lo.Map(strings.Split(recipients, recipientSeparator), func(part string, _ int) string {
		return strings.TrimSpace(part)
	})
	return lo.Compact(parts)
}

// MaskSecret hides everything but the length hint of a secret, for logs
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	return strings.Repeat("*", lo.Min([]int{len(secret), 8}))
}
