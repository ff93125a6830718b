// Package avatar derives avatar URLs from email addresses.
package avatar

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// URL returns a protocol-relative gravatar URL for the email: 200px,
// rated pg, with the mystery-man image when no gravatar exists.
func URL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return "//www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}
