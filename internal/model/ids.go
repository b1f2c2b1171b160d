package model

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
	"time"
)

// NewID returns prefix-<suffix> where suffix is 8 chars of base32 (lowercase,
// no padding). 8 chars base32 ~= 40 bits of space, plenty for a single-user
// data set.
func NewID(prefix string) string {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing is effectively fatal elsewhere; here a
		// timestamp suffix keeps id generation total.
		return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	return prefix + "-" + strings.ToLower(enc.EncodeToString(b[:]))
}
