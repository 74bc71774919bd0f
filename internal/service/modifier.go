package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// defaultEllipsisLength bounds previews when the caller supplies no limit.
const defaultEllipsisLength = 200

// UniqueSlug derives a URL-safe identifier from a title: lowercased,
// hyphenated, with a millisecond-epoch suffix so identical titles
// submitted at different times still slug apart.
func UniqueSlug(title string) string {
	return slug.Make(title) + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// Ellipsis returns text unchanged when it fits within length, otherwise
// truncates to length-3, trims surrounding whitespace, and appends "...".
// A non-positive length falls back to defaultEllipsisLength. The bound is
// in characters, not bytes, so multi-byte text never gets cut mid-rune.
func Ellipsis(text string, length int) string {
	if length <= 0 {
		length = defaultEllipsisLength
	}
	runes := []rune(text)
	if len(runes) <= length {
		return text
	}
	return strings.TrimSpace(string(runes[:length-3])) + "..."
}
