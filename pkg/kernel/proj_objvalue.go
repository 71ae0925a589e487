package kernel

import (
	"regexp"
	"strings"
)

type Email string

// Normalize lowercases and trims the address
func (e Email) Normalize() Email {
	return Email(strings.ToLower(strings.TrimSpace(string(e))))
}

type Phone string

type HexColor string

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{6}|[0-9a-fA-F]{3})$`)

// IsValid checks the #rrggbb or #rgb format
func (c HexColor) IsValid() bool {
	return hexColorPattern.MatchString(string(c))
}

type BucketURL string

func (b BucketURL) String() string { return string(b) }
