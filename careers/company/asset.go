package company

import (
	"path"
	"strings"
)

// AssetKind is an uploadable branding image
type AssetKind string

const (
	AssetLogo   AssetKind = "logo"
	AssetBanner AssetKind = "banner"
)

const MaxAssetSize = 5 << 20

var assetContentTypes = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
	"image/gif":     ".gif",
}

// Column is the URL column the asset is stored in
func (k AssetKind) Column() string {
	switch k {
	case AssetLogo:
		return "logo_url"
	case AssetBanner:
		return "banner_url"
	}
	return ""
}

// ValidateAsset checks kind, size and content type and returns the file
// extension to store the asset under
func ValidateAsset(kind AssetKind, contentType string, size int64) (string, error) {
	if kind.Column() == "" {
		return "", ErrInvalidAsset().WithDetail("kind", kind)
	}
	if size <= 0 || size > MaxAssetSize {
		return "", ErrInvalidAsset().WithDetail("size", size).WithDetail("max_size", MaxAssetSize)
	}
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	ext, ok := assetContentTypes[ct]
	if !ok {
		return "", ErrInvalidAsset().WithDetail("content_type", contentType)
	}
	return ext, nil
}

// AssetPath is the storage path of a company asset
func AssetPath(c *Company, kind AssetKind, name, ext string) string {
	return path.Join("companies", c.ID.String(), string(kind), name+ext)
}
