package picview

import "strings"

// PathItem is one directory entry surfaced to the caller of a listing.
type PathItem struct {
	IsDirectory bool   `json:"is_directory"`
	Path        string `json:"path"`
}

// ImagePayload is the encoded content of a single image file.
type ImagePayload struct {
	// MIMEType is the content type detected by sniffing the file's leading bytes.
	MIMEType string `json:"mime_type"`

	// Data is the file content in standard (padded) base64.
	Data string `json:"data"`
}

// DataURI renders the payload as data:<mime>;base64,<data>, usable directly
// as an image source reference.
func (p ImagePayload) DataURI() string {
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(p.MIMEType) + len(p.Data))
	b.WriteString("data:")
	b.WriteString(p.MIMEType)
	b.WriteString(";base64,")
	b.WriteString(p.Data)
	return b.String()
}

// IsSupportedExtension reports whether a file extension (with or without the
// leading dot) names a listable image. The comparison is case-insensitive.
func IsSupportedExtension(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, allowed := range SupportedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// IsSupportedMIMEType reports whether a sniffed content type may be loaded.
func IsSupportedMIMEType(mimeType string) bool {
	for _, allowed := range SupportedMIMETypes {
		if mimeType == allowed {
			return true
		}
	}
	return false
}
