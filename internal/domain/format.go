package domain

import (
	"path/filepath"
	"strings"
)

const (
	MediaTypeDoc  = "application/msword"
	MediaTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// AllowedMediaTypes lists the word-processor formats accepted for upload.
var AllowedMediaTypes = []string{MediaTypeDoc, MediaTypeDocx}

func IsAllowedMediaType(mediaType string) bool {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}

	for _, allowed := range AllowedMediaTypes {
		if mediaType == allowed {
			return true
		}
	}

	return false
}

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatODT  Format = "odt"
	FormatRTF  Format = "rtf"
	FormatHTML Format = "html"
)

type formatInfo struct {
	contentType string
	filter      string
}

var formats = map[Format]formatInfo{
	FormatPDF:  {contentType: "application/pdf", filter: "pdf:writer_pdf_Export"},
	FormatODT:  {contentType: "application/vnd.oasis.opendocument.text", filter: "odt"},
	FormatRTF:  {contentType: "application/rtf", filter: "rtf"},
	FormatHTML: {contentType: "text/html; charset=utf-8", filter: "html:XHTML Writer File:UTF8"},
}

func ParseFormat(s string) (Format, bool) {
	f := Format(strings.ToLower(strings.TrimSpace(strings.TrimPrefix(s, "."))))
	_, ok := formats[f]
	return f, ok
}

func (f Format) Valid() bool {
	_, ok := formats[f]
	return ok
}

func (f Format) Extension() string {
	return "." + string(f)
}

func (f Format) ContentType() string {
	return formats[f].contentType
}

// Filter is the LibreOffice --convert-to argument for f.
func (f Format) Filter() string {
	return formats[f].filter
}

// ContentTypeByName returns the content type of a stored output, falling back to
// application/octet-stream for unknown extensions.
func ContentTypeByName(name string) string {
	if f, ok := ParseFormat(filepath.Ext(name)); ok {
		return f.ContentType()
	}
	return "application/octet-stream"
}
