package file

import "strings"

// contentTypeByExtension maps known office-document extensions to their MIME
// types. Intentionally kept separate from the validation allow-list: one
// answers "what is this file", the other "do we accept it".
var contentTypeByExtension = map[string]string{
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"ppt":  "application/vnd.ms-powerpoint",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// ContentTypeOf infers a MIME type from the filename's extension,
// case-insensitively. Unknown or missing extensions fall back to
// "application/octet-stream". The file content is never inspected.
func ContentTypeOf(filename string) string {
	ext := strings.ToLower(extension(filename))
	if ct, ok := contentTypeByExtension[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

// extension returns the substring after the last dot, or the whole name when
// there is no dot. The no-dot fallback keeps generated keys stable for
// extensionless uploads.
func extension(filename string) string {
	if i := strings.LastIndexByte(filename, '.'); i >= 0 {
		return filename[i+1:]
	}
	return filename
}
