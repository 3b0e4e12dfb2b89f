package file

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"

	"github.com/docsvault/filekit/core/storage"
)

const (
	keyTokenLength = 13
	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// objectKey synthesizes a collision-resistant storage key:
// {folder}/{epoch-millis}_{13-char base-36 token}.{extension}. Uniqueness is
// probabilistic; the no-overwrite upload policy catches the astronomically
// unlikely collision instead of a coordination protocol. The filename is
// sanitized before the extension is taken, so a hostile name cannot smuggle
// path segments into the key.
func objectKey(folder, filename string) string {
	var b strings.Builder
	if folder = strings.Trim(folder, "/"); folder != "" {
		b.WriteString(folder)
		b.WriteByte('/')
	}
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	b.WriteByte('_')
	b.WriteString(randomToken(keyTokenLength))
	b.WriteByte('.')
	b.WriteString(extension(storage.SanitizeFilename(filename)))
	return b.String()
}

// randomToken returns n base-36 characters from crypto/rand. rand.Read never
// fails on supported platforms.
func randomToken(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	for i, c := range buf {
		buf[i] = base36Alphabet[int(c)%len(base36Alphabet)]
	}
	return string(buf)
}
