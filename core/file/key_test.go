package file

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyPattern = regexp.MustCompile(`^(?:(.+)/)?(\d{13})_([0-9a-z]{13})\.(.+)$`)

func TestObjectKey_Shape(t *testing.T) {
	t.Parallel()

	key := objectKey("proposals", "budget.pdf")
	m := keyPattern.FindStringSubmatch(key)
	require.NotNil(t, m, "key %q does not match expected shape", key)

	assert.Equal(t, "proposals", m[1])
	assert.Equal(t, "pdf", m[4])

	millis, err := strconv.ParseInt(m[2], 10, 64)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), time.UnixMilli(millis), time.Minute)
}

func TestObjectKey_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 1000 {
		key := objectKey("docs", "same.pdf")
		_, dup := seen[key]
		require.False(t, dup, "duplicate key %q", key)
		seen[key] = struct{}{}
	}
}

func TestObjectKey_FolderHandling(t *testing.T) {
	t.Parallel()

	t.Run("empty folder has no leading slash", func(t *testing.T) {
		t.Parallel()
		key := objectKey("", "a.pdf")
		assert.False(t, strings.HasPrefix(key, "/"))
		assert.NotContains(t, key, "/")
	})

	t.Run("surrounding slashes trimmed", func(t *testing.T) {
		t.Parallel()
		key := objectKey("/nested/dir/", "a.pdf")
		assert.True(t, strings.HasPrefix(key, "nested/dir/"))
	})
}

func TestObjectKey_HostileFilenameSanitized(t *testing.T) {
	t.Parallel()

	// Path segments in the client-supplied name must not reach the key.
	key := objectKey("docs", "../../etc/passwd")
	assert.True(t, strings.HasPrefix(key, "docs/"), "got %q", key)
	assert.True(t, strings.HasSuffix(key, ".passwd"), "got %q", key)
	assert.NotContains(t, key, "..")
}

func TestObjectKey_ExtensionlessFilename(t *testing.T) {
	t.Parallel()

	// No dot in the name: the whole name becomes the suffix.
	key := objectKey("docs", "readme")
	assert.True(t, strings.HasSuffix(key, ".readme"), "got %q", key)
}

func TestRandomToken(t *testing.T) {
	t.Parallel()

	token := randomToken(13)
	assert.Len(t, token, 13)
	assert.Regexp(t, `^[0-9a-z]+$`, token)
}
