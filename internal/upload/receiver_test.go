package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		fw, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	} else {
		require.NoError(t, mw.WriteField("name", "no file here"))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/item", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestSaveFromRequestStoresContent(t *testing.T) {
	receiver, err := NewReceiver(t.TempDir())
	require.NoError(t, err)

	content := []byte("image bytes")
	req := multipartRequest(t, "image", "photo.jpg", content)

	path, err := receiver.SaveFromRequest(req, "image")
	require.NoError(t, err)

	stored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, stored)

	name := filepath.Base(path)
	assert.True(t, strings.HasPrefix(name, "image-"))
	assert.True(t, strings.HasSuffix(name, "-photo.jpg"))
}

func TestSaveFromRequestMissingFile(t *testing.T) {
	receiver, err := NewReceiver(t.TempDir())
	require.NoError(t, err)

	req := multipartRequest(t, "", "", nil)

	_, err = receiver.SaveFromRequest(req, "image")
	assert.ErrorIs(t, err, ErrNoFile)
}

func TestSaveStripsDirectoryFromName(t *testing.T) {
	root := t.TempDir()
	receiver, err := NewReceiver(root)
	require.NoError(t, err)

	req := multipartRequest(t, "image", "../../escape.png", []byte("x"))

	path, err := receiver.SaveFromRequest(req, "image")
	require.NoError(t, err)

	rel, err := filepath.Rel(root, path)
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(rel, ".."))
}

func TestNewReceiverCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewReceiver(root)
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
