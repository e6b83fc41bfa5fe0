package media

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart.FileHeader by parsing a form
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	part.Write(content)
	require.NoError(t, w.Close())

	req, err := http.NewRequest("POST", "/", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestSaveAndRemove(t *testing.T) {
	store := NewStore(t.TempDir())

	rel, err := store.Save(fileHeader(t, "Informe.DOCX", []byte("hola")), "documentos")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, "documentos/"))
	assert.True(t, strings.HasSuffix(rel, ".docx"))

	content, err := os.ReadFile(store.Path(rel))
	require.NoError(t, err)
	assert.Equal(t, "hola", string(content))

	other, err := store.Save(fileHeader(t, "Informe.DOCX", []byte("otro")), "documentos")
	require.NoError(t, err)
	assert.NotEqual(t, rel, other)

	require.NoError(t, store.Remove(rel))
	_, err = os.Stat(store.Path(rel))
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, store.Remove(rel))
	assert.NoError(t, store.Remove(""))
}

func TestOpenRejectsEscapes(t *testing.T) {
	store := NewStore("/srv/media")

	p, err := store.Open("documentos/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/srv/media/documentos/a.pdf", p)

	for _, rel := range []string{"", "../etc/passwd", "documentos/../../x", "/abs", "a//b"} {
		_, err := store.Open(rel)
		assert.ErrorIs(t, err, ErrInvalidPath, rel)
	}
}
