package validation

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func fileHeader(t *testing.T, field, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File[field][0]
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("visitor@example.com"))

	for _, bad := range []string{"", "not-an-email", "Visitor <visitor@example.com>"} {
		err := ValidateEmail(bad)
		require.Error(t, err, bad)
		var verr *Error
		assert.True(t, errors.As(err, &verr), bad)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "admin@example.com", NormalizeEmail("  Admin@Example.COM "))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
	assert.Error(t, ValidatePassword(string(bytes.Repeat([]byte("a"), 73))))
}

func TestRequired(t *testing.T) {
	assert.NoError(t, Required("email", "a", "password", "b"))

	err := Required("email", "", "password", "b")
	require.Error(t, err)
	assert.Equal(t, "email is required", err.Error())

	err = Required("email", "", "password", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all fields are required")
}

func TestValidateFile_ImageOrDocument(t *testing.T) {
	png := fileHeader(t, "file", "badge.png", "image/png", pngHeader)
	assert.NoError(t, ValidateFile(png, DocumentConstraints, ImageConstraints))

	pdf := fileHeader(t, "file", "cert.pdf", "application/pdf", []byte("%PDF-1.4\n"))
	assert.NoError(t, ValidateFile(pdf, DocumentConstraints, ImageConstraints))

	txt := fileHeader(t, "file", "notes.txt", "text/plain", []byte("hello"))
	assert.Error(t, ValidateFile(txt, DocumentConstraints, ImageConstraints))
}

func TestValidatePDF(t *testing.T) {
	pdf := fileHeader(t, "cv", "cv.pdf", "application/pdf", []byte("%PDF-1.7\n"))
	assert.NoError(t, ValidatePDF(pdf))

	declaredWrong := fileHeader(t, "cv", "cv.pdf", "application/octet-stream", []byte("%PDF-1.7\n"))
	assert.Error(t, ValidatePDF(declaredWrong))

	fake := fileHeader(t, "cv", "cv.pdf", "application/pdf", []byte("plain text"))
	assert.Error(t, ValidatePDF(fake))

	assert.Error(t, ValidatePDF(nil))
}
