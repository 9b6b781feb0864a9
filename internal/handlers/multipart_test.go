package handlers

import (
	"bytes"
	"mime/multipart"
)

// newMultipart writes a single file field into body and returns the
// Content-Type header to send with it.
func newMultipart(body *bytes.Buffer, field, filename string, data []byte) string {
	w := multipart.NewWriter(body)
	part, _ := w.CreateFormFile(field, filename)
	_, _ = part.Write(data)
	_ = w.Close()
	return w.FormDataContentType()
}
