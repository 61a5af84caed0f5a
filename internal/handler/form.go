package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/cheickthiam/portfolio/internal/api"
	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/cheickthiam/portfolio/internal/validation"
)

const (
	// maxUploadBody bounds a multipart request: one document, one image
	// and the text fields.
	maxUploadBody = 20 << 20
	maxMemory     = 10 << 20
)

// form is a request body that may be multipart or JSON. Multipart values
// take their string form; JSON values keep their type.
type form struct {
	multipart *multipart.Form
	json      map[string]json.RawMessage
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// parseForm reads a multipart or JSON body. Oversized bodies and
// malformed input are reported as validation errors.
func parseForm(w http.ResponseWriter, r *http.Request) (*form, error) {
	if isMultipart(r) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)
		err := r.ParseMultipartForm(maxMemory)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				return nil, validation.Errorf("file", "file too large")
			}
			return nil, validation.Errorf("body", "invalid multipart body: %v", err)
		}
		return &form{multipart: r.MultipartForm}, nil
	}

	f := &form{json: map[string]json.RawMessage{}}
	err := api.Decode(r, &f.json)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// decodeInto fills a patch struct. JSON bodies decode directly; multipart
// bodies go through the per-field accessors.
func (f *form) decodeInto(dst any) error {
	if f.json == nil {
		return nil
	}
	raw, err := json.Marshal(f.json)
	if err != nil {
		return err
	}
	err = json.Unmarshal(raw, dst)
	if err != nil {
		return validation.Errorf("body", "invalid request body: %v", err)
	}
	return nil
}

func (f *form) value(key string) *string {
	if f.multipart == nil {
		return nil
	}
	values, ok := f.multipart.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

// list accepts repeated fields, a single JSON array or a comma-separated
// value.
func (f *form) list(key string) *model.StringList {
	if f.multipart == nil {
		return nil
	}
	values, ok := f.multipart.Value[key]
	if !ok {
		values, ok = f.multipart.Value[key+"[]"]
	}
	if !ok {
		return nil
	}

	var out model.StringList
	if len(values) == 1 {
		v := strings.TrimSpace(values[0])
		switch {
		case strings.HasPrefix(v, "["):
			err := json.Unmarshal([]byte(v), &out)
			if err == nil {
				out = out.Clean()
				return &out
			}
		case strings.Contains(v, ","):
			values = strings.Split(v, ",")
		}
	}
	out = model.StringList(values).Clean()
	return &out
}

func (f *form) file(key string) *multipart.FileHeader {
	if f.multipart == nil {
		return nil
	}
	files := f.multipart.File[key]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

func deleted(w http.ResponseWriter, what string) {
	api.Message(w, http.StatusOK, what+" deleted successfully")
}
