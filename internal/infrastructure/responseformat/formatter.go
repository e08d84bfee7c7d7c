package responseformat

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	ContentTypeJSON    = "application/json"
	ContentTypeMsgPack = "application/x-msgpack"
)

// Formatter handles encoding and writing responses in JSON or MessagePack format
type Formatter struct{}

// NewFormatter creates a new response formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// WantsMsgPack reports whether the request asked for MessagePack, either with
// format=msgpack or through the Accept header.
func WantsMsgPack(req *http.Request) bool {
	if req.URL.Query().Get("format") == "msgpack" {
		return true
	}
	return strings.Contains(req.Header.Get("Accept"), ContentTypeMsgPack)
}

// WriteResponse writes data with status. JSON is the default format.
func (f *Formatter) WriteResponse(w http.ResponseWriter, req *http.Request, status int, data any) error {
	if WantsMsgPack(req) {
		return f.writeMsgPack(w, status, data)
	}
	return f.writeJSON(w, status, data)
}

func (f *Formatter) writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

func (f *Formatter) writeMsgPack(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", ContentTypeMsgPack)
	w.WriteHeader(status)
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json")
	return encoder.Encode(data)
}
