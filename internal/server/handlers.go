package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/tjfontaine/bdfd-catalog/pkg/catalog"
)

// FunctionCatalog is the function side of the catalog as the server uses it.
// *catalog.FunctionClient satisfies it.
type FunctionCatalog interface {
	Info(ctx context.Context, tag string) (*catalog.Function, error)
	List(ctx context.Context) ([]catalog.Function, error)
	TagList(ctx context.Context) ([]string, error)
}

// CallbackCatalog is the callback side of the catalog as the server uses it.
// *catalog.CallbackClient satisfies it.
type CallbackCatalog interface {
	Info(ctx context.Context, name string) (*catalog.Callback, error)
	List(ctx context.Context) ([]catalog.Callback, error)
	TagList(ctx context.Context) ([]string, error)
}

type handlers struct {
	functions FunctionCatalog
	callbacks CallbackCatalog
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) listFunctions(w http.ResponseWriter, r *http.Request) {
	list, err := h.functions.List(r.Context())
	respond(w, r, list, err)
}

func (h *handlers) functionTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.functions.TagList(r.Context())
	respond(w, r, tags, err)
}

func (h *handlers) functionInfo(w http.ResponseWriter, r *http.Request) {
	tag, ok := tagParam(w, r)
	if !ok {
		return
	}
	fn, err := h.functions.Info(r.Context(), tag)
	respond(w, r, fn, err)
}

func (h *handlers) listCallbacks(w http.ResponseWriter, r *http.Request) {
	list, err := h.callbacks.List(r.Context())
	respond(w, r, list, err)
}

func (h *handlers) callbackTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.callbacks.TagList(r.Context())
	respond(w, r, tags, err)
}

func (h *handlers) callbackInfo(w http.ResponseWriter, r *http.Request) {
	name, ok := tagParam(w, r)
	if !ok {
		return
	}
	cb, err := h.callbacks.Info(r.Context(), name)
	respond(w, r, cb, err)
}

// tagParam returns the decoded {tag} path segment.
func tagParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	tag, err := url.PathUnescape(chi.URLParam(r, "tag"))
	if err != nil {
		AddError(r.Context(), err)
		writeErrorBody(w, http.StatusBadRequest, string(catalog.ErrorTypeInvalidArgument), "malformed tag: "+err.Error())
		return "", false
	}
	AddLogField(r.Context(), "tag", tag)
	return tag, true
}

func respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// writeError maps a catalog error onto its HTTP status and error body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	AddError(r.Context(), err)
	writeErrorBody(w, catalog.HTTPStatusCode(err), string(catalog.TypeOf(err)), err.Error())
}

func writeErrorBody(w http.ResponseWriter, status int, errType, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Type: errType, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
