package openapi

import (
	"context"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// DocsHandler returns an http.Handler serving doc as JSON at prefix +
// "/docs.json". The document is validated and encoded once, up front.
func DocsHandler(prefix string, doc *openapi3.T) (http.Handler, error) {
	if err := doc.Validate(context.Background()); err != nil {
		return nil, err
	}
	specJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}

	return http.StripPrefix(prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/docs.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(specJSON)
	})), nil
}

// DocsHandlerMust is like DocsHandler but panics on error.
func DocsHandlerMust(prefix string, doc *openapi3.T) http.Handler {
	h, err := DocsHandler(prefix, doc)
	if err != nil {
		panic(err)
	}
	return h
}
