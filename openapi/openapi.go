package openapi

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"

	"github.com/Gobd/apischema"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// Response describes an HTTP response with a description and body types for
// schema generation. A body is either an *apischema.Schema or a Go value whose
// type is reflected with openapi3gen.
type Response struct {
	Desc   string
	Bodies []any
}

// Endpoint describes a single API operation for the convenience helpers
// [Get], [Post], [Put], [Patch], and [Delete].
type Endpoint struct {
	Summary     string
	Description string
	Request     *apischema.Schema   // validated request body
	Response    any                 // single 200 response body (convenience)
	Responses   map[string]Response // full response map (overrides Response if both set)
}

// NewRequestMust is like [NewRequest] but panics on error.
func NewRequestMust(s *apischema.Schema) *openapi3.RequestBodyRef {
	o, err := NewRequest(s)
	if err != nil {
		panic(err)
	}
	return o
}

// NewRequest describes a required JSON request body validated by s.
func NewRequest(s *apischema.Schema) (*openapi3.RequestBodyRef, error) {
	if s == nil {
		return nil, errors.New("no schema given")
	}
	body := openapi3.NewRequestBody().
		WithRequired(true).
		WithJSONSchema(s.OpenAPI())
	return &openapi3.RequestBodyRef{Value: body}, nil
}

// NewSchemaRef describes a response body value.
func NewSchemaRef(v any) (*openapi3.SchemaRef, error) {
	if s, ok := v.(*apischema.Schema); ok {
		return openapi3.NewSchemaRef("", s.OpenAPI()), nil
	}
	return openapi3gen.NewSchemaRefForValue(v, nil)
}

// NewResponseMust is like [NewResponse] but panics on error.
// Map key is status code (e.g. "200", "4xx").
func NewResponseMust(vs map[string]Response) *openapi3.Responses {
	o, err := NewResponse(vs)
	if err != nil {
		panic(err)
	}
	return o
}

// NewResponse creates an OpenAPI responses object. Map key is status code
// (e.g. "200", "4xx"); codes are added in sorted order so output is stable.
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(vs))
	codes := make([]string, 0, len(vs))
	for code := range vs {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	for _, code := range codes {
		resp, err := newResponse(vs[code])
		if err != nil {
			return nil, fmt.Errorf("response %s: %w", code, err)
		}
		opts = append(opts, openapi3.WithName(code, resp))
	}
	return openapi3.NewResponses(opts...), nil
}

// newResponse documents r. Several bodies become a oneOf.
func newResponse(r Response) (*openapi3.Response, error) {
	refs := make(openapi3.SchemaRefs, 0, len(r.Bodies))
	for _, b := range r.Bodies {
		ref, err := NewSchemaRef(b)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	desc := r.Desc
	resp := &openapi3.Response{Description: &desc}
	switch len(refs) {
	case 0:
	case 1:
		resp.Content = openapi3.NewContentWithJSONSchemaRef(refs[0])
	default:
		resp.Content = openapi3.NewContentWithJSONSchema(&openapi3.Schema{OneOf: refs})
	}
	return resp, nil
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// AddPath sets op as the handler of method at path in doc, creating the path
// item if needed. It panics on methods other than GET, POST, PUT, PATCH and
// DELETE.
func AddPath(path, method string, doc *openapi3.T, op *openapi3.Operation) {
	item := doc.Paths.Value(path)
	if item == nil {
		item = &openapi3.PathItem{}
	}

	switch method {
	case http.MethodGet:
		item.Get = op
	case http.MethodPost:
		item.Post = op
	case http.MethodPut:
		item.Put = op
	case http.MethodPatch:
		item.Patch = op
	case http.MethodDelete:
		item.Delete = op
	default:
		panic("openapi: unsupported method " + method)
	}

	doc.Paths.Set(path, item)
}

// addEndpoint builds an [openapi3.Operation] from ep and registers it at path+method.
func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
	}

	responses := maps.Clone(ep.Responses)
	if responses == nil {
		responses = map[string]Response{}
	}
	if ep.Responses == nil && ep.Response != nil {
		responses["200"] = Response{Desc: "OK", Bodies: []any{ep.Response}}
	}

	if ep.Request != nil {
		op.RequestBody = NewRequestMust(ep.Request)
		if _, ok := responses["400"]; !ok {
			responses["400"] = Response{Desc: "Validation failed", Bodies: []any{apischema.ErrorEnvelope{}}}
		}
	}

	if len(responses) > 0 {
		op.Responses = NewResponseMust(responses)
	} else {
		op.Responses = openapi3.NewResponses()
	}

	AddPath(path, method, doc, op)
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Delete registers a DELETE endpoint on doc.
func Delete(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodDelete, operationID, ep)
}
