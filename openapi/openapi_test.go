package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	v "github.com/Gobd/apischema"
	"github.com/Gobd/apischema/openapi"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	_, err := openapi.NewRequest(nil)
	assert.Error(t, err)

	ref, err := openapi.NewRequest(itemSchema)
	require.NoError(t, err)
	assert.True(t, ref.Value.Required)

	media := ref.Value.Content.Get("application/json")
	require.NotNil(t, media)
	assert.Equal(t, []string{"name", "price"}, media.Schema.Value.Required)
	assert.Contains(t, media.Schema.Value.Properties, "price")
}

func TestNewSchemaRef(t *testing.T) {
	ref, err := openapi.NewSchemaRef(itemSchema)
	require.NoError(t, err)
	assert.True(t, ref.Value.Type.Is(openapi3.TypeObject))

	ref, err = openapi.NewSchemaRef(Item{})
	require.NoError(t, err)
	assert.Contains(t, ref.Value.Properties, "id")
}

func TestNewResponse(t *testing.T) {
	_, err := openapi.NewResponse(nil)
	assert.Error(t, err)

	resp, err := openapi.NewResponse(map[string]openapi.Response{
		"200": {Desc: "OK", Bodies: []any{Item{}}},
		"204": {Desc: "No content"},
		"409": {Desc: "Conflict", Bodies: []any{v.ErrorEnvelope{}, itemSchema}},
	})
	require.NoError(t, err)

	assert.NotNil(t, resp.Status(200).Value.Content.Get("application/json"))
	assert.Nil(t, resp.Status(204).Value.Content)
	conflict := resp.Status(409).Value.Content.Get("application/json").Schema.Value
	assert.Len(t, conflict.OneOf, 2)
}

func TestAddEndpoint_ValidationResponse(t *testing.T) {
	doc := openapi.DocBase("Shop API", "", "1.0.0")

	openapi.Post(doc, "/items", "createItem", openapi.Endpoint{Request: itemSchema})
	openapi.Put(doc, "/items/{id}", "replaceItem", openapi.Endpoint{
		Request: itemSchema,
		Responses: map[string]openapi.Response{
			"200": {Desc: "Replaced", Bodies: []any{Item{}}},
			"400": {Desc: "Custom"},
		},
	})
	openapi.Delete(doc, "/items/{id}", "deleteItem", openapi.Endpoint{})
	openapi.Patch(doc, "/items/{id}", "patchItem", openapi.Endpoint{Response: Item{}})

	post := doc.Paths.Value("/items").Post
	require.NotNil(t, post.RequestBody)
	bad := post.Responses.Status(400)
	require.NotNil(t, bad)
	assert.Equal(t, "Validation failed", *bad.Value.Description)

	item := doc.Paths.Value("/items/{id}")
	assert.Equal(t, "Custom", *item.Put.Responses.Status(400).Value.Description)
	assert.Nil(t, item.Delete.RequestBody)
	assert.Nil(t, item.Delete.Responses.Status(400))
	assert.NotNil(t, item.Patch.Responses.Status(200))
}

func TestDocsHandler(t *testing.T) {
	doc := openapi.DocBase("Shop API", "Example API", "1.0.0")
	openapi.Post(doc, "/items", "createItem", openapi.Endpoint{Request: itemSchema, Response: Item{}})

	h, err := openapi.DocsHandler("/docs", doc)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/docs.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "3.0.3", got["openapi"])
	assert.Contains(t, got["paths"], "/items")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/other", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDocsHandler_InvalidDoc(t *testing.T) {
	doc := openapi.DocBase("", "", "")
	_, err := openapi.DocsHandler("/docs", doc)
	assert.Error(t, err)
	assert.Panics(t, func() { openapi.DocsHandlerMust("/docs", doc) })
}

func TestAddPath_UnsupportedMethod(t *testing.T) {
	doc := openapi.DocBase("Shop API", "", "1.0.0")
	assert.Panics(t, func() {
		openapi.AddPath("/items", http.MethodHead, doc, &openapi3.Operation{})
	})
}
