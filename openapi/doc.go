// Package openapi builds OpenAPI 3 documents for endpoints guarded by
// [apischema.Middleware]. Request bodies are described from the compiled
// [apischema.Schema]; every endpoint with a request schema also documents the
// 400 validation envelope.
//
// Use [DocBase] to create a base document, register endpoints with [Get],
// [Post], [Put], [Patch], or [Delete], and serve it with [DocsHandlerMust]:
//
//	doc := openapi.DocBase("dashboard-api", "Marketing dashboard API", "1.0")
//	openapi.Post(doc, "/api/todos", "createTodo", openapi.Endpoint{
//	    Request: todoSchema,
//	})
//	r.Handle("/docs/*", openapi.DocsHandlerMust("/docs", doc))
package openapi
