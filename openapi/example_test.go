package openapi_test

import (
	"fmt"

	v "github.com/Gobd/apischema"
	"github.com/Gobd/apischema/openapi"
)

var itemSchema = v.MustSchema(
	v.F("name", v.FieldRule{Type: v.KindString, Required: true, Min: v.Float(1), Max: v.Float(200)}),
	v.F("price", v.FieldRule{Type: v.KindNumber, Required: true, Min: v.Float(0.01)}),
)

type Item struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func ExamplePost() {
	doc := openapi.DocBase("Shop API", "Example API", "1.0.0")

	openapi.Post(doc, "/items", "createItem", openapi.Endpoint{
		Summary:  "Create an item",
		Request:  itemSchema,
		Response: Item{},
	})

	op := doc.Paths.Value("/items").Post
	fmt.Println(op.OperationID)
	fmt.Println(op.Responses.Status(400).Value.Content.Get("application/json") != nil)
	// Output:
	// createItem
	// true
}

func ExampleDocBase() {
	doc := openapi.DocBase("Dashboard API", "Marketing operations", "2.1.0")
	fmt.Println(doc.OpenAPI, doc.Info.Title, doc.Info.Version)
	// Output: 3.0.3 Dashboard API 2.1.0
}

func ExampleGet() {
	doc := openapi.DocBase("Shop API", "Example API", "1.0.0")

	openapi.Get(doc, "/items/{id}", "getItem", openapi.Endpoint{Response: Item{}})

	op := doc.Paths.Value("/items/{id}").Get
	fmt.Println(op.OperationID, op.RequestBody == nil, op.Responses.Status(400) == nil)
	// Output: getItem true true
}
