package apischema_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	v "github.com/Gobd/apischema"
)

var userSchema = v.MustSchema(
	v.F("name", v.FieldRule{Type: v.KindString, Required: true, Max: v.Float(100), Sanitize: &v.SanitizeOptions{MaxLength: 100}}),
	v.F("email", v.FieldRule{Type: v.KindString, Required: true, Pattern: `[^@\s]+@[^@\s]+`}),
	v.F("age", v.FieldRule{Type: v.KindNumber, Min: v.Float(0), Max: v.Float(150)}),
)

func ExampleSchema_Evaluate() {
	res := userSchema.Evaluate(map[string]any{
		"name":  "  Alice ",
		"email": "alice@example.com",
		"age":   "30",
	})
	b, _ := json.Marshal(res.Value)
	fmt.Println(string(b))
	// Output: {"age":30,"email":"alice@example.com","name":"Alice"}
}

func ExampleSchema_Evaluate_errors() {
	res := userSchema.Evaluate(map[string]any{"email": "nope", "age": -1})
	for _, e := range res.Errors {
		fmt.Printf("%s %s: %s\n", e.Code, e.Field, e.Message)
	}
	// Output:
	// REQUIRED name: name is required
	// PATTERN_MISMATCH email: email does not match the required format
	// OUT_OF_RANGE age: age must be between 0 and 150
}

func ExampleCreateSchema() {
	validate, err := v.CreateSchema(
		v.F("status", v.FieldRule{Type: v.KindEnum, Required: true, EnumValues: []any{"draft", "published"}}),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(validate(map[string]any{"status": "archived"}))
	// Output: status must be one of: draft, published (INVALID_VALUE)
}

func ExampleUnmarshalAndEvaluate() {
	res, err := v.UnmarshalAndEvaluate([]byte(`{"name":"Bob","email":"bob@example.com","role":"admin"}`), userSchema)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Valid(), res.Value["name"], res.Value["role"])
	// Output: true Bob <nil>
}

func ExampleMiddleware() {
	h := v.Middleware(userSchema)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Println("handler saw", v.Body(r)["name"])
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"x@y"}`)))
	fmt.Print(rec.Code, " ", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":" Eve ","email":"eve@example.com"}`)))
	// Output:
	// 400 {"success":false,"error":"Validation failed","validationErrors":[{"field":"name","message":"name is required","code":"REQUIRED"}]}
	// handler saw Eve
}
