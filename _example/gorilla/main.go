// Command gorilla demonstrates apischema middleware with a gorilla/mux router.
//
// Run:
//
//	cd _example/gorilla && go run .
//
// Then try:
//
//	curl -i -d '{"customer_name":"  Ada  ","item_count":"3"}' localhost:8080/orders
//	curl -i -d '{}' localhost:8080/orders
package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	v "github.com/Gobd/apischema"
	"github.com/Gobd/apischema/openapi"
	"github.com/gorilla/mux"
)

var orderSchema = v.MustSchema(
	v.F("customer_name", v.FieldRule{Type: v.KindString, Required: true, Max: v.Float(200), Sanitize: &v.SanitizeOptions{MaxLength: 200}}),
	v.F("item_count", v.FieldRule{Type: v.KindNumber, Required: true, Min: v.Float(1)}),
	v.F("shipping", v.FieldRule{Type: v.KindEnum, EnumValues: []any{"standard", "express"}}),
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	doc := openapi.DocBase("Example API (gorilla)", "Demonstrates apischema with gorilla/mux", "0.1.0")
	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
		Summary:  "Create an order",
		Request:  orderSchema,
		Response: orderSchema,
	})

	r := mux.NewRouter()
	r.PathPrefix("/docs/").Handler(openapi.DocsHandlerMust("/docs", doc))

	orders := r.Path("/orders").Subrouter()
	orders.Use(v.Middleware(orderSchema, v.WithLogger(logger)))
	orders.Methods(http.MethodPost).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v.Body(r))
	})

	logger.Info("listening", "addr", ":8080", "docs", "http://localhost:8080/docs/docs.json")
	if err := http.ListenAndServe(":8080", r); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
