package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"bugstore/pkg/logger"
	"bugstore/pkg/otel"
	"bugstore/pkg/product"
	"bugstore/pkg/response"
)

// createProductHandler adds a product to the catalog.
// @Summary Create product
// @Accept json
// @Produce json
// @Param product body product.CreateRequest true "Product"
// @Success 201 {object} response.Response[product.Product]
// @Failure 400 {object} response.Response[product.Product]
// @Router /v1/products [post]
func createProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createProductHandler")
	defer span.End()

	var req product.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, 0, response.Fail[product.Product](err.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		respond(w, 0, response.Fail[product.Product](err.Error()))
		return
	}

	resp := products.Create(ctx, req)
	if !resp.IsSuccess() {
		logger.Log.Error("create product",
			zap.String("trace_id", otel.GetTraceID(ctx)),
			zap.String("message", resp.Message))
		respond(w, 0, resp)
		return
	}
	w.Header().Set("Location", "/v1/products/"+resp.Data.ID)
	respond(w, http.StatusCreated, resp)
}

// listProductsHandler lists the catalog.
// @Summary List products
// @Produce json
// @Success 200 {object} response.Response[[]product.Product]
// @Router /v1/products [get]
func listProductsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listProductsHandler")
	defer span.End()

	respond(w, http.StatusOK, products.List(ctx))
}

// getProductHandler retrieves a product by ID.
// @Summary Get product
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Response[product.Product]
// @Router /v1/products/{id} [get]
func getProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getProductHandler")
	defer span.End()

	respond(w, http.StatusOK, products.GetByID(ctx, mux.Vars(r)["id"]))
}

// updateProductHandler updates an existing product.
// @Summary Update product
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body product.UpdateRequest true "Product"
// @Success 200 {object} response.Response[product.Product]
// @Failure 400 {object} response.Response[product.Product]
// @Router /v1/products/{id} [put]
func updateProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateProductHandler")
	defer span.End()

	var req product.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, 0, response.Fail[product.Product](err.Error()))
		return
	}
	req.ID = mux.Vars(r)["id"]
	if err := req.Validate(); err != nil {
		respond(w, 0, response.Fail[product.Product](err.Error()))
		return
	}

	respond(w, http.StatusOK, products.Update(ctx, req))
}

// deleteProductHandler removes a product.
// @Summary Delete product
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Response[product.Product]
// @Failure 400 {object} response.Response[product.Product]
// @Router /v1/products/{id} [delete]
func deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteProductHandler")
	defer span.End()

	respond(w, http.StatusOK, products.Delete(ctx, mux.Vars(r)["id"]))
}
