package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"bugstore/pkg/logger"
	"bugstore/pkg/order"
	"bugstore/pkg/otel"
	"bugstore/pkg/response"
)

// createOrderHandler places a new order.
// @Summary Create order
// @Accept json
// @Produce json
// @Param order body order.CreateRequest true "Order"
// @Success 201 {object} response.Response[order.Order]
// @Failure 400 {object} response.Response[order.Order]
// @Router /v1/orders [post]
func createOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createOrderHandler")
	defer span.End()

	var req order.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, 0, response.Fail[order.Order](err.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		respond(w, 0, response.Fail[order.Order](err.Error()))
		return
	}

	resp := orders.Create(ctx, req)
	if !resp.IsSuccess() {
		logger.Log.Error("create order",
			zap.String("trace_id", otel.GetTraceID(ctx)),
			zap.String("message", resp.Message))
		respond(w, 0, resp)
		return
	}
	w.Header().Set("Location", "/v1/orders/"+resp.Data.ID)
	respond(w, http.StatusCreated, resp)
}

// getOrderHandler retrieves an order with customer and product detail.
// @Summary Get order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Response[order.Order]
// @Failure 400 {object} response.Response[order.Order]
// @Router /v1/orders/{id} [get]
func getOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getOrderHandler")
	defer span.End()

	respond(w, http.StatusOK, orders.GetByID(ctx, mux.Vars(r)["id"]))
}
