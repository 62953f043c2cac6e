package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"bugstore/pkg/customer"
	"bugstore/pkg/logger"
	"bugstore/pkg/otel"
	"bugstore/pkg/response"
)

// createCustomerHandler registers a new customer.
// @Summary Create customer
// @Accept json
// @Produce json
// @Param customer body customer.CreateRequest true "Customer"
// @Success 201 {object} response.Response[customer.Customer]
// @Failure 400 {object} response.Response[customer.Customer]
// @Router /v1/customers [post]
func createCustomerHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createCustomerHandler")
	defer span.End()

	var req customer.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, 0, response.Fail[customer.Customer](err.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		respond(w, 0, response.Fail[customer.Customer](err.Error()))
		return
	}

	resp := customers.Create(ctx, req)
	if !resp.IsSuccess() {
		logger.Log.Error("create customer",
			zap.String("trace_id", otel.GetTraceID(ctx)),
			zap.String("message", resp.Message))
		respond(w, 0, resp)
		return
	}
	w.Header().Set("Location", "/v1/customers/"+resp.Data.ID)
	respond(w, http.StatusCreated, resp)
}

// listCustomersHandler lists all customers.
// @Summary List customers
// @Produce json
// @Success 200 {object} response.Response[[]customer.Customer]
// @Router /v1/customers [get]
func listCustomersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listCustomersHandler")
	defer span.End()

	respond(w, http.StatusOK, customers.List(ctx))
}

// getCustomerHandler retrieves a customer by ID.
// @Summary Get customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} response.Response[customer.Customer]
// @Router /v1/customers/{id} [get]
func getCustomerHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getCustomerHandler")
	defer span.End()

	respond(w, http.StatusOK, customers.GetByID(ctx, mux.Vars(r)["id"]))
}

// updateCustomerHandler updates an existing customer.
// @Summary Update customer
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param customer body customer.UpdateRequest true "Customer"
// @Success 200 {object} response.Response[customer.Customer]
// @Failure 400 {object} response.Response[customer.Customer]
// @Router /v1/customers/{id} [put]
func updateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateCustomerHandler")
	defer span.End()

	var req customer.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, 0, response.Fail[customer.Customer](err.Error()))
		return
	}
	req.ID = mux.Vars(r)["id"]
	if err := req.Validate(); err != nil {
		respond(w, 0, response.Fail[customer.Customer](err.Error()))
		return
	}

	respond(w, http.StatusOK, customers.Update(ctx, req))
}

// deleteCustomerHandler removes a customer.
// @Summary Delete customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} response.Response[customer.Customer]
// @Failure 400 {object} response.Response[customer.Customer]
// @Router /v1/customers/{id} [delete]
func deleteCustomerHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteCustomerHandler")
	defer span.End()

	respond(w, http.StatusOK, customers.Delete(ctx, mux.Vars(r)["id"]))
}
