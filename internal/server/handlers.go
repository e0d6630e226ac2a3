package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matthieukhl/crmd/internal/mutate"
	"github.com/matthieukhl/crmd/internal/query"
)

// List handlers decode the filter/sort/page parameters into the closed query
// structs and hand the composed query to the store. Mutation handlers bind
// JSON and return the structured mutation result with a 200 regardless of
// business outcome; only malformed requests and storage failures use error
// status codes.

func (s *Server) listCustomers(c *gin.Context) {
	q, err := query.ParseCustomerQuery(c.Request.URL.Query())
	if err != nil {
		s.respondError(c, err)
		return
	}
	customers, total, err := s.store.ListCustomers(c.Request.Context(), q)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listEnvelope{Data: customers, Page: q.Page.Number, PageSize: q.Page.Size, Total: total})
}

func (s *Server) listProducts(c *gin.Context) {
	q, err := query.ParseProductQuery(c.Request.URL.Query())
	if err != nil {
		s.respondError(c, err)
		return
	}
	products, total, err := s.store.ListProducts(c.Request.Context(), q)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listEnvelope{Data: products, Page: q.Page.Number, PageSize: q.Page.Size, Total: total})
}

func (s *Server) listOrders(c *gin.Context) {
	q, err := query.ParseOrderQuery(c.Request.URL.Query())
	if err != nil {
		s.respondError(c, err)
		return
	}
	orders, total, err := s.store.ListOrders(c.Request.Context(), q)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listEnvelope{Data: orders, Page: q.Page.Number, PageSize: q.Page.Size, Total: total})
}

func (s *Server) createCustomer(c *gin.Context) {
	var in mutate.CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	result, err := s.mutate.CreateCustomer(c.Request.Context(), in)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type bulkCustomerRequest struct {
	Customers []mutate.CustomerInput `json:"customers"`
}

func (s *Server) bulkCreateCustomers(c *gin.Context) {
	var req bulkCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	result, err := s.mutate.BulkCreateCustomers(c.Request.Context(), req.Customers)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) createProduct(c *gin.Context) {
	var in mutate.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	result, err := s.mutate.CreateProduct(c.Request.Context(), in)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) createOrder(c *gin.Context) {
	var in mutate.OrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	result, err := s.mutate.CreateOrder(c.Request.Context(), in)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
