package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/customers-service/internal/service"
	"github.com/maxviazov/customers-service/pkg/response"
)

type CustomerHandler struct {
	svc service.CustomerService
}

func NewCustomerHandler(svc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (h *CustomerHandler) Register(r gin.IRoutes) {
	r.GET("/customers", h.list)
}

// list passes the raw query through; parsing and validation live in the service
// so every transport gets the same rules and messages.
func (h *CustomerHandler) list(c *gin.Context) {
	q := service.ListQuery{
		Page:     c.Query("page"),
		Limit:    c.Query("limit"),
		Size:     c.Query("size"),
		Industry: c.Query("industry"),
	}
	page, err := h.svc.ListCustomers(c.Request.Context(), q)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, page)
}
