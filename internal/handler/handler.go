package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/customers-service/internal/service"
)

// APIV1Prefix is the versioned mount point; the customers listing is also
// served at the root for existing clients.
const APIV1Prefix = "/api/v1"

// Register mounts all public routes on the given engine.
// The customers listing lives at the root (public contract) and under the
// versioned prefix; both share one handler.
func Register(r *gin.Engine, source Pinger, customerSvc service.CustomerService) {
	h := NewHealthHandler(source)
	customers := NewCustomerHandler(customerSvc)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	customers.Register(r)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		customers.Register(api)
	}
}
