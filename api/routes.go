package api

import (
	"github.com/gin-gonic/gin"

	"github.com/hindsight-db/hindsight/usecases"
)

func addRoutes(r *gin.Engine, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe)

	r.POST("/customers", handleCreateCustomer(uc))
	r.GET("/customers/:customer_id", handleGetCustomer(uc))
	r.PATCH("/customers/:customer_id", handleUpdateCustomer(uc))
	r.DELETE("/customers/:customer_id", handleDeleteCustomer(uc))

	r.GET("/customers/:customer_id/revisions", handleListCustomerRevisions(uc))
	r.GET("/customers/:customer_id/versions/:revision", handleGetCustomerAtRevision(uc))
	r.GET("/versions/:revision/customers", handleListCustomersAtRevision(uc))
	r.GET("/customer-history", handleCustomerHistory(uc))

	r.POST("/addresses", handleCreateAddress(uc))
	r.GET("/addresses/:address_id", handleGetAddress(uc))
	r.PUT("/addresses/:address_id", handleUpdateAddress(uc))
	r.DELETE("/addresses/:address_id", handleDeleteAddress(uc))
	r.GET("/addresses/:address_id/revisions", handleListAddressRevisions(uc))
	r.GET("/addresses/:address_id/history", handleAddressHistory(uc))
}
