package controllers

import (
	"github.com/gin-gonic/gin"

	"hotelbooking/response"
	"hotelbooking/services"
)

type CustomerController struct {
	Customers services.CustomerStore
}

func NewCustomerController(customers services.CustomerStore) CustomerController {
	return CustomerController{Customers: customers}
}

func (cc CustomerController) GetCustomers(c *gin.Context) {
	customers, err := cc.Customers.ListCustomers(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithTotal(c, customers, len(customers))
}

func (cc CustomerController) GetCustomerDetail(c *gin.Context) {
	customer, err := cc.Customers.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, customer)
}
