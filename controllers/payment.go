package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"doctorsportal/services"
)

type PaymentController struct {
	service *services.PaymentService
}

func NewPaymentController(service *services.PaymentService) *PaymentController {
	return &PaymentController{service: service}
}

func (ct *PaymentController) Routes(r *gin.Engine) {
	r.POST("/create-payment-intent", ct.CreateIntent)
}

type createPaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

/*
* Convert the price to minor units and pass it to the gateway; gateway
* rejections surface to the caller instead of crashing the process
 */
func (ct *PaymentController) CreateIntent(c *gin.Context) {
	var req createPaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	secret, err := ct.service.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		log.Println("Error from CreateIntent:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment service rejected the request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}
