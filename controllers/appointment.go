package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"doctorsportal/models"
	"doctorsportal/repository"
	"doctorsportal/services"
)

type AppointmentController struct {
	service *services.AppointmentService
}

func NewAppointmentController(service *services.AppointmentService) *AppointmentController {
	return &AppointmentController{service: service}
}

func (ct *AppointmentController) Routes(r *gin.Engine, verify gin.HandlerFunc) {
	r.GET("/appointments", ct.List)
	r.GET("/appointments/:id", ct.Fetch)
	r.POST("/appointments", verify, ct.Create)
	r.PUT("/appointments/:id", ct.AttachPayment)
}

type bookAppointmentRequest struct {
	PatientName string  `json:"patientName" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Date        string  `json:"date" binding:"required"`
	Time        string  `json:"time" binding:"required"`
	Treatment   string  `json:"treatment" binding:"required"`
	Price       float64 `json:"price"`
}

type attachPaymentRequest struct {
	TransactionID string  `json:"transactionId" binding:"required"`
	Amount        float64 `json:"amount"`
	Created       int64   `json:"created"`
}

/*
* Filter on the email and date query parameters, both matched exactly
 */
func (ct *AppointmentController) List(c *gin.Context) {
	appointments, err := ct.service.List(c.Request.Context(), c.Query("email"), c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list appointments"})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

/*
* Lookup by id; a malformed id is the client's fault, a miss is a null body
 */
func (ct *AppointmentController) Fetch(c *gin.Context) {
	appointment, err := ct.service.Fetch(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed appointment id"})
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch appointment"})
		return
	}
	c.JSON(http.StatusOK, appointment)
}

/*
* Bind the booking, fail closed on a bad body, insert and return the new id
 */
func (ct *AppointmentController) Create(c *gin.Context) {
	var req bookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := ct.service.Book(c.Request.Context(), &models.Appointment{
		PatientName: req.PatientName,
		Email:       req.Email,
		Date:        req.Date,
		Time:        req.Time,
		Treatment:   req.Treatment,
		Price:       req.Price,
	})
	if err != nil {
		log.Println("Error from Book:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create appointment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
}

/*
* Overwrite the payment sub-document for the given appointment id
 */
func (ct *AppointmentController) AttachPayment(c *gin.Context) {
	var req attachPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := ct.service.AttachPayment(c.Request.Context(), c.Param("id"), &models.Payment{
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Created:       req.Created,
	})
	if errors.Is(err, repository.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed appointment id"})
		return
	}
	if err != nil {
		log.Println("Error from AttachPayment:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not attach payment"})
		return
	}
	c.JSON(http.StatusOK, result)
}
