package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doctorsportal/controllers"
)

func Register(
	r *gin.Engine,
	appointments *controllers.AppointmentController,
	doctors *controllers.DoctorController,
	users *controllers.UserController,
	payments *controllers.PaymentController,
	verify gin.HandlerFunc,
) {
	// health-check placeholder
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello Doctors Portal!")
	})

	appointments.Routes(r, verify)
	doctors.Routes(r)
	users.Routes(r, verify)
	payments.Routes(r)
}
