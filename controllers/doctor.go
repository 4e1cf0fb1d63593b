package controllers

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"doctorsportal/services"
)

type DoctorController struct {
	service *services.DoctorService
}

func NewDoctorController(service *services.DoctorService) *DoctorController {
	return &DoctorController{service: service}
}

func (ct *DoctorController) Routes(r *gin.Engine) {
	r.POST("/doctors", ct.Create)
	r.GET("/doctors", ct.List)
}

/*
* Multipart submission: name and email fields plus one image file part
* A missing or unreadable part is a client error, never a crash
 */
func (ct *DoctorController) Create(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	if name == "" || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and email fields are required"})
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not open image file"})
		return
	}
	defer file.Close()
	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image file"})
		return
	}

	id, err := ct.service.Register(c.Request.Context(), name, email, image)
	if err != nil {
		log.Println("Error from Register:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create doctor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
}

func (ct *DoctorController) List(c *gin.Context) {
	doctors, err := ct.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list doctors"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}
