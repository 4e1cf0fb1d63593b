package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

func (ct *UserController) Routes(r *gin.Engine, verify gin.HandlerFunc) {
	r.GET("/users/:email", ct.AdminStatus)
	r.POST("/users", ct.Create)
	r.PUT("/users", ct.Upsert)
	r.PUT("/users/admin", verify, ct.MakeAdmin)
}

type userRequest struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

type makeAdminRequest struct {
	Email string `json:"email" binding:"required,email"`
}

/*
* {admin:true} iff the user exists with the admin role; an unknown email is
* reported as non-admin, not as an error
 */
func (ct *UserController) AdminStatus(c *gin.Context) {
	isAdmin, err := ct.service.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

func (ct *UserController) Create(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := ct.service.Create(c.Request.Context(), &models.User{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		log.Println("Error from Create user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
}

/*
* Update-or-insert keyed by email
 */
func (ct *UserController) Upsert(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := ct.service.Upsert(c.Request.Context(), &models.User{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		log.Println("Error from Upsert user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not upsert user"})
		return
	}
	c.JSON(http.StatusOK, result)
}

/*
* The verified requester email comes from the identity middleware; the
* service refuses anonymous, unknown, and non-admin requesters alike
 */
func (ct *UserController) MakeAdmin(c *gin.Context) {
	var req makeAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	requester := c.GetString(middleware.IdentityKey)
	result, err := ct.service.Promote(c.Request.Context(), requester, req.Email)
	if errors.Is(err, services.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You do not have access to make admin!!"})
		return
	}
	if err != nil {
		log.Println("Error from Promote:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not promote user"})
		return
	}
	c.JSON(http.StatusOK, result)
}
