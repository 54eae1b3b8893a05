package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvegadev/comanda/models"
	"github.com/mvegadev/comanda/usecases"
	"github.com/mvegadev/comanda/utils"
)

type UserController struct {
	users *usecases.UserUseCases
}

func NewUserController(users *usecases.UserUseCases) *UserController {
	return &UserController{users: users}
}

// Register -> create a staff account
func (ctrl *UserController) Register(c *gin.Context) {
	var req struct {
		Name     string          `json:"name" binding:"required"`
		Email    string          `json:"email" binding:"required,email"`
		Password string          `json:"password" binding:"required"`
		Role     models.UserRole `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := ctrl.users.Register(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.InfoLogger.Printf("Registered %s as %s", user.Email, user.Role)
	utils.RespondJSON(c, http.StatusCreated, "User registered successfully", user)
}

// Login -> exchange credentials for a JWT
func (ctrl *UserController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := ctrl.users.Authenticate(req.Email, req.Password)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

func (ctrl *UserController) GetProfile(c *gin.Context) {
	userID := c.GetString("userID")
	user, err := ctrl.users.Get(userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "User profile", user)
}

func (ctrl *UserController) GetAllUsers(c *gin.Context) {
	if role := c.Query("role"); role != "" {
		users, err := ctrl.users.ListByRole(models.UserRole(role))
		if err != nil {
			respondDomainError(c, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "List of users", users)
		return
	}

	users, err := ctrl.users.ListAll()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of users", users)
}

func (ctrl *UserController) GetUser(c *gin.Context) {
	user, err := ctrl.users.Get(c.Param("user_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "User detail", user)
}

func (ctrl *UserController) UpdateUser(c *gin.Context) {
	var patch models.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := ctrl.users.Update(c.Param("user_id"), patch)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "User updated", user)
}
