package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type UserController struct {
	db *mongo.Database
}

func NewUserController(db *mongo.Database) *UserController {
	return &UserController{db: db}
}

func (uc *UserController) users() *mongo.Collection {
	return uc.db.Collection(config.UserDataCollection)
}

func (uc *UserController) ListUsers(c *gin.Context) {
	cursor, err := uc.users().Find(c.Request.Context(), bson.M{})
	if err != nil {
		utils.LogError(err, "users: list")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users"})
		return
	}
	users := []models.UserData{}
	if err := cursor.All(c.Request.Context(), &users); err != nil {
		utils.LogError(err, "users: decode")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUser renames the record behind a phone number.
func (uc *UserController) UpdateUser(c *gin.Context) {
	var req struct {
		PhoneNumber string `json:"phoneNumber" binding:"required"`
		NewName     string `json:"newName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phoneNumber and newName are required"})
		return
	}

	result, err := uc.users().UpdateOne(c.Request.Context(),
		bson.M{"phoneNumber": req.PhoneNumber},
		bson.M{"$set": bson.M{"name": req.NewName}},
	)
	if err != nil {
		utils.LogError(err, "users: update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating user"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	var req struct {
		PhoneNumber string `json:"phoneNumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phoneNumber is required"})
		return
	}

	result, err := uc.users().DeleteOne(c.Request.Context(), bson.M{"phoneNumber": req.PhoneNumber})
	if err != nil {
		utils.LogError(err, "users: delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting user"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (uc *UserController) UserCount(c *gin.Context) {
	count, err := uc.users().CountDocuments(c.Request.Context(), bson.M{})
	if err != nil {
		utils.LogError(err, "users: count")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching user count"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
