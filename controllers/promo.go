package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type PromoController struct {
	db *mongo.Database
}

func NewPromoController(db *mongo.Database) *PromoController {
	return &PromoController{db: db}
}

func (pc *PromoController) collection() *mongo.Collection {
	return pc.db.Collection(config.PromoCodesCollection)
}

type promoRequest struct {
	Code       string  `json:"code"`
	Percentage float64 `json:"percentage"`
}

// validatePromo normalizes a promo submission: codes are stored uppercased
// and the discount must be a positive percentage.
func validatePromo(code string, percentage float64) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", errors.New("Code is required")
	}
	if percentage <= 0 {
		return "", errors.New("Percentage must be greater than zero")
	}
	return code, nil
}

func (pc *PromoController) ListPromoCodes(c *gin.Context) {
	cursor, err := pc.collection().Find(c.Request.Context(), bson.M{})
	if err != nil {
		utils.LogError(err, "promo: list")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	promoCodes := []models.PromoCode{}
	if err := cursor.All(c.Request.Context(), &promoCodes); err != nil {
		utils.LogError(err, "promo: decode")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, promoCodes)
}

func (pc *PromoController) CreatePromoCode(c *gin.Context) {
	var req promoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Code and percentage are required"})
		return
	}
	code, err := validatePromo(req.Code, req.Percentage)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	promo := models.PromoCode{ID: primitive.NewObjectID(), Code: code, Percentage: req.Percentage}
	if _, err := pc.collection().InsertOne(c.Request.Context(), promo); err != nil {
		utils.LogError(err, "promo: insert")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, promo)
}

func (pc *PromoController) UpdatePromoCode(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
		return
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var req promoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Code and percentage are required"})
		return
	}
	code, err := validatePromo(req.Code, req.Percentage)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := pc.collection().UpdateOne(
		c.Request.Context(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"code": code, "percentage": req.Percentage}},
	)
	if err != nil {
		utils.LogError(err, "promo: update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Promo code not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Promo code updated"})
}

func (pc *PromoController) DeletePromoCode(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
		return
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	result, err := pc.collection().DeleteOne(c.Request.Context(), bson.M{"_id": objID})
	if err != nil {
		utils.LogError(err, "promo: delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Promo code not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Promo code deleted"})
}
