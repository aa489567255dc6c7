package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type BanController struct {
	db *mongo.Database
}

func NewBanController(db *mongo.Database) *BanController {
	return &BanController{db: db}
}

func (bc *BanController) users() *mongo.Collection {
	return bc.db.Collection(config.UserDataCollection)
}

// normalizePhone strips separators and validates the number: optional
// leading +, then 6 to 15 digits.
func normalizePhone(raw string) (string, error) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')':
			// separators are dropped
		default:
			return "", errors.New("invalid phone number")
		}
	}
	digits := strings.TrimPrefix(b.String(), "+")
	if len(digits) < 6 || len(digits) > 15 {
		return "", errors.New("invalid phone number")
	}
	return b.String(), nil
}

// CheckData looks up a customer record by phone number before a ban is
// placed. Not finding one is a valid answer, not an error.
func (bc *BanController) CheckData(c *gin.Context) {
	var req struct {
		PhoneNumber string `json:"phoneNumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phoneNumber is required"})
		return
	}
	phone, err := normalizePhone(req.PhoneNumber)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.UserData
	err = bc.users().FindOne(c.Request.Context(), bson.M{"phoneNumber": phone}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	if err != nil {
		utils.LogError(err, "ban: check data")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking user data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "userData": user})
}

// banAction is what a ban toggle resolves to against the current record.
type banAction int

const (
	banNoop banAction = iota
	banApply
	banLift
	banUpsertSentinel
	banNotFound
)

// banTransition decides what a ban toggle does. A nil user means no record
// exists for the number; banning one upserts a sentinel record, unbanning
// one is a 404. Repeating the current state is a no-op, so a
// double-submitted ban never duplicates history entries. Unbanning clears
// the flag and date but keeps the history.
func banTransition(user *models.UserData, ban bool, now time.Time, reason string) (banAction, bson.M) {
	switch {
	case user == nil && !ban:
		return banNotFound, nil
	case user == nil:
		return banUpsertSentinel, bson.M{
			"$set": bson.M{
				"name":      models.UnregisteredUserName,
				"banStatus": true,
				"banDate":   now,
			},
			"$push": bson.M{"banHistory": models.BanEvent{Date: now, Reason: reason}},
		}
	case user.BanStatus == ban:
		return banNoop, nil
	case ban:
		return banApply, bson.M{
			"$set":  bson.M{"banStatus": true, "banDate": now},
			"$push": bson.M{"banHistory": models.BanEvent{Date: now, Reason: reason}},
		}
	default:
		return banLift, bson.M{
			"$set":   bson.M{"banStatus": false},
			"$unset": bson.M{"banDate": ""},
		}
	}
}

// UpdateBanStatus toggles a ban per banTransition.
func (bc *BanController) UpdateBanStatus(c *gin.Context) {
	var req struct {
		PhoneNumber  string `json:"phoneNumber" binding:"required"`
		NewBanStatus *bool  `json:"newBanStatus" binding:"required"`
		Reason       string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phoneNumber and newBanStatus are required"})
		return
	}
	phone, err := normalizePhone(req.PhoneNumber)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	var existing *models.UserData
	var user models.UserData
	err = bc.users().FindOne(ctx, bson.M{"phoneNumber": phone}).Decode(&user)
	switch {
	case err == mongo.ErrNoDocuments:
	case err != nil:
		utils.LogError(err, "ban: lookup")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error updating ban status"})
		return
	default:
		existing = &user
	}

	action, update := banTransition(existing, *req.NewBanStatus, time.Now(), req.Reason)
	switch action {
	case banNotFound:
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
		return
	case banNoop:
		c.JSON(http.StatusOK, gin.H{"success": true, "changed": false})
		return
	}

	var opts []*options.UpdateOptions
	if action == banUpsertSentinel {
		opts = append(opts, options.Update().SetUpsert(true))
	}
	if _, err := bc.users().UpdateOne(ctx, bson.M{"phoneNumber": phone}, update, opts...); err != nil {
		utils.LogError(err, "ban: update")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error updating ban status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "changed": true})
}

// GetBannedUsers lists the currently banned records, history included.
func (bc *BanController) GetBannedUsers(c *gin.Context) {
	cursor, err := bc.users().Find(c.Request.Context(),
		bson.M{"banStatus": true},
		options.Find().SetProjection(bson.M{
			"name":        1,
			"phoneNumber": 1,
			"banDate":     1,
			"banHistory":  1,
			"_id":         0,
		}),
	)
	if err != nil {
		utils.LogError(err, "ban: list")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching banned users"})
		return
	}
	banned := []models.UserData{}
	if err := cursor.All(c.Request.Context(), &banned); err != nil {
		utils.LogError(err, "ban: decode")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching banned users"})
		return
	}
	c.JSON(http.StatusOK, banned)
}
