package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/config"
	"backend/models"
	"backend/reporting"
	"backend/utils"
)

type CashController struct {
	db *mongo.Database
}

func NewCashController(db *mongo.Database) *CashController {
	return &CashController{db: db}
}

func (cc *CashController) entries() *mongo.Collection {
	return cc.db.Collection(config.CashBalanceCollection)
}

// FetchCashBalance computes the all-time counter balance per branch: cash
// that came in through fulfilled orders (net of delivery charges) plus the
// cash-addition expense rows, minus everything paid out of the drawer. UPI
// collections leave the drawer untouched, so Extra UPI rows are skipped.
func (cc *CashController) FetchCashBalance(c *gin.Context) {
	results := map[string]float64{}

	for _, pair := range reporting.AllBranches() {
		balance, err := cc.branchCounterBalance(c.Request.Context(), pair)
		if err != nil {
			utils.LogError(err, "cash: counter balance")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching all-time data"})
			return
		}
		results[pair.Branch] = balance
	}

	c.JSON(http.StatusOK, results)
}

func (cc *CashController) branchCounterBalance(ctx context.Context, pair reporting.BranchCollections) (float64, error) {
	cursor, err := cc.db.Collection(pair.Orders).Find(ctx, bson.M{"status": models.OrderStatusFulfilled})
	if err != nil {
		return 0, err
	}
	var cashIn float64
	for cursor.Next(ctx) {
		var o models.Order
		if err := cursor.Decode(&o); err != nil {
			cursor.Close(ctx)
			return 0, err
		}
		cashIn += o.NetTotal()
	}
	if err := cursor.Err(); err != nil {
		cursor.Close(ctx)
		return 0, err
	}
	cursor.Close(ctx)

	cursor, err = cc.db.Collection(pair.Expenses).Find(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var paidOut float64
	for cursor.Next(ctx) {
		var ex models.Expense
		if err := cursor.Decode(&ex); err != nil {
			return 0, err
		}
		switch {
		case reporting.InCategory(ex.Category, reporting.CashCounterAdditions):
			cashIn += ex.Amount
		case ex.Category == reporting.CategoryExtraUPIPayment:
			// Collected online; never touched the drawer.
		default:
			paidOut += ex.Amount
		}
	}
	if err := cursor.Err(); err != nil {
		return 0, err
	}

	return cashIn - paidOut, nil
}

func (cc *CashController) FetchCashEntries(c *gin.Context) {
	cursor, err := cc.entries().Find(c.Request.Context(), bson.M{})
	if err != nil {
		utils.LogError(err, "cash: list entries")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching cash balance details"})
		return
	}
	entries := []models.CashBalanceDetails{}
	if err := cursor.All(c.Request.Context(), &entries); err != nil {
		utils.LogError(err, "cash: decode entries")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching cash balance details"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CreateCashEntry records one counter reconciliation: the amount counted
// against what the system expects, with the difference and its status
// derived server-side.
func (cc *CashController) CreateCashEntry(c *gin.Context) {
	var req struct {
		Location      string   `json:"location" binding:"required"`
		AmountEntered *float64 `json:"amountEntered" binding:"required"`
		ActualAmount  *float64 `json:"actualAmount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location, amountEntered and actualAmount are required"})
		return
	}
	if req.Location == reporting.BranchAll {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location must be a single branch"})
		return
	}
	if _, err := reporting.ResolveBranch(req.Location); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.CashBalanceDetails{
		ID:            primitive.NewObjectID(),
		Location:      req.Location,
		AmountEntered: *req.AmountEntered,
		ActualAmount:  *req.ActualAmount,
		Difference:    *req.AmountEntered - *req.ActualAmount,
		CreatedAt:     time.Now(),
	}
	switch {
	case entry.Difference == 0:
		entry.Status = models.CashStatusMatched
	case entry.Difference < 0:
		entry.Status = models.CashStatusShortage
	default:
		entry.Status = models.CashStatusSurplus
	}

	if _, err := cc.entries().InsertOne(c.Request.Context(), entry); err != nil {
		utils.LogError(err, "cash: insert entry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving cash balance entry"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (cc *CashController) DeleteCashEntry(c *gin.Context) {
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

	result, err := cc.entries().DeleteOne(c.Request.Context(), bson.M{"_id": objID})
	if err != nil {
		utils.LogError(err, "cash: delete entry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting cash balance entry"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted"})
}
