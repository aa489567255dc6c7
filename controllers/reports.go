package controllers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/config"
	"backend/models"
	"backend/reporting"
	"backend/utils"
)

// ReportController serves the analytics endpoints. Every request resolves
// its branch selector against the registry, normalizes its date window per
// the endpoint's policy and fans out over the per-branch collections.
type ReportController struct {
	db     *mongo.Database
	engine *reporting.Engine
}

func NewReportController(db *mongo.Database) *ReportController {
	return &ReportController{db: db, engine: reporting.NewEngine(db)}
}

type rangeRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Branch    string `json:"branch" binding:"required"`
	Category  string `json:"category"`

	PreviousStartDate string `json:"previousStartDate"`
	PreviousEndDate   string `json:"previousEndDate"`
}

// parseRange binds and validates the common report request shape. On
// failure it has already written the 400 response.
func parseRange(c *gin.Context) (rangeRequest, time.Time, time.Time, []reporting.BranchCollections, bool) {
	var req rangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate, endDate and branch are required"})
		return req, time.Time{}, time.Time{}, nil, false
	}
	start, err := reporting.ParseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return req, time.Time{}, time.Time{}, nil, false
	}
	end, err := reporting.ParseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
		return req, time.Time{}, time.Time{}, nil, false
	}
	pairs, err := reporting.ResolveBranch(req.Branch)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, time.Time{}, time.Time{}, nil, false
	}
	return req, start, end, pairs, true
}

// Insights returns the per-business-day breakdown: orders, revenue,
// general expenses, profit and the online collection figure, with zero
// rows for quiet days.
func (rc *ReportController) Insights(c *gin.Context) {
	_, start, end, pairs, ok := parseRange(c)
	if !ok {
		return
	}

	window := reporting.Normalize(start, end, reporting.PolicyBusinessDayClipped)
	series, err := rc.engine.DailySeries(c.Request.Context(), pairs, window, start, end)
	if err != nil {
		utils.LogError(err, "insights: daily series")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching data"})
		return
	}

	c.JSON(http.StatusOK, series)
}

// Percentage returns growth against the equal-length period immediately
// before the requested one. This endpoint keeps its historical raw totals:
// every order document and every expense row counts, no status filter and
// no delivery-charge netting.
func (rc *ReportController) Percentage(c *gin.Context) {
	_, start, end, pairs, ok := parseRange(c)
	if !ok {
		return
	}

	window := reporting.Normalize(start, end, reporting.PolicyVerbatim)
	spec := reporting.TotalsSpec{}

	current, err := rc.engine.Totals(c.Request.Context(), pairs, window, spec)
	if err != nil {
		utils.LogError(err, "percentage: current totals")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching data"})
		return
	}
	previous, err := rc.engine.Totals(c.Request.Context(), pairs, reporting.PreviousWindow(window), spec)
	if err != nil {
		utils.LogError(err, "percentage: previous totals")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"revenue":  reporting.Growth(current.Revenue, previous.Revenue),
		"orders":   reporting.Growth(float64(current.Orders), float64(previous.Orders)),
		"expenses": reporting.Growth(current.Expenses, previous.Expenses),
	})
}

type salesDataPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
	Branch  string  `json:"branch"`
}

// DashboardData returns the landing-page numbers. This endpoint family
// predates the business-day convention and still uses calendar-UTC windows
// and gross order totals; the sales series is keyed by plain IST calendar
// date.
func (rc *ReportController) DashboardData(c *gin.Context) {
	req, start, end, pairs, ok := parseRange(c)
	if !ok {
		return
	}
	if req.PreviousStartDate == "" || req.PreviousEndDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "previousStartDate and previousEndDate are required"})
		return
	}
	prevStart, err := reporting.ParseDate(req.PreviousStartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid previousStartDate"})
		return
	}
	prevEnd, err := reporting.ParseDate(req.PreviousEndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid previousEndDate"})
		return
	}

	ctx := c.Request.Context()
	users := rc.db.Collection(config.UserDataCollection)

	totalUsers, err := users.CountDocuments(ctx, bson.M{})
	if err != nil {
		utils.LogError(err, "dashboard: total users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching dashboard data"})
		return
	}
	newSignups, err := users.CountDocuments(ctx, bson.M{
		"signupDate": bson.M{"$gte": start, "$lte": end},
	})
	if err != nil {
		utils.LogError(err, "dashboard: new signups")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching dashboard data"})
		return
	}

	window := reporting.Normalize(start, end, reporting.PolicyCalendarUTC)
	revenue, orders, salesData, err := rc.dashboardSales(c, pairs, window)
	if err != nil {
		utils.LogError(err, "dashboard: current period")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching dashboard data"})
		return
	}

	prevWindow := reporting.Normalize(prevStart, prevEnd, reporting.PolicyCalendarUTC)
	prevRevenue, prevOrders, _, err := rc.dashboardSales(c, pairs, prevWindow)
	if err != nil {
		utils.LogError(err, "dashboard: previous period")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching dashboard data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalRevenue":          revenue,
		"totalUsers":            totalUsers,
		"totalOrders":           orders,
		"salesData":             salesData,
		"growthPercentage":      reporting.Growth(revenue, prevRevenue),
		"orderGrowthPercentage": reporting.Growth(float64(orders), float64(prevOrders)),
		"newSignups":            newSignups,
	})
}

// dashboardSales sums fulfilled, dispatched orders per branch and groups
// them into the per-date sales series.
func (rc *ReportController) dashboardSales(c *gin.Context, pairs []reporting.BranchCollections, w reporting.Window) (float64, int64, []salesDataPoint, error) {
	match := bson.M{"status": models.OrderStatusFulfilled, "order": models.OrderDispatched}

	var totalRevenue float64
	var totalOrders int64
	salesData := []salesDataPoint{}

	for _, pair := range pairs {
		orders, err := rc.engine.OrdersInWindow(c.Request.Context(), pair.Orders, w, match)
		if err != nil {
			return 0, 0, nil, err
		}

		byDate := map[string]*salesDataPoint{}
		for _, o := range orders {
			totalRevenue += o.Total
			totalOrders++

			key := reporting.ISTDayKey(o.CreatedAt)
			point, ok := byDate[key]
			if !ok {
				point = &salesDataPoint{Date: key, Branch: pair.Branch}
				byDate[key] = point
			}
			point.Revenue += o.Total
			point.Orders++
		}
		for _, point := range byDate {
			salesData = append(salesData, *point)
		}
	}

	sort.Slice(salesData, func(i, j int) bool {
		if salesData[i].Date != salesData[j].Date {
			return salesData[i].Date < salesData[j].Date
		}
		return salesData[i].Branch < salesData[j].Branch
	})
	return totalRevenue, totalOrders, salesData, nil
}

type orderRow struct {
	ID           interface{}        `json:"_id"`
	CustomerName string             `json:"customerName"`
	PhoneNumber  string             `json:"phoneNumber"`
	Total        float64            `json:"total"`
	CreatedAt    time.Time          `json:"createdAt"`
	Status       string             `json:"status"`
	Items        []models.OrderItem `json:"items"`
}

// Orders lists the raw orders of the selected business-day range for the
// orders table; totals are net of the table delivery charge.
func (rc *ReportController) Orders(c *gin.Context) {
	_, start, end, pairs, ok := parseRange(c)
	if !ok {
		return
	}

	window := reporting.Normalize(start, end, reporting.PolicyBusinessDay)
	rows := []orderRow{}
	for _, pair := range pairs {
		orders, err := rc.engine.OrdersInWindow(c.Request.Context(), pair.Orders, window, nil)
		if err != nil {
			utils.LogError(err, "orders: fetch")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching orders"})
			return
		}
		for _, o := range orders {
			rows = append(rows, orderRow{
				ID:           o.ID,
				CustomerName: o.CustomerName,
				PhoneNumber:  o.PhoneNumber,
				Total:        o.NetTotal(),
				CreatedAt:    o.CreatedAt,
				Status:       o.Status,
				Items:        o.Items,
			})
		}
	}

	c.JSON(http.StatusOK, rows)
}

// Bookings lists the table bookings of the range with promo usage count.
func (rc *ReportController) Bookings(c *gin.Context) {
	_, start, end, pairs, ok := parseRange(c)
	if !ok {
		return
	}

	window := reporting.Normalize(start, end, reporting.PolicyBusinessDayInclusive)
	bookings := []bson.M{}
	promoCodeUsage := 0

	for _, pair := range pairs {
		cursor, err := rc.db.Collection(pair.Bookings).Find(c.Request.Context(), window.Filter())
		if err != nil {
			utils.LogError(err, "bookings: fetch")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching bookings"})
			return
		}
		var docs []bson.M
		if err := cursor.All(c.Request.Context(), &docs); err != nil {
			utils.LogError(err, "bookings: decode")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching bookings"})
			return
		}
		for _, doc := range docs {
			if code, _ := doc["promoCode"].(string); code != "" {
				promoCodeUsage++
			}
		}
		bookings = append(bookings, docs...)
	}

	c.JSON(http.StatusOK, gin.H{
		"totalBookings":  len(bookings),
		"promoCodeUsage": promoCodeUsage,
		"bookings":       bookings,
	})
}

// Expenses lists expense rows of the range, filtered by the UI's category
// groupings and annotated with the branch each row came from.
func (rc *ReportController) Expenses(c *gin.Context) {
	req, start, end, pairs, ok := parseRange(c)
	if !ok {
		return
	}

	window := reporting.Normalize(start, end, reporting.PolicyBusinessDayInclusive)
	match := expenseCategoryFilter(req.Category)

	expenses := []models.Expense{}
	var total float64
	for _, pair := range pairs {
		rows, err := rc.engine.ExpensesInWindow(c.Request.Context(), pair.Expenses, window, match)
		if err != nil {
			utils.LogError(err, "expenses: fetch")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch expenses"})
			return
		}
		for _, ex := range rows {
			ex.Branch = pair.Branch
			expenses = append(expenses, ex)
			total += ex.Amount
		}
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses, "total": total})
}

// expenseCategoryFilter maps the UI's category groupings onto the stored
// category strings. An unrecognized value filters on the exact string.
func expenseCategoryFilter(category string) bson.M {
	switch category {
	case "", "General Expenses":
		return bson.M{"category": bson.M{"$nin": reporting.GeneralExpenseExclusions}}
	case "Online Payments":
		return bson.M{"category": bson.M{"$in": reporting.OnlinePaymentCategories}}
	case "Cash Payments":
		return bson.M{"category": reporting.CategoryExtraCashPayment}
	case "Extra Payments":
		return bson.M{"category": bson.M{"$in": reporting.ExtraPaymentCategories}}
	default:
		return bson.M{"category": category}
	}
}
