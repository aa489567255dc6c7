package reporting

import (
	"math"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"backend/models"
)

func at(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return ts
}

func TestSumTotalsRevenueComposition(t *testing.T) {
	orders := []models.Order{
		{Total: 500, TableDeliveryCharge: 50},
		{Total: 300},
	}
	expenses := []models.Expense{
		{Category: CategoryExtraCashPayment, Amount: 200},
		{Category: CategoryExtraUPIPayment, Amount: 120},
		{Category: CategoryUPIPayment, Amount: 400},
		{Category: "Ingredients", Amount: 150},
		{Category: CategoryDrawings, Amount: 80},
		{Category: CategoryOpeningCash, Amount: 1000},
	}

	spec := TotalsSpec{
		SubtractDeliveryCharge: true,
		IncludeExtraPayments:   true,
		ExpenseExclusions:      GeneralExpenseExclusions,
	}
	got := sumTotals(orders, expenses, spec)

	// 450 + 300 from orders, 200 + 120 extra payments.
	if got.Revenue != 1070 {
		t.Errorf("revenue = %v, want 1070", got.Revenue)
	}
	if got.Orders != 2 {
		t.Errorf("orders = %d, want 2", got.Orders)
	}
	// Only the genuine expense row counts.
	if got.Expenses != 150 {
		t.Errorf("expenses = %v, want 150", got.Expenses)
	}
}

func TestSumTotalsDeliveryChargeSubtracted(t *testing.T) {
	orders := []models.Order{{Total: 500, TableDeliveryCharge: 50}}

	with := sumTotals(orders, nil, TotalsSpec{SubtractDeliveryCharge: true})
	if with.Revenue != 450 {
		t.Errorf("net revenue = %v, want 450", with.Revenue)
	}
	without := sumTotals(orders, nil, TotalsSpec{})
	if without.Revenue != 500 {
		t.Errorf("gross revenue = %v, want 500", without.Revenue)
	}
}

func TestSumTotalsRawSpecCountsEverything(t *testing.T) {
	// The percentage report's historical behaviour: every document and
	// every expense row, extras included.
	orders := []models.Order{
		{Total: 100, Status: models.OrderStatusFulfilled},
		{Total: 200, Status: "pending"},
	}
	expenses := []models.Expense{
		{Category: CategoryExtraCashPayment, Amount: 50},
		{Category: "Ingredients", Amount: 75},
	}

	got := sumTotals(orders, expenses, TotalsSpec{})
	if got.Revenue != 300 {
		t.Errorf("revenue = %v, want 300", got.Revenue)
	}
	if got.Orders != 2 {
		t.Errorf("orders = %d, want 2", got.Orders)
	}
	if got.Expenses != 125 {
		t.Errorf("expenses = %v, want 125", got.Expenses)
	}
}

func TestBuildDailySeriesGroupsByBusinessDay(t *testing.T) {
	labels := DayLabels(at(t, "2024-01-01"), at(t, "2024-01-02"))
	orders := []models.Order{
		// Evening sale on the 1st.
		{Total: 400, CreatedAt: at(t, "2024-01-01T20:00:00+05:30")},
		// 2am on the 2nd still belongs to the 1st.
		{Total: 250, TableDeliveryCharge: 50, CreatedAt: at(t, "2024-01-02T02:00:00+05:30")},
		// After the rollover: the 2nd.
		{Total: 100, CreatedAt: at(t, "2024-01-02T09:00:00+05:30")},
	}
	expenses := []models.Expense{
		{Category: "Ingredients", Amount: 150, CreatedAt: at(t, "2024-01-01T18:00:00+05:30")},
		{Category: CategoryExtraCashPayment, Amount: 200, CreatedAt: at(t, "2024-01-02T01:00:00+05:30")},
		{Category: CategoryUPIPayment, Amount: 300, CreatedAt: at(t, "2024-01-02T12:00:00+05:30")},
		{Category: CategoryDrawings, Amount: 80, CreatedAt: at(t, "2024-01-02T12:00:00+05:30")},
	}

	series := BuildDailySeries(labels, orders, expenses)
	if len(series) != 2 {
		t.Fatalf("series length = %d, want 2", len(series))
	}

	day1, day2 := series[0], series[1]
	if day1.Date != "2024-01-01" || day2.Date != "2024-01-02" {
		t.Fatalf("dates = %s, %s", day1.Date, day2.Date)
	}

	// Day 1: 400 + (250-50) net orders + 200 extra cash.
	if day1.Revenue != 800 {
		t.Errorf("day1 revenue = %v, want 800", day1.Revenue)
	}
	if day1.NumberOfOrders != 2 {
		t.Errorf("day1 orders = %d, want 2", day1.NumberOfOrders)
	}
	if day1.GeneralExpenses != 150 {
		t.Errorf("day1 expenses = %v, want 150", day1.GeneralExpenses)
	}
	if day1.Profit != 650 {
		t.Errorf("day1 profit = %v, want 650", day1.Profit)
	}

	// Day 2: one order, the UPI row surfaces as online, Drawings is
	// neither revenue nor expense.
	if day2.Revenue != 100 {
		t.Errorf("day2 revenue = %v, want 100", day2.Revenue)
	}
	if day2.Online != 300 {
		t.Errorf("day2 online = %v, want 300", day2.Online)
	}
	if day2.GeneralExpenses != 0 {
		t.Errorf("day2 expenses = %v, want 0", day2.GeneralExpenses)
	}
}

func TestBuildDailySeriesZeroFillsQuietDays(t *testing.T) {
	labels := DayLabels(at(t, "2024-01-01"), at(t, "2024-01-03"))
	orders := []models.Order{
		{Total: 100, CreatedAt: at(t, "2024-01-01T12:00:00+05:30")},
	}

	series := BuildDailySeries(labels, orders, nil)
	if len(series) != 3 {
		t.Fatalf("series length = %d, want 3", len(series))
	}
	for _, day := range series[1:] {
		if day.NumberOfOrders != 0 || day.Revenue != 0 || day.GeneralExpenses != 0 {
			t.Errorf("day %s not zero: %+v", day.Date, day)
		}
	}
}

// The per-day breakdown and the aggregate totals must agree: summing the
// series gives exactly the window's totals for the same documents.
func TestDailySeriesSumsMatchTotals(t *testing.T) {
	start, end := at(t, "2024-01-01"), at(t, "2024-01-03")
	window := Normalize(start, end, PolicyBusinessDayClipped)

	orders := []models.Order{
		{Total: 400, Status: models.OrderStatusFulfilled, CreatedAt: at(t, "2024-01-01T11:00:00+05:30")},
		{Total: 250, TableDeliveryCharge: 50, Status: models.OrderStatusFulfilled, CreatedAt: at(t, "2024-01-02T02:00:00+05:30")},
		{Total: 620, Status: models.OrderStatusFulfilled, CreatedAt: at(t, "2024-01-03T21:45:00+05:30")},
	}
	expenses := []models.Expense{
		{Category: "Ingredients", Amount: 130, CreatedAt: at(t, "2024-01-01T19:00:00+05:30")},
		{Category: CategoryExtraUPIPayment, Amount: 90, CreatedAt: at(t, "2024-01-02T15:00:00+05:30")},
		{Category: "Staff Salary", Amount: 500, CreatedAt: at(t, "2024-01-03T10:00:00+05:30")},
		{Category: CategoryOpeningCash, Amount: 2000, CreatedAt: at(t, "2024-01-03T09:00:00+05:30")},
	}

	// Everything above is inside the window; the property depends on it.
	for _, o := range orders {
		if !window.Contains(o.CreatedAt) {
			t.Fatalf("order at %v outside window", o.CreatedAt)
		}
	}

	spec := TotalsSpec{
		OrderMatch:             bson.M{"status": models.OrderStatusFulfilled},
		SubtractDeliveryCharge: true,
		IncludeExtraPayments:   true,
		ExpenseExclusions:      GeneralExpenseExclusions,
	}
	totals := sumTotals(orders, expenses, spec)
	series := BuildDailySeries(DayLabels(start, end), orders, expenses)

	var revenue, expenseSum float64
	var orderCount int64
	for _, day := range series {
		revenue += day.Revenue
		expenseSum += day.GeneralExpenses
		orderCount += day.NumberOfOrders
	}

	if math.Abs(revenue-totals.Revenue) > 1e-9 {
		t.Errorf("series revenue %v != totals revenue %v", revenue, totals.Revenue)
	}
	if math.Abs(expenseSum-totals.Expenses) > 1e-9 {
		t.Errorf("series expenses %v != totals expenses %v", expenseSum, totals.Expenses)
	}
	if orderCount != totals.Orders {
		t.Errorf("series orders %d != totals orders %d", orderCount, totals.Orders)
	}
}

// The "all" aggregate must equal the sum of the per-branch aggregates.
func TestAllBranchesEqualsSumOfBranches(t *testing.T) {
	sevokeOrders := []models.Order{{Total: 300}, {Total: 700, TableDeliveryCharge: 100}}
	dagapurOrders := []models.Order{{Total: 450}}
	sevokeExpenses := []models.Expense{{Category: "Ingredients", Amount: 120}}
	dagapurExpenses := []models.Expense{{Category: CategoryExtraCashPayment, Amount: 60}}

	spec := TotalsSpec{
		SubtractDeliveryCharge: true,
		IncludeExtraPayments:   true,
		ExpenseExclusions:      GeneralExpenseExclusions,
	}

	sevoke := sumTotals(sevokeOrders, sevokeExpenses, spec)
	dagapur := sumTotals(dagapurOrders, dagapurExpenses, spec)
	all := sumTotals(
		append(append([]models.Order{}, sevokeOrders...), dagapurOrders...),
		append(append([]models.Expense{}, sevokeExpenses...), dagapurExpenses...),
		spec,
	)

	if all.Revenue != sevoke.Revenue+dagapur.Revenue {
		t.Errorf("all revenue %v != %v + %v", all.Revenue, sevoke.Revenue, dagapur.Revenue)
	}
	if all.Orders != sevoke.Orders+dagapur.Orders {
		t.Errorf("all orders %d != %d + %d", all.Orders, sevoke.Orders, dagapur.Orders)
	}
	if all.Expenses != sevoke.Expenses+dagapur.Expenses {
		t.Errorf("all expenses %v != %v + %v", all.Expenses, sevoke.Expenses, dagapur.Expenses)
	}
}
