package reporting

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"backend/models"
)

// Engine runs the report queries against one injected database handle. It
// owns no state besides the handle, so a test database slots straight in.
type Engine struct {
	db *mongo.Database
}

func NewEngine(db *mongo.Database) *Engine {
	return &Engine{db: db}
}

// TotalsSpec is the per-endpoint variation of the totals computation. The
// endpoints genuinely disagree (the percentage report counts every order
// document and every expense row; insights filters to fulfilled orders and
// excludes the pass-through categories), so the knobs are explicit.
type TotalsSpec struct {
	// OrderMatch adds conditions to the order query, e.g. status.
	OrderMatch bson.M
	// SubtractDeliveryCharge nets the table delivery charge out of revenue.
	SubtractDeliveryCharge bool
	// IncludeExtraPayments adds the extra cash/UPI expense rows to revenue.
	IncludeExtraPayments bool
	// ExpenseExclusions removes categories from the expense total; nil
	// counts every row.
	ExpenseExclusions []string
}

// Totals holds the three headline numbers for one window.
type Totals struct {
	Revenue  float64 `json:"revenue"`
	Orders   int64   `json:"orders"`
	Expenses float64 `json:"expenses"`
}

// DailyStat is one row of the per-day breakdown keyed by business day.
type DailyStat struct {
	Date            string  `json:"date"`
	NumberOfOrders  int64   `json:"numberOfOrders"`
	GeneralExpenses float64 `json:"generalExpenses"`
	Revenue         float64 `json:"revenue"`
	Profit          float64 `json:"profit"`
	Online          float64 `json:"online,omitempty"`
}

// Totals fans out over the resolved collections and sums. Queries run
// concurrently; any branch failing fails the whole report, because a
// partial sum would silently read as a bad day.
func (e *Engine) Totals(ctx context.Context, pairs []BranchCollections, w Window, spec TotalsSpec) (Totals, error) {
	orders := make([][]models.Order, len(pairs))
	expenses := make([][]models.Expense, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	for i, pair := range pairs {
		i, pair := i, pair
		g.Go(func() error {
			res, err := e.OrdersInWindow(gctx, pair.Orders, w, spec.OrderMatch)
			if err != nil {
				return err
			}
			orders[i] = res
			return nil
		})
		g.Go(func() error {
			res, err := e.ExpensesInWindow(gctx, pair.Expenses, w, nil)
			if err != nil {
				return err
			}
			expenses[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Totals{}, err
	}

	var t Totals
	for i := range pairs {
		t = t.add(sumTotals(orders[i], expenses[i], spec))
	}
	return t, nil
}

// DailySeries builds the zero-filled per-day breakdown for the insights
// report. The labels come from the caller's nominal dates; every order and
// expense in the window lands on one of them via its business-day key.
func (e *Engine) DailySeries(ctx context.Context, pairs []BranchCollections, w Window, startDate, endDate time.Time) ([]DailyStat, error) {
	orders := make([][]models.Order, len(pairs))
	expenses := make([][]models.Expense, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	for i, pair := range pairs {
		i, pair := i, pair
		g.Go(func() error {
			res, err := e.OrdersInWindow(gctx, pair.Orders, w, bson.M{"status": models.OrderStatusFulfilled})
			if err != nil {
				return err
			}
			orders[i] = res
			return nil
		})
		g.Go(func() error {
			res, err := e.ExpensesInWindow(gctx, pair.Expenses, w, nil)
			if err != nil {
				return err
			}
			expenses[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var allOrders []models.Order
	var allExpenses []models.Expense
	for i := range pairs {
		allOrders = append(allOrders, orders[i]...)
		allExpenses = append(allExpenses, expenses[i]...)
	}
	return BuildDailySeries(DayLabels(startDate, endDate), allOrders, allExpenses), nil
}

// OrdersInWindow reads every order of one collection inside the window,
// optionally narrowed by extra match conditions.
func (e *Engine) OrdersInWindow(ctx context.Context, collection string, w Window, match bson.M) ([]models.Order, error) {
	filter := w.Filter()
	for k, v := range match {
		filter[k] = v
	}
	cursor, err := e.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	for cursor.Next(ctx) {
		var o models.Order
		if err := cursor.Decode(&o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, cursor.Err()
}

// ExpensesInWindow reads every expense of one collection inside the window,
// optionally narrowed by extra match conditions.
func (e *Engine) ExpensesInWindow(ctx context.Context, collection string, w Window, match bson.M) ([]models.Expense, error) {
	filter := w.Filter()
	for k, v := range match {
		filter[k] = v
	}
	cursor, err := e.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var expenses []models.Expense
	for cursor.Next(ctx) {
		var ex models.Expense
		if err := cursor.Decode(&ex); err != nil {
			return nil, err
		}
		expenses = append(expenses, ex)
	}
	return expenses, cursor.Err()
}

func (t Totals) add(o Totals) Totals {
	return Totals{
		Revenue:  t.Revenue + o.Revenue,
		Orders:   t.Orders + o.Orders,
		Expenses: t.Expenses + o.Expenses,
	}
}

// sumTotals folds one branch's documents into totals per the spec.
func sumTotals(orders []models.Order, expenses []models.Expense, spec TotalsSpec) Totals {
	var t Totals
	for _, o := range orders {
		if spec.SubtractDeliveryCharge {
			t.Revenue += o.NetTotal()
		} else {
			t.Revenue += o.Total
		}
		t.Orders++
	}
	for _, ex := range expenses {
		if InCategory(ex.Category, ExtraPaymentCategories) {
			if spec.IncludeExtraPayments {
				t.Revenue += ex.Amount
			}
			if spec.ExpenseExclusions == nil {
				t.Expenses += ex.Amount
			}
			continue
		}
		if !InCategory(ex.Category, spec.ExpenseExclusions) {
			t.Expenses += ex.Amount
		}
	}
	return t
}

// BuildDailySeries distributes documents over the day labels. Revenue is
// net order totals plus extra payments; profit is revenue minus general
// expenses; UPI Payment rows surface separately as the online figure.
// Documents whose business day falls outside the labels are dropped, which
// cannot happen when the window and labels come from the same dates.
func BuildDailySeries(labels []string, orders []models.Order, expenses []models.Expense) []DailyStat {
	index := make(map[string]int, len(labels))
	series := make([]DailyStat, len(labels))
	for i, label := range labels {
		series[i] = DailyStat{Date: label}
		index[label] = i
	}

	for _, o := range orders {
		i, ok := index[BusinessDayKey(o.CreatedAt)]
		if !ok {
			continue
		}
		series[i].NumberOfOrders++
		series[i].Revenue += o.NetTotal()
		series[i].Profit += o.NetTotal()
	}

	for _, ex := range expenses {
		i, ok := index[BusinessDayKey(ex.CreatedAt)]
		if !ok {
			continue
		}
		switch {
		case InCategory(ex.Category, ExtraPaymentCategories):
			series[i].Revenue += ex.Amount
			series[i].Profit += ex.Amount
		case ex.Category == CategoryUPIPayment:
			series[i].Online += ex.Amount
		case InCategory(ex.Category, GeneralExpenseExclusions):
			// Drawings and Opening Cash: neither revenue nor expense.
		default:
			series[i].GeneralExpenses += ex.Amount
			series[i].Profit -= ex.Amount
		}
	}
	return series
}
