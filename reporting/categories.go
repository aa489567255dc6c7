package reporting

// Reserved expense categories. The category field is free-form in the
// store, but the POS records several kinds of money movement through the
// expense screen and reporting keys off these exact strings.
const (
	CategoryUPIPayment       = "UPI Payment"
	CategoryExtraUPIPayment  = "Extra UPI Payment"
	CategoryExtraCashPayment = "Extra Cash Payment"
	CategoryDrawings         = "Drawings"
	CategoryOpeningCash      = "Opening Cash"
)

// Each endpoint family works against a named category set rather than
// inline literals, so the (small) taxonomy differences between endpoints
// stay visible in one place.
var (
	// ExtraPaymentCategories are miscellaneous income recorded as expense
	// rows; they count toward revenue and never toward general expenses.
	ExtraPaymentCategories = []string{CategoryExtraCashPayment, CategoryExtraUPIPayment}

	// OnlinePaymentCategories make up the "online" figure on insight rows
	// and the Online Payments filter on the expense browser.
	OnlinePaymentCategories = []string{CategoryUPIPayment, CategoryExtraUPIPayment}

	// GeneralExpenseExclusions are everything that flows through the
	// expense collections without being a genuine operating expense.
	GeneralExpenseExclusions = []string{
		CategoryUPIPayment,
		CategoryExtraCashPayment,
		CategoryExtraUPIPayment,
		CategoryDrawings,
		CategoryOpeningCash,
	}

	// CashCounterAdditions add to the physical drawer during the day; the
	// counter-balance reconciliation treats them as cash in.
	CashCounterAdditions = []string{CategoryExtraCashPayment, CategoryOpeningCash}
)

// InCategory reports set membership for a category string.
func InCategory(category string, set []string) bool {
	for _, s := range set {
		if s == category {
			return true
		}
	}
	return false
}
