package controllers

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"backend/reporting"
)

func TestExpenseCategoryFilter(t *testing.T) {
	tests := []struct {
		category string
		want     bson.M
	}{
		{"", bson.M{"category": bson.M{"$nin": reporting.GeneralExpenseExclusions}}},
		{"General Expenses", bson.M{"category": bson.M{"$nin": reporting.GeneralExpenseExclusions}}},
		{"Online Payments", bson.M{"category": bson.M{"$in": reporting.OnlinePaymentCategories}}},
		{"Cash Payments", bson.M{"category": reporting.CategoryExtraCashPayment}},
		{"Extra Payments", bson.M{"category": bson.M{"$in": reporting.ExtraPaymentCategories}}},
		{"Ingredients", bson.M{"category": "Ingredients"}},
		{"Staff Salary", bson.M{"category": "Staff Salary"}},
	}
	for _, tt := range tests {
		got := expenseCategoryFilter(tt.category)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("expenseCategoryFilter(%q) = %v, want %v", tt.category, got, tt.want)
		}
	}
}
