package reporting

import "testing"

func TestResolveBranchAll(t *testing.T) {
	pairs, err := ResolveBranch("all")
	if err != nil {
		t.Fatalf("ResolveBranch(all): %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(pairs))
	}
	// Fixed registry order.
	if pairs[0].Branch != "Sevoke" || pairs[1].Branch != "Dagapur" {
		t.Errorf("order = %s, %s", pairs[0].Branch, pairs[1].Branch)
	}
}

func TestAllBranchesMatchesResolveAll(t *testing.T) {
	all := AllBranches()
	resolved, err := ResolveBranch(BranchAll)
	if err != nil {
		t.Fatalf("ResolveBranch(all): %v", err)
	}
	if len(all) != len(resolved) {
		t.Fatalf("AllBranches has %d entries, resolver %d", len(all), len(resolved))
	}
	for i := range all {
		if all[i] != resolved[i] {
			t.Errorf("entry %d: %+v != %+v", i, all[i], resolved[i])
		}
	}
}

func TestResolveBranchSingle(t *testing.T) {
	tests := []struct {
		branch   string
		orders   string
		expenses string
	}{
		{"Sevoke", "OrderSevoke", "ExpenseSevoke"},
		{"Dagapur", "OrderDagapur", "ExpenseDagapur"},
	}
	for _, tt := range tests {
		pairs, err := ResolveBranch(tt.branch)
		if err != nil {
			t.Fatalf("ResolveBranch(%s): %v", tt.branch, err)
		}
		if len(pairs) != 1 {
			t.Fatalf("ResolveBranch(%s): got %d pairs", tt.branch, len(pairs))
		}
		if pairs[0].Orders != tt.orders || pairs[0].Expenses != tt.expenses {
			t.Errorf("ResolveBranch(%s) = %+v", tt.branch, pairs[0])
		}
	}
}

func TestResolveBranchUnknown(t *testing.T) {
	for _, branch := range []string{"", "sevoke", "Guwahati", "Orders"} {
		if _, err := ResolveBranch(branch); err == nil {
			t.Errorf("ResolveBranch(%q) should fail", branch)
		}
	}
}

func TestValidateRegistry(t *testing.T) {
	if err := ValidateRegistry(); err != nil {
		t.Fatalf("registry invalid: %v", err)
	}
}
