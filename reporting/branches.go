package reporting

import "fmt"

// BranchAll selects every branch in the registry.
const BranchAll = "all"

// BranchCollections names the per-branch collections. Collections are
// partitioned by branch through naming convention; there is no cross-branch
// key, so every report fans out over these pairs and sums in application
// code.
type BranchCollections struct {
	Branch   string
	Orders   string
	Expenses string
	Bookings string
}

// branchRegistry is the closed set of branches. Collection names were
// historically built by string concatenation ("Order"+branch), which let an
// unknown branch query a nonexistent collection and report zeroes; the
// explicit registry turns that into a request error instead.
var branchRegistry = []BranchCollections{
	{Branch: "Sevoke", Orders: "OrderSevoke", Expenses: "ExpenseSevoke", Bookings: "BookingSevoke"},
	{Branch: "Dagapur", Orders: "OrderDagapur", Expenses: "ExpenseDagapur", Bookings: "BookingDagapur"},
}

// ResolveBranch maps a branch selector to the collection pairs it must
// query. "all" resolves to every branch in registry order.
func ResolveBranch(branch string) ([]BranchCollections, error) {
	if branch == BranchAll {
		return branchRegistry, nil
	}
	for _, bc := range branchRegistry {
		if bc.Branch == branch {
			return []BranchCollections{bc}, nil
		}
	}
	return nil, fmt.Errorf("unknown branch %q", branch)
}

// AllBranches returns every registry entry in order, for callers that
// always span the whole business rather than resolving a selector.
func AllBranches() []BranchCollections {
	return branchRegistry
}

// Branches lists the known branch names in registry order.
func Branches() []string {
	names := make([]string, 0, len(branchRegistry))
	for _, bc := range branchRegistry {
		names = append(names, bc.Branch)
	}
	return names
}

// ValidateRegistry is run once at startup so a bad edit to the registry
// fails the boot instead of a report.
func ValidateRegistry() error {
	if len(branchRegistry) == 0 {
		return fmt.Errorf("branch registry is empty")
	}
	seen := map[string]bool{}
	for _, bc := range branchRegistry {
		if bc.Branch == "" || bc.Branch == BranchAll {
			return fmt.Errorf("invalid branch name %q", bc.Branch)
		}
		if bc.Orders == "" || bc.Expenses == "" || bc.Bookings == "" {
			return fmt.Errorf("branch %s has an empty collection name", bc.Branch)
		}
		if seen[bc.Branch] {
			return fmt.Errorf("duplicate branch %s", bc.Branch)
		}
		seen[bc.Branch] = true
	}
	return nil
}
