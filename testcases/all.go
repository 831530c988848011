package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in test and debug image names.
var All = map[string][]TestCase{
	"stereo": stereoCases,
	"mono":   monoCases,
	"edge":   edgeCases,
}
