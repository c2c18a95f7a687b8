package client

import (
	"fmt"
	"strings"
)

const pathBoundsExceededSummary = "path bounds exceeded (path bounds exceeded)"

// ExplorationTestCase is one row of a TestCases exploration.
type ExplorationTestCase struct {
	Status                           TestCaseStatus
	AnyExceptionOrPathBoundsExceeded bool
	Summary                          string
	Message                          string
	Exception                        string
	StackTrace                       string

	// Names and Values are the puzzle parameters in order, without the
	// reserved result columns. Both are nil when the service sent none.
	Names  []string
	Values []string
	// Params maps parameter name to value.
	Params map[string]string
	// Expected and Actual are the puzzle's and the program's results, when reported.
	Expected *string
	Actual   *string
}

func newExplorationTestCase(names []string, body testCaseBody) ExplorationTestCase {
	tc := ExplorationTestCase{
		Status:                           body.Status,
		AnyExceptionOrPathBoundsExceeded: body.AnyExceptionOrPathBoundsExceeded,
		Summary:                          body.Summary,
		Message:                          body.Message,
		Exception:                        body.Exception,
		StackTrace:                       body.StackTrace,
	}

	if len(names) == 0 || len(body.Values) == 0 {
		return tc
	}

	tc.Names = []string{}
	tc.Values = []string{}
	tc.Params = make(map[string]string)

	for i, name := range names {
		if i >= len(body.Values) {
			break
		}
		value := body.Values[i]

		switch name {
		case ExpectedResultName:
			tc.Expected = &value
		case ActualResultName:
			tc.Actual = &value
		default:
			tc.Names = append(tc.Names, name)
			tc.Values = append(tc.Values, value)
			tc.Params[name] = value
		}
	}

	return tc
}

// String renders the test case the way the game shows it, e.g.
// "Mismatch: Puzzle(x=1) = 2 (code returned 3)".
func (tc ExplorationTestCase) String() string {
	params := make([]string, len(tc.Names))
	for i, name := range tc.Names {
		params[i] = name + "=" + tc.Values[i]
	}

	correct := "Puzzle(" + strings.Join(params, ", ") + ")"
	if tc.Expected != nil && *tc.Expected != "" {
		correct += " = " + *tc.Expected
	}

	switch {
	case tc.Summary == "Mismatch":
		actual := "None"
		if tc.Actual != nil {
			actual = *tc.Actual
		}
		return fmt.Sprintf("%s: %s (code returned %s)", tc.Summary, correct, actual)
	case tc.Summary == "" && tc.Status == StatusSuccess:
		return "Success: " + correct
	case tc.Exception != "":
		return fmt.Sprintf("Exception: %s (code threw %s)", correct, tc.Exception)
	case tc.Summary == pathBoundsExceededSummary:
		return fmt.Sprintf("Inconclusive: %s (path bounds exceeded)", correct)
	default:
		return fmt.Sprintf("%s: %s", tc.Status, correct)
	}
}
