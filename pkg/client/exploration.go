package client

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExplorationKind tags the shape of an exploration response.
type ExplorationKind string

const (
	KindTestCases        ExplorationKind = "TestCases"
	KindInternalError    ExplorationKind = "InternalError"
	KindCompilationError ExplorationKind = "CompilationError"
	KindBadPuzzle        ExplorationKind = "BadPuzzle"
	KindBadCodingDuel    ExplorationKind = "BadCodingDuel"
	KindBadDependency    ExplorationKind = "BadDependency"
)

// TestCaseStatus is the outcome of one test case.
type TestCaseStatus string

const (
	StatusFailure      TestCaseStatus = "Failure"
	StatusInconclusive TestCaseStatus = "Inconclusive"
	StatusSuccess      TestCaseStatus = "Success"
)

// Reserved value names carrying the puzzle's and the program's results.
const (
	ExpectedResultName = "EXPECTED RESULT"
	ActualResultName   = "YOUR RESULT"
)

// CompilationError is one compiler diagnostic.
type CompilationError struct {
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	ErrorNumber string `json:"errorNumber"`
	ErrorText   string `json:"errorText"`
}

func (e CompilationError) String() string {
	return fmt.Sprintf("%d:%d::%s: %s", e.Line, e.Column, e.ErrorNumber, e.ErrorText)
}

// ExplorationResult is one of the kind-specific exploration payloads:
// *TestCasesResult, *InternalErrorResult, *CompilationErrorResult,
// *BadPuzzleResult, *BadCodingDuelResult or *BadDependencyResult.
type ExplorationResult interface {
	Kind() ExplorationKind
	// Errors returns the error messages of a failed exploration, nil for test cases.
	Errors() []string
}

// TestCasesResult is returned when the program compiled and was run.
type TestCasesResult struct {
	HasWon    bool
	TestCases []ExplorationTestCase
}

// InternalErrorResult reports a failure inside the Code Hunt service.
type InternalErrorResult struct {
	Exception string
}

// CompilationErrorResult reports compiler diagnostics.
type CompilationErrorResult struct {
	CompilationErrors []CompilationError
}

// BadPuzzleResult reports a problem with the puzzle itself.
type BadPuzzleResult struct {
	Description string
}

// BadCodingDuelResult reports a malformed coding duel.
type BadCodingDuelResult struct {
	Messages []string
}

// BadDependencyResult lists types the program may not reference.
type BadDependencyResult struct {
	ReferencedTypes []string
}

func (*TestCasesResult) Kind() ExplorationKind        { return KindTestCases }
func (*InternalErrorResult) Kind() ExplorationKind    { return KindInternalError }
func (*CompilationErrorResult) Kind() ExplorationKind { return KindCompilationError }
func (*BadPuzzleResult) Kind() ExplorationKind        { return KindBadPuzzle }
func (*BadCodingDuelResult) Kind() ExplorationKind    { return KindBadCodingDuel }
func (*BadDependencyResult) Kind() ExplorationKind    { return KindBadDependency }

func (*TestCasesResult) Errors() []string       { return nil }
func (r *InternalErrorResult) Errors() []string { return []string{r.Exception} }
func (r *BadPuzzleResult) Errors() []string     { return []string{r.Description} }
func (r *BadCodingDuelResult) Errors() []string { return r.Messages }
func (r *BadDependencyResult) Errors() []string { return r.ReferencedTypes }

func (r *CompilationErrorResult) Errors() []string {
	errs := make([]string, len(r.CompilationErrors))
	for i, e := range r.CompilationErrors {
		errs[i] = e.String()
	}
	return errs
}

// Exploration is the outcome of running a submission against a puzzle.
type Exploration struct {
	Submission Submission
	IsComplete bool
	Result     ExplorationResult
}

// Kind returns the tag of the result.
func (e *Exploration) Kind() ExplorationKind {
	return e.Result.Kind()
}

// AttemptCompiles reports whether the program compiled and was tested.
func (e *Exploration) AttemptCompiles() bool {
	return e.Kind() == KindTestCases
}

// HasWon reports whether the program solved the puzzle.
func (e *Exploration) HasWon() bool {
	if r, ok := e.Result.(*TestCasesResult); ok {
		return r.HasWon
	}
	return false
}

// TestCases returns the test cases, nil unless the program compiled.
func (e *Exploration) TestCases() []ExplorationTestCase {
	if r, ok := e.Result.(*TestCasesResult); ok {
		return r.TestCases
	}
	return nil
}

// Errors returns the error messages, nil if the program compiled.
func (e *Exploration) Errors() []string {
	return e.Result.Errors()
}

// CompilationErrors returns the structured compiler diagnostics, if any.
func (e *Exploration) CompilationErrors() []CompilationError {
	if r, ok := e.Result.(*CompilationErrorResult); ok {
		return r.CompilationErrors
	}
	return nil
}

func (e *Exploration) String() string {
	if r, ok := e.Result.(*TestCasesResult); ok {
		won := ""
		if r.HasWon {
			won = " (won)"
		}
		cases := make([]string, len(r.TestCases))
		for i, tc := range r.TestCases {
			cases[i] = tc.String()
		}
		return fmt.Sprintf("{Exploration %s%s [%s]}", e.Kind(), won, strings.Join(cases, "; "))
	}
	return fmt.Sprintf("{Exploration %s %q}", e.Kind(), e.Errors())
}

// wire formats

type explorationEnvelope struct {
	IsComplete bool            `json:"isComplete"`
	Kind       ExplorationKind `json:"kind"`
}

type testCasesBody struct {
	HasWon    bool           `json:"hasWon"`
	Names     []string       `json:"names"`
	TestCases []testCaseBody `json:"testCases"`
}

type testCaseBody struct {
	Status                           TestCaseStatus `json:"status"`
	AnyExceptionOrPathBoundsExceeded bool           `json:"anyExceptionOrPathBoundsExceeded"`
	Summary                          string         `json:"summary"`
	Message                          string         `json:"message"`
	Exception                        string         `json:"exception"`
	StackTrace                       string         `json:"stackTrace"`
	Values                           []string       `json:"values"`
}

// decodeExploration turns an /explorations/{id} body into an Exploration.
func decodeExploration(sub Submission, data []byte) (*Exploration, error) {
	var env explorationEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal exploration: %w", err)
	}

	result, err := decodeExplorationResult(env.Kind, data)
	if err != nil {
		return nil, err
	}

	return &Exploration{
		Submission: sub,
		IsComplete: env.IsComplete,
		Result:     result,
	}, nil
}

func decodeExplorationResult(kind ExplorationKind, data []byte) (ExplorationResult, error) {
	var (
		result ExplorationResult
		err    error
	)

	switch kind {
	case KindTestCases:
		var body testCasesBody
		if err = json.Unmarshal(data, &body); err == nil {
			r := &TestCasesResult{HasWon: body.HasWon}
			for _, tc := range body.TestCases {
				r.TestCases = append(r.TestCases, newExplorationTestCase(body.Names, tc))
			}
			result = r
		}
	case KindInternalError:
		var body struct {
			Exception string `json:"exception"`
		}
		if err = json.Unmarshal(data, &body); err == nil {
			result = &InternalErrorResult{Exception: body.Exception}
		}
	case KindCompilationError:
		var body struct {
			Errors []CompilationError `json:"errors"`
		}
		if err = json.Unmarshal(data, &body); err == nil {
			result = &CompilationErrorResult{CompilationErrors: body.Errors}
		}
	case KindBadPuzzle:
		var body struct {
			Description string `json:"description"`
		}
		if err = json.Unmarshal(data, &body); err == nil {
			result = &BadPuzzleResult{Description: body.Description}
		}
	case KindBadCodingDuel:
		var body struct {
			Errors []string `json:"errors"`
		}
		if err = json.Unmarshal(data, &body); err == nil {
			result = &BadCodingDuelResult{Messages: body.Errors}
		}
	case KindBadDependency:
		var body struct {
			ReferencedTypes []string `json:"referencedTypes"`
		}
		if err = json.Unmarshal(data, &body); err == nil {
			result = &BadDependencyResult{ReferencedTypes: body.ReferencedTypes}
		}
	default:
		return nil, fmt.Errorf("%w: exploration kind %q", ErrUnknownKind, kind)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s exploration: %w", kind, err)
	}
	return result, nil
}
