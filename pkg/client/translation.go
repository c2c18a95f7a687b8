package client

import (
	"context"
	"encoding/json"
	"fmt"
)

// Languages understood by the API
const (
	LanguageJava   = "Java"
	LanguageCSharp = "CSharp"
)

const kindTranslated = "Translated"

// Translation is the result of translating a Java program to C#.
// A successful translation is itself a Submission: it carries the C# text
// and the challenge of the program it was translated from.
type Translation struct {
	Source  Submission
	Success bool
	// Text and Language are set on success.
	Text     string
	Language string
	// Errors is set when the program is not valid Java or uses
	// unsupported features.
	Errors []CompilationError
}

// Translate converts a Java submission to the C# the game runs internally.
// Only Java programs can be translated; anything else fails with
// ErrInvalidOperation before a request is made.
func (c *Client) Translate(ctx context.Context, sub Submission) (*Translation, error) {
	if sub.SourceLanguage() != LanguageJava {
		return nil, fmt.Errorf("%w: can only translate %s programs, got %q",
			ErrInvalidOperation, LanguageJava, sub.SourceLanguage())
	}

	text, err := sub.SourceText()
	if err != nil {
		return nil, err
	}

	resp, err := c.postJSON(ctx, "/translate?language="+LanguageCSharp, Program{
		Language: sub.SourceLanguage(),
		Text:     text,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to translate: %w", err)
	}

	return decodeTranslation(sub, resp)
}

func decodeTranslation(sub Submission, data []byte) (*Translation, error) {
	var body struct {
		Kind    string             `json:"kind"`
		Program *Program           `json:"program"`
		Errors  []CompilationError `json:"errors"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("failed to unmarshal translation: %w", err)
	}

	t := &Translation{Source: sub}
	if body.Kind == kindTranslated {
		if body.Program == nil {
			return nil, fmt.Errorf("translation response has no program")
		}
		t.Success = true
		t.Text = body.Program.Text
		t.Language = body.Program.Language
		return t, nil
	}

	if body.Kind == "" {
		return nil, fmt.Errorf("%w: empty translation kind", ErrUnknownKind)
	}
	t.Errors = body.Errors
	return t, nil
}

func (t *Translation) SourceLanguage() string {
	return t.Language
}

func (t *Translation) SourceText() (string, error) {
	if !t.Success {
		return "", fmt.Errorf("%w: translation failed", ErrInvalidOperation)
	}
	return t.Text, nil
}

func (t *Translation) ChallengeID() (string, error) {
	return t.Source.ChallengeID()
}

func (t *Translation) String() string {
	if t.Success {
		return fmt.Sprintf("{Translation of %v}", t.Source)
	}
	errs := make([]string, len(t.Errors))
	for i, e := range t.Errors {
		errs[i] = e.String()
	}
	return fmt.Sprintf("{Failed translation of %v: %q}", t.Source, errs)
}
