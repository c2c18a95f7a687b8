package datarelease

import (
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"strconv"
	"time"
)

// Language names as used by the Code Hunt API
const (
	LanguageCSharp = "CSharp"
	LanguageJava   = "Java"
)

// attemptNNN-YYYYMMDD-HHMMSS[-winningR].(java|cs)
var attemptFilenameRe = regexp.MustCompile(`^attempt([0-9]{3})-([0-9]{8}-[0-9]{6})(?:-winning([1-3]))?\.(java|cs)$`)

const timestampLayout = "20060102-150405"

var languageByExt = map[string]string{
	"cs":   LanguageCSharp,
	"java": LanguageJava,
}

// AttemptName holds everything encoded in an attempt filename.
type AttemptName struct {
	Number    int
	Timestamp time.Time
	Won       bool
	// Rating is set only for winning attempts (1-3).
	Rating    *int
	Extension string
	Language  string
}

// ParseAttemptFilename parses the base name of an attempt file.
func ParseAttemptFilename(name string) (AttemptName, error) {
	m := attemptFilenameRe.FindStringSubmatch(name)
	if m == nil {
		return AttemptName{}, fmt.Errorf("%w: attempt %q", ErrMalformedFilename, name)
	}

	ts, err := time.ParseInLocation(timestampLayout, m[2], time.UTC)
	if err != nil {
		return AttemptName{}, fmt.Errorf("%w: attempt %q: %v", ErrMalformedFilename, name, err)
	}

	number, _ := strconv.Atoi(m[1])

	an := AttemptName{
		Number:    number,
		Timestamp: ts,
		Extension: m[4],
		Language:  languageByExt[m[4]],
	}

	if m[3] != "" {
		rating, _ := strconv.Atoi(m[3])
		an.Won = true
		an.Rating = &rating
	}

	return an, nil
}

// Filename renders the name back into attempt filename form.
func (n AttemptName) Filename() string {
	name := fmt.Sprintf("attempt%03d-%s", n.Number, n.Timestamp.UTC().Format(timestampLayout))
	if n.Won && n.Rating != nil {
		name += fmt.Sprintf("-winning%d", *n.Rating)
	}
	return name + "." + n.Extension
}

// Attempt is one submission by a user for a level.
type Attempt struct {
	AttemptName

	User  *User
	Level *Level
	// Path is the attempt file's path inside the data release.
	Path string

	fsys fs.FS
	text cachedText
}

func newAttempt(fsys fs.FS, user *User, level *Level, filePath string) (*Attempt, error) {
	an, err := ParseAttemptFilename(path.Base(filePath))
	if err != nil {
		return nil, err
	}

	return &Attempt{
		AttemptName: an,
		User:        user,
		Level:       level,
		Path:        filePath,
		fsys:        fsys,
	}, nil
}

// Text returns the submitted source code.
func (a *Attempt) Text() (string, error) {
	return a.text.get(a.fsys, a.Path)
}

// SourceLanguage, SourceText and ChallengeID let an attempt be submitted
// to the Code Hunt API client.
func (a *Attempt) SourceLanguage() string {
	return a.Language
}

func (a *Attempt) SourceText() (string, error) {
	return a.Text()
}

func (a *Attempt) ChallengeID() (string, error) {
	return a.Level.ChallengeID()
}

func (a *Attempt) String() string {
	return fmt.Sprintf("{Attempt %s %s %s}", a.User, a.Level, path.Base(a.Path))
}
