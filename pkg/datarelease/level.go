package datarelease

import (
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"strconv"
	"strings"
)

// File extensions used under solutions/
const (
	ChallengeIDExt = ".challengeId"
	SolutionExt    = ".cs"
)

var levelNameRe = regexp.MustCompile(`^Sector(\d+)-Level(\d+)$`)

// Level is one puzzle of the game, e.g. "Sector1-Level3".
type Level struct {
	Name          string
	Sector        int
	LevelInSector int

	fsys            fs.FS
	challengeIDPath string

	challengeID   cachedText
	challengeText cachedText
}

func newLevel(fsys fs.FS, challengeIDPath string) (*Level, error) {
	name := strings.TrimSuffix(path.Base(challengeIDPath), ChallengeIDExt)

	sector, inSector, err := ParseLevelName(name)
	if err != nil {
		return nil, err
	}

	return &Level{
		Name:            name,
		Sector:          sector,
		LevelInSector:   inSector,
		fsys:            fsys,
		challengeIDPath: challengeIDPath,
	}, nil
}

// ParseLevelName splits "Sector<N>-Level<M>" into its sector and level numbers.
func ParseLevelName(name string) (sector, levelInSector int, err error) {
	m := levelNameRe.FindStringSubmatch(name)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: level %q", ErrMalformedFilename, name)
	}

	sector, _ = strconv.Atoi(m[1])
	levelInSector, _ = strconv.Atoi(m[2])
	return sector, levelInSector, nil
}

// ChallengeIDPath returns the path of the .challengeId file inside the data release.
func (l *Level) ChallengeIDPath() string {
	return l.challengeIDPath
}

// ChallengeID returns the identifier the Code Hunt API uses for this level.
// The file is read on first use and cached.
func (l *Level) ChallengeID() (string, error) {
	return l.challengeID.get(l.fsys, l.challengeIDPath)
}

// ChallengeText returns the reference solution, read from the .cs file
// next to the .challengeId file.
func (l *Level) ChallengeText() (string, error) {
	name := strings.TrimSuffix(l.challengeIDPath, ChallengeIDExt) + SolutionExt
	return l.challengeText.get(l.fsys, name)
}

func (l *Level) String() string {
	return fmt.Sprintf("{Level %s}", l.Name)
}
