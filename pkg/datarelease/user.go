package datarelease

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sync"
)

// User is one player directory under users/.
type User struct {
	ID string
	// Dir is the user's directory inside the data release.
	Dir string

	fsys       fs.FS
	experience cachedText

	mu sync.Mutex
	// attempts is keyed on the Level pointer, not its name.
	attempts map[*Level]attemptList
}

type attemptList struct {
	attempts []*Attempt
	ok       bool
}

func newUser(fsys fs.FS, dir string) *User {
	return &User{
		ID:       path.Base(dir),
		Dir:      dir,
		fsys:     fsys,
		attempts: make(map[*Level]attemptList),
	}
}

// Experience returns the self-reported experience
// (1 = Beginner, 2 = Intermediate, 3 = Advanced).
func (u *User) Experience() (string, error) {
	return u.experience.get(u.fsys, path.Join(u.Dir, "experience"))
}

// Attempts lists the user's attempts at level. ok is false when the user
// never attempted the level. A single malformed filename fails the whole
// listing.
func (u *User) Attempts(level *Level) (attempts []*Attempt, ok bool, err error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if cached, found := u.attempts[level]; found {
		return cached.attempts, cached.ok, nil
	}

	dir := path.Join(u.Dir, level.Name)
	if _, err := fs.Stat(u.fsys, dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			u.attempts[level] = attemptList{}
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to stat %s: %w", dir, err)
	}

	entries, err := fs.ReadDir(u.fsys, dir)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read attempts dir: %w", err)
	}

	attempts = make([]*Attempt, 0, len(entries))
	for _, entry := range entries {
		a, err := newAttempt(u.fsys, u, level, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, false, fmt.Errorf("user %s, level %s: %w", u.ID, level.Name, err)
		}
		attempts = append(attempts, a)
	}

	slog.Debug("attempts loaded", "user", u.ID, "level", level.Name, "count", len(attempts))

	u.attempts[level] = attemptList{attempts: attempts, ok: true}
	return attempts, true, nil
}

func (u *User) String() string {
	id := u.ID
	if len(id) > 3 {
		id = id[len(id)-3:]
	}
	return fmt.Sprintf("{User %s}", id)
}
