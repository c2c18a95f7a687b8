// Package datarelease reads the Code Hunt data release directory layout:
//
//	<root>/solutions/Sector<N>-Level<M>.challengeId
//	<root>/solutions/Sector<N>-Level<M>.cs
//	<root>/users/User<id>/experience
//	<root>/users/User<id>/Sector<N>-Level<M>/attempt<seq>-<date>-<time>[-winning<r>].{java,cs}
//
// Loading only lists files. File contents are read on first access and
// cached on the owning object.
package datarelease

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
)

// Data is a loaded data release.
type Data struct {
	Levels []*Level
	Users  []*User

	fsys         fs.FS
	levelsByName map[string]*Level
	usersByID    map[string]*User
}

// Open loads the data release rooted at dir.
func Open(dir string) (*Data, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open data release: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data release %s is not a directory", dir)
	}

	slog.Info("loading data release", "dir", dir)
	return Load(os.DirFS(dir))
}

// Load lists levels and users from fsys, which must be rooted at the data
// release directory.
func Load(fsys fs.FS) (*Data, error) {
	d := &Data{
		fsys:         fsys,
		levelsByName: make(map[string]*Level),
		usersByID:    make(map[string]*User),
	}

	if err := d.loadLevels(); err != nil {
		return nil, err
	}
	if err := d.loadUsers(); err != nil {
		return nil, err
	}

	slog.Info("data release loaded", "levels", len(d.Levels), "users", len(d.Users))
	return d, nil
}

func (d *Data) loadLevels() error {
	files, err := fs.Glob(d.fsys, path.Join("solutions", "*"+ChallengeIDExt))
	if err != nil {
		return fmt.Errorf("failed to list levels: %w", err)
	}

	for _, file := range files {
		level, err := newLevel(d.fsys, file)
		if err != nil {
			return err
		}
		d.Levels = append(d.Levels, level)
		d.levelsByName[level.Name] = level
	}

	return nil
}

func (d *Data) loadUsers() error {
	dirs, err := fs.Glob(d.fsys, path.Join("users", "User*"))
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	for _, dir := range dirs {
		info, err := fs.Stat(d.fsys, dir)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", dir, err)
		}
		if !info.IsDir() {
			continue
		}

		user := newUser(d.fsys, dir)
		d.Users = append(d.Users, user)
		d.usersByID[user.ID] = user
	}

	return nil
}

// Level returns the level with the given name, e.g. "Sector1-Level1".
func (d *Data) Level(name string) (*Level, error) {
	level, ok := d.levelsByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, name)
	}
	return level, nil
}

// User returns the user with the given directory name, e.g. "User001".
func (d *Data) User(id string) (*User, error) {
	user, ok := d.usersByID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}
	return user, nil
}
