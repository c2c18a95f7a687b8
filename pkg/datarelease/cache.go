package datarelease

import (
	"fmt"
	"io/fs"
	"sync"
)

// cachedText holds the contents of a single file once it has been read.
// A failed read is not cached.
type cachedText struct {
	mu   sync.Mutex
	done bool
	text string
}

func (c *cachedText) get(fsys fs.FS, name string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done {
		return c.text, nil
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}

	c.text = string(data)
	c.done = true
	return c.text, nil
}
