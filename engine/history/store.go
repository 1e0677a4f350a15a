package history

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/stylize/core"
)

// Store is a bounded, newest-first log of texts. Create it with Open.
type Store struct {
	cfg       Config
	entries   *arraylist.List // of Entry, newest first
	lastID    int64
	listeners []subscription
	nextSub   ListenerID
	clock     func() time.Time
	lastErr   error
	partial   bool // history file could not be read completely
}

// ListenerID identifies a listener registered with AddListener.
type ListenerID int

type subscription struct {
	id ListenerID
	fn func()
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now as the source of entry timestamps and ids.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// Open creates a store for cfg and loads the persisted history, if any.
// A missing history file is not an error. Other load failures are traced
// and reported by LastError; the store starts empty in that case.
func Open(cfg Config, opts ...Option) *Store {
	s := &Store{
		cfg:     cfg,
		entries: arraylist.New(),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

// Config returns the store's configuration.
func (s *Store) Config() Config {
	return s.cfg
}

// AddEntry logs text. Surrounding white space is removed first. Blank
// text, and text equal to the newest entry's text, are ignored.
// Otherwise the entry is prepended, the oldest entries beyond the limit
// are dropped, the history is persisted and listeners are notified.
func (s *Store) AddEntry(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if newest, ok := s.Newest(); ok && newest.Text == text {
		tracer().Debugf("history: suppressing repeated entry")
		return
	}
	now := s.clock()
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	s.entries.Insert(0, Entry{ID: id, Text: text, Timestamp: now})
	for s.entries.Size() > s.cfg.limit() {
		s.entries.Remove(s.entries.Size() - 1)
	}
	s.save()
	s.notify()
}

// Entries returns a copy of all entries, newest first.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, 0, s.entries.Size())
	for _, v := range s.entries.Values() {
		entries = append(entries, v.(Entry))
	}
	return entries
}

// Newest returns the most recent entry, if there is one.
func (s *Store) Newest() (Entry, bool) {
	v, ok := s.entries.Get(0)
	if !ok {
		return Entry{}, false
	}
	return v.(Entry), true
}

// Size returns the number of entries.
func (s *Store) Size() int {
	return s.entries.Size()
}

// Clear removes all entries, persists the empty history and notifies
// listeners.
func (s *Store) Clear() {
	s.entries.Clear()
	s.save()
	s.notify()
}

// Reload discards the in-memory entries and reads the history file again.
// Listeners are notified.
func (s *Store) Reload() {
	s.entries.Clear()
	s.load()
	s.notify()
}

// LastError returns the failure of the most recent load or save, or nil
// if it succeeded. Malformed lines skipped while loading do not count as
// failures.
func (s *Store) LastError() error {
	return s.lastErr
}

// AddListener registers fn to be called after every change of the
// history. Listeners are called synchronously, in registration order.
func (s *Store) AddListener(fn func()) ListenerID {
	s.nextSub++
	s.listeners = append(s.listeners, subscription{id: s.nextSub, fn: fn})
	return s.nextSub
}

// RemoveListener unregisters a listener. Unknown ids are ignored.
func (s *Store) RemoveListener(id ListenerID) {
	for i, sub := range s.listeners {
		if sub.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}

func (s *Store) notify() {
	subs := append([]subscription(nil), s.listeners...)
	for _, sub := range subs {
		sub.fn()
	}
}

// --- Persistence -----------------------------------------------------------

func (s *Store) load() {
	s.lastErr = nil
	s.partial = false
	if s.cfg.Path == "" {
		return
	}
	f, err := os.Open(s.cfg.Path)
	if errors.Is(err, fs.ErrNotExist) {
		tracer().Debugf("no history file at %s", s.cfg.Path)
		return
	}
	if err != nil {
		s.partial = true
		s.fail(core.WrapError(err, core.EIO, "cannot open history file %s", s.cfg.Path))
		return
	}
	defer f.Close()
	entries, errs := Decode(f)
	for _, err := range errs {
		if core.Code(err) == core.EIO {
			s.partial = true
			s.fail(err)
		}
	}
	for _, e := range entries {
		if s.entries.Size() >= s.cfg.limit() {
			break
		}
		s.entries.Add(e)
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}
	tracer().Infof("loaded %d history entries from %s", s.entries.Size(), s.cfg.Path)
}

// save writes the history to a temporary file which then replaces the
// history file. A file which could not be read completely is never
// replaced; the store keeps its changes in memory until Reload succeeds.
func (s *Store) save() {
	s.lastErr = nil
	if s.cfg.Path == "" {
		return
	}
	if s.partial {
		s.fail(core.Error(core.EIO, "history file %s was not loaded completely, changes are kept in memory",
			s.cfg.Path))
		return
	}
	dir := filepath.Dir(s.cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		s.fail(core.WrapError(err, core.EIO, "cannot create folder %s", dir))
		return
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.cfg.Path)+".*")
	if err != nil {
		s.fail(core.WrapError(err, core.EIO, "cannot save history to %s", dir))
		return
	}
	defer os.Remove(tmp.Name()) // no-op after successful rename
	if err = Encode(tmp, s.Entries()); err != nil {
		tmp.Close()
		s.fail(err)
		return
	}
	if err = tmp.Close(); err != nil {
		s.fail(core.WrapError(err, core.EIO, "cannot save history to %s", dir))
		return
	}
	if err = os.Rename(tmp.Name(), s.cfg.Path); err != nil {
		s.fail(core.WrapError(err, core.EIO, "cannot replace history file %s", s.cfg.Path))
		return
	}
	tracer().Debugf("saved %d history entries", s.entries.Size())
}

func (s *Store) fail(err error) {
	tracer().Errorf("history: %v", err)
	s.lastErr = err
}
