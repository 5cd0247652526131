// Package app provides application state, the event bus, and the action
// handlers the UI dispatches into.
package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/kaur-ai/LabelImage/internal/corpus"
	"github.com/kaur-ai/LabelImage/internal/labels"
	"github.com/kaur-ai/LabelImage/internal/ledger"
)

// DefaultCSVName is the ledger filename used when no CSV path is chosen.
const DefaultCSVName = "labels.csv"

// ProjectConfig identifies a labeling project: an images folder, a labels
// text file, and the CSV file assignments are written to. It lives in memory
// only; the CSV is the sole persisted artifact of a project.
type ProjectConfig struct {
	ImagesFolder string
	LabelsPath   string
	CSVPath      string // defaults to <ImagesFolder>/labels.csv when empty
}

// EventType identifies different application events.
type EventType int

const (
	EventProjectLoaded EventType = iota
	EventLabelAssigned
	EventPositionChanged
	EventCountsChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the loaded project: label set, corpus, ledger, and cursor.
// All mutations go through the action methods (LoadProject, AssignLabel,
// NavigateNext, NavigatePrevious, JumpTo) so the UI stays a thin shell that
// renders state and forwards user input.
type State struct {
	mu sync.RWMutex

	Config ProjectConfig
	Labels []string
	Corpus []string
	Ledger *ledger.Ledger

	// SkippedRows counts malformed CSV rows dropped during the last load,
	// surfaced to the user as a warning.
	SkippedRows int

	cursor    Cursor
	listeners map[EventType][]EventListener
}

// NewState creates an empty application state.
func NewState() *State {
	return &State{
		Ledger:    ledger.New(""),
		cursor:    NewCursor(0),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Loaded reports whether a project is currently loaded.
func (s *State) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.Corpus) > 0
}

// LoadProject loads the label set, scans the corpus, and restores any prior
// assignments from the CSV. The cursor is reset to the first image. On any
// failure the previous state is left untouched.
func (s *State) LoadProject(cfg ProjectConfig) error {
	info, err := os.Stat(cfg.ImagesFolder)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("images folder %q is not a directory", cfg.ImagesFolder)
	}

	labelSet, err := labels.Load(cfg.LabelsPath)
	if err != nil {
		return err
	}

	images, err := corpus.Scan(cfg.ImagesFolder)
	if err != nil {
		return err
	}

	if cfg.CSVPath == "" {
		cfg.CSVPath = filepath.Join(cfg.ImagesFolder, DefaultCSVName)
	}

	led := ledger.New(cfg.CSVPath)
	skipped, err := led.Load()
	if err != nil {
		return err
	}
	if skipped > 0 {
		log.Printf("Ledger %s: skipped %d malformed row(s)", cfg.CSVPath, skipped)
	}

	s.mu.Lock()
	s.Config = cfg
	s.Labels = labelSet
	s.Corpus = images
	s.Ledger = led
	s.SkippedRows = skipped
	s.cursor = NewCursor(len(images))
	s.mu.Unlock()

	log.Printf("Project loaded: %d images, %d labels, ledger %s",
		len(images), len(labelSet), cfg.CSVPath)

	s.Emit(EventProjectLoaded, cfg)
	s.Emit(EventCountsChanged, nil)
	s.Emit(EventPositionChanged, s.CurrentIndex())
	return nil
}

// CurrentIndex returns the cursor position, or EmptyIndex with no corpus.
func (s *State) CurrentIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursor.Current()
}

// CorpusSize returns the number of images in the active corpus.
func (s *State) CorpusSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.Corpus)
}

// CurrentImage returns the path of the image under the cursor.
func (s *State) CurrentImage() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.cursor.Current()
	if idx == EmptyIndex {
		return "", false
	}
	return s.Corpus[idx], true
}

// CurrentLabel returns the label assigned to the image under the cursor.
func (s *State) CurrentLabel() (string, bool) {
	path, ok := s.CurrentImage()
	if !ok {
		return "", false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Ledger.Get(path)
}

// AssignLabel writes label for the current image and advances the cursor.
// If the ledger write fails, neither the cursor nor the counters change and
// the error is returned so the user can retry.
func (s *State) AssignLabel(label string) error {
	path, ok := s.CurrentImage()
	if !ok {
		return fmt.Errorf("no image loaded")
	}
	if !s.hasLabel(label) {
		return fmt.Errorf("unknown label %q", label)
	}

	if err := s.Ledger.Upsert(path, label, time.Now()); err != nil {
		return err
	}

	s.mu.Lock()
	s.cursor.Next()
	idx := s.cursor.Current()
	s.mu.Unlock()

	s.Emit(EventLabelAssigned, label)
	s.Emit(EventCountsChanged, nil)
	s.Emit(EventPositionChanged, idx)
	return nil
}

// NavigateNext moves the cursor one image forward, clamped at the end.
func (s *State) NavigateNext() {
	s.mu.Lock()
	s.cursor.Next()
	idx := s.cursor.Current()
	s.mu.Unlock()
	s.Emit(EventPositionChanged, idx)
}

// NavigatePrevious moves the cursor one image back, clamped at the start.
func (s *State) NavigatePrevious() {
	s.mu.Lock()
	s.cursor.Previous()
	idx := s.cursor.Current()
	s.mu.Unlock()
	s.Emit(EventPositionChanged, idx)
}

// JumpTo moves the cursor directly to index i.
func (s *State) JumpTo(i int) error {
	s.mu.Lock()
	err := s.cursor.JumpTo(i)
	idx := s.cursor.Current()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.Emit(EventPositionChanged, idx)
	return nil
}

// Counts returns the per-label tallies over the active corpus plus the
// number of unlabeled images.
func (s *State) Counts() (map[string]int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Ledger.CountByLabel(s.Labels, s.Corpus)
}

// LabeledTotal returns how many corpus images carry a label.
func (s *State) LabeledTotal() int {
	s.mu.RLock()
	total := len(s.Corpus)
	s.mu.RUnlock()
	_, unlabeled := s.Counts()
	return total - unlabeled
}

func (s *State) hasLabel(label string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.Labels {
		if l == label {
			return true
		}
	}
	return false
}
