package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestProject lays out a folder with three fake images and a labels file.
// The scanner never decodes contents, so placeholder bytes are enough.
func newTestProject(t *testing.T) ProjectConfig {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"01.png", "02.jpg", "03.gif"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644))
	}
	labelsPath := filepath.Join(dir, "classes.txt")
	require.NoError(t, os.WriteFile(labelsPath, []byte("Yes\nNo\nMaybe\n"), 0o644))
	return ProjectConfig{ImagesFolder: dir, LabelsPath: labelsPath}
}

func TestLoadProject(t *testing.T) {
	s := NewState()
	cfg := newTestProject(t)

	require.NoError(t, s.LoadProject(cfg))

	assert.True(t, s.Loaded())
	assert.Equal(t, []string{"Yes", "No", "Maybe"}, s.Labels)
	assert.Len(t, s.Corpus, 3)
	assert.Equal(t, 0, s.CurrentIndex())
	assert.Equal(t, filepath.Join(cfg.ImagesFolder, DefaultCSVName), s.Config.CSVPath)
}

func TestLoadProjectInvalidFolder(t *testing.T) {
	s := NewState()
	cfg := newTestProject(t)
	cfg.ImagesFolder = filepath.Join(cfg.ImagesFolder, "missing")

	assert.Error(t, s.LoadProject(cfg))
	assert.False(t, s.Loaded())
}

func TestLoadProjectEmptyLabels(t *testing.T) {
	s := NewState()
	cfg := newTestProject(t)
	require.NoError(t, os.WriteFile(cfg.LabelsPath, []byte("\n\n"), 0o644))

	assert.Error(t, s.LoadProject(cfg))
	assert.False(t, s.Loaded())
}

func TestLoadProjectRestoresLedger(t *testing.T) {
	cfg := newTestProject(t)

	first := NewState()
	require.NoError(t, first.LoadProject(cfg))
	require.NoError(t, first.AssignLabel("Yes"))

	second := NewState()
	require.NoError(t, second.LoadProject(cfg))

	counts, unlabeled := second.Counts()
	assert.Equal(t, 1, counts["Yes"])
	assert.Equal(t, 2, unlabeled)
}

func TestLoadProjectSurfacesSkippedRows(t *testing.T) {
	cfg := newTestProject(t)
	cfg.CSVPath = filepath.Join(cfg.ImagesFolder, "labels.csv")
	broken := "timestamp,image_path,label\nbad-row-without-columns\n"
	require.NoError(t, os.WriteFile(cfg.CSVPath, []byte(broken), 0o644))

	s := NewState()
	require.NoError(t, s.LoadProject(cfg))
	assert.Equal(t, 1, s.SkippedRows)
}

func TestAssignLabelAdvancesCursor(t *testing.T) {
	s := NewState()
	require.NoError(t, s.LoadProject(newTestProject(t)))

	require.NoError(t, s.AssignLabel("Yes"))
	assert.Equal(t, 1, s.CurrentIndex())

	require.NoError(t, s.AssignLabel("No"))
	assert.Equal(t, 2, s.CurrentIndex())

	counts, unlabeled := s.Counts()
	assert.Equal(t, map[string]int{"Yes": 1, "No": 1, "Maybe": 0}, counts)
	assert.Equal(t, 1, unlabeled)
}

func TestAssignLabelUnknownLabel(t *testing.T) {
	s := NewState()
	require.NoError(t, s.LoadProject(newTestProject(t)))

	assert.Error(t, s.AssignLabel("Never"))
	assert.Equal(t, 0, s.CurrentIndex())
}

func TestAssignLabelNoProject(t *testing.T) {
	s := NewState()
	assert.Error(t, s.AssignLabel("Yes"))
}

func TestAssignLabelWriteFailureLeavesStateUntouched(t *testing.T) {
	s := NewState()
	cfg := newTestProject(t)
	// CSV path in a directory that does not exist: every write fails.
	cfg.CSVPath = filepath.Join(cfg.ImagesFolder, "missing", "labels.csv")
	require.NoError(t, s.LoadProject(cfg))

	err := s.AssignLabel("Yes")
	require.Error(t, err)

	assert.Equal(t, 0, s.CurrentIndex())
	counts, unlabeled := s.Counts()
	assert.Equal(t, 0, counts["Yes"])
	assert.Equal(t, 3, unlabeled)
}

func TestRelabelCurrentImage(t *testing.T) {
	s := NewState()
	require.NoError(t, s.LoadProject(newTestProject(t)))

	require.NoError(t, s.AssignLabel("Yes"))
	s.NavigatePrevious()
	require.NoError(t, s.AssignLabel("Maybe"))

	counts, unlabeled := s.Counts()
	assert.Equal(t, map[string]int{"Yes": 0, "No": 0, "Maybe": 1}, counts)
	assert.Equal(t, 2, unlabeled)
	assert.Equal(t, 1, s.Ledger.Len())
}

func TestNavigationClamps(t *testing.T) {
	s := NewState()
	require.NoError(t, s.LoadProject(newTestProject(t)))

	s.NavigatePrevious()
	assert.Equal(t, 0, s.CurrentIndex())

	s.NavigateNext()
	s.NavigateNext()
	s.NavigateNext() // clamped at the last image
	assert.Equal(t, 2, s.CurrentIndex())
}

func TestEventsFire(t *testing.T) {
	s := NewState()

	var loaded, counted int
	var positions []int
	s.On(EventProjectLoaded, func(interface{}) { loaded++ })
	s.On(EventCountsChanged, func(interface{}) { counted++ })
	s.On(EventPositionChanged, func(data interface{}) {
		positions = append(positions, data.(int))
	})

	require.NoError(t, s.LoadProject(newTestProject(t)))
	require.NoError(t, s.AssignLabel("Yes"))
	s.NavigateNext()

	assert.Equal(t, 1, loaded)
	assert.Equal(t, 2, counted)
	assert.Equal(t, []int{0, 1, 2}, positions)
}

func TestCurrentImageAndLabel(t *testing.T) {
	s := NewState()
	require.NoError(t, s.LoadProject(newTestProject(t)))

	path, ok := s.CurrentImage()
	require.True(t, ok)
	assert.Equal(t, "01.png", filepath.Base(path))

	_, ok = s.CurrentLabel()
	assert.False(t, ok)

	require.NoError(t, s.AssignLabel("Yes"))
	s.NavigatePrevious()
	label, ok := s.CurrentLabel()
	assert.True(t, ok)
	assert.Equal(t, "Yes", label)

	assert.Equal(t, 1, s.LabeledTotal())
}
