package checkpoint

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
)

// FileStore keeps progress in a small JSON file. The file is rewritten
// atomically on every mutation; a missing file means an empty state.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) State(_ context.Context) (State, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, nil
		}
		return State{}, eris.Wrap(err, "checkpoint: read file")
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, eris.Wrap(err, "checkpoint: parse file")
	}
	return st, nil
}

func (f *FileStore) Completed(ctx context.Context, slug string) (bool, error) {
	st, err := f.State(ctx)
	if err != nil {
		return false, err
	}
	return st.HasCompleted(slug), nil
}

func (f *FileStore) MarkCompleted(ctx context.Context, slug string) error {
	return f.mutate(ctx, func(st *State) {
		st.Failed = remove(st.Failed, slug)
		if !contains(st.Completed, slug) {
			st.Completed = append(st.Completed, slug)
		}
	})
}

func (f *FileStore) MarkFailed(ctx context.Context, slug string) error {
	return f.mutate(ctx, func(st *State) {
		st.Completed = remove(st.Completed, slug)
		if !contains(st.Failed, slug) {
			st.Failed = append(st.Failed, slug)
		}
	})
}

func (f *FileStore) Reset(ctx context.Context, slug string) error {
	return f.mutate(ctx, func(st *State) {
		st.Completed = remove(st.Completed, slug)
		st.Failed = remove(st.Failed, slug)
	})
}

func (f *FileStore) Close() error { return nil }

// mutate loads, applies, and atomically rewrites the state file.
func (f *FileStore) mutate(ctx context.Context, apply func(*State)) error {
	st, err := f.State(ctx)
	if err != nil {
		return err
	}
	apply(&st)

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return eris.Wrap(err, "checkpoint: marshal state")
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".progress-*.json")
	if err != nil {
		return eris.Wrap(err, "checkpoint: create temp file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return eris.Wrap(err, "checkpoint: write temp file")
	}
	if err := tmp.Close(); err != nil {
		return eris.Wrap(err, "checkpoint: close temp file")
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return eris.Wrap(err, "checkpoint: rename state file")
	}
	return nil
}

func remove(set []string, slug string) []string {
	out := set[:0]
	for _, s := range set {
		if s != slug {
			out = append(out, s)
		}
	}
	return out
}
