// Package localfile persists assessments and scans as JSON files in a local
// directory. It is the CLI analogue of the browser's localStorage: the same
// blobs the web UI keeps, written to disk instead.
package localfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/privacy-lab/tikun13/pkg/domain/interfaces"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/repository/memory"
)

type Repository struct {
	dir        string
	mu         sync.Mutex
	assessment *assessmentStore
	scan       *scanStore
}

var _ interfaces.Repository = &Repository{}

// New opens (creating if needed) a directory-backed repository
func New(dir string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Join(dir, "assessments"), 0o750); err != nil {
		return nil, goerr.Wrap(err, "failed to create storage directory", goerr.V("dir", dir))
	}
	if err := os.MkdirAll(filepath.Join(dir, "scans"), 0o750); err != nil {
		return nil, goerr.Wrap(err, "failed to create storage directory", goerr.V("dir", dir))
	}
	r := &Repository{dir: dir}
	r.assessment = &assessmentStore{repo: r}
	r.scan = &scanStore{repo: r}
	return r, nil
}

func (r *Repository) Assessment() interfaces.AssessmentRepository {
	return r.assessment
}

func (r *Repository) Scan() interfaces.ScanRepository {
	return r.scan
}

func (r *Repository) Close() error {
	return nil
}

func (r *Repository) writeJSON(path string, v any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode record")
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o640); err != nil {
		return goerr.Wrap(err, "failed to write record", goerr.V("path", path))
	}
	if err := os.Rename(tmp, path); err != nil {
		return goerr.Wrap(err, "failed to replace record", goerr.V("path", path))
	}
	return nil
}

func (r *Repository) readJSON(path string, v any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(path) // #nosec G304 - path is derived from record IDs
	if err != nil {
		if os.IsNotExist(err) {
			return goerr.Wrap(memory.ErrNotFound, "record not found", goerr.V("path", path))
		}
		return goerr.Wrap(err, "failed to read record", goerr.V("path", path))
	}
	if err := json.Unmarshal(data, v); err != nil {
		return goerr.Wrap(err, "failed to decode record", goerr.V("path", path))
	}
	return nil
}

// safeName keeps record filenames to the ID's safe characters
func safeName(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, id)
}

type assessmentStore struct {
	repo *Repository
}

func (s *assessmentStore) path(id model.AssessmentID) string {
	return filepath.Join(s.repo.dir, "assessments", safeName(id.String())+".json")
}

func (s *assessmentStore) Create(ctx context.Context, a *model.Assessment) (*model.Assessment, error) {
	created := *a
	if created.ID == "" {
		created.ID = model.NewAssessmentID()
	}
	now := time.Now().UTC()
	if created.StartTime.IsZero() {
		created.StartTime = now
	}
	created.UpdatedAt = now

	if err := s.repo.writeJSON(s.path(created.ID), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *assessmentStore) Get(ctx context.Context, id model.AssessmentID) (*model.Assessment, error) {
	var a model.Assessment
	if err := s.repo.readJSON(s.path(id), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *assessmentStore) List(ctx context.Context) ([]*model.Assessment, error) {
	entries, err := os.ReadDir(filepath.Join(s.repo.dir, "assessments"))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list assessments")
	}
	var out []*model.Assessment
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		var a model.Assessment
		if err := s.repo.readJSON(filepath.Join(s.repo.dir, "assessments", entry.Name()), &a); err != nil {
			continue
		}
		out = append(out, &a)
	}
	return out, nil
}

func (s *assessmentStore) Update(ctx context.Context, a *model.Assessment) (*model.Assessment, error) {
	if _, err := s.Get(ctx, a.ID); err != nil {
		return nil, err
	}
	updated := *a
	updated.UpdatedAt = time.Now().UTC()
	if err := s.repo.writeJSON(s.path(updated.ID), &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *assessmentStore) Delete(ctx context.Context, id model.AssessmentID) error {
	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return goerr.Wrap(memory.ErrNotFound, "assessment not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to delete assessment", goerr.V("id", id))
	}
	return nil
}

type scanStore struct {
	repo *Repository
}

func (s *scanStore) path(id model.ScanID) string {
	return filepath.Join(s.repo.dir, "scans", safeName(id.String())+".json")
}

func (s *scanStore) Save(ctx context.Context, result *model.WebScanResult) error {
	return s.repo.writeJSON(s.path(result.ID), result)
}

func (s *scanStore) Get(ctx context.Context, id model.ScanID) (*model.WebScanResult, error) {
	var result model.WebScanResult
	if err := s.repo.readJSON(s.path(id), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *scanStore) Delete(ctx context.Context, id model.ScanID) error {
	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return goerr.Wrap(memory.ErrNotFound, "scan not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to delete scan", goerr.V("id", id))
	}
	return nil
}

func (s *scanStore) List(ctx context.Context) ([]*model.WebScanResult, error) {
	entries, err := os.ReadDir(filepath.Join(s.repo.dir, "scans"))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list scans")
	}
	var out []*model.WebScanResult
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		var result model.WebScanResult
		if err := s.repo.readJSON(filepath.Join(s.repo.dir, "scans", entry.Name()), &result); err != nil {
			continue
		}
		out = append(out, &result)
	}
	return out, nil
}
