package inmemory

import (
	"context"
	"sync"
	"todoList/internal/models"
	repo "todoList/internal/repository"
)

// ProjectStorage is the single owner of every project in the process.
// ids keeps insertion order so listings are stable.
type ProjectStorage struct {
	storage map[string]*models.Project
	mtx     *sync.RWMutex
	ids     []string
}

func NewProjectStorage() *ProjectStorage {
	return &ProjectStorage{
		storage: make(map[string]*models.Project),
		mtx:     &sync.RWMutex{},
		ids:     []string{},
	}
}

// AddProject stores the project under its id. An existing project with the
// same id is replaced and keeps its position in the listing.
func (s *ProjectStorage) AddProject(ctx context.Context, project *models.Project) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[project.ID]; !ok {
		s.ids = append(s.ids, project.ID)
	}
	s.storage[project.ID] = project
	return nil
}

func (s *ProjectStorage) GetProject(ctx context.Context, id string) (*models.Project, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	project, ok := s.storage[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return project, nil
}

func (s *ProjectStorage) RemoveProject(ctx context.Context, id string) (bool, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[id]; !ok {
		return false, nil
	}

	delete(s.storage, id)
	for ind, val := range s.ids {
		if val == id {
			s.ids = append(s.ids[:ind], s.ids[ind+1:]...)
			break
		}
	}
	return true, nil
}

// FindProjectByName returns the first project, in insertion order, whose name
// matches exactly.
func (s *ProjectStorage) FindProjectByName(ctx context.Context, name string) (*models.Project, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for _, id := range s.ids {
		if project := s.storage[id]; project.Name == name {
			return project, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *ProjectStorage) ListProjects(ctx context.Context) ([]*models.Project, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]*models.Project, 0, len(s.ids))
	for _, id := range s.ids {
		res = append(res, s.storage[id])
	}
	return res, nil
}

func (s *ProjectStorage) Count(ctx context.Context) (int, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return len(s.storage), nil
}
