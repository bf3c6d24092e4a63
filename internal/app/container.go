// Package app wires the application dependencies together.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/jbw/roadmap/internal/domain"
	"github.com/jbw/roadmap/internal/infra/config"
	"github.com/jbw/roadmap/internal/infra/docfile"
	"github.com/jbw/roadmap/internal/infra/jsonstore"
	"github.com/jbw/roadmap/internal/infra/logging"
	"github.com/jbw/roadmap/internal/usecase"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Tasks  domain.TaskRepository
	Docs   domain.DocReader
	Clock  domain.Clock
	Logger domain.Logger

	roadmapDir string
}

// New creates the dependency injection container: loads configuration,
// resolves paths, and builds the infrastructure adapters.
func New() (*Container, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg), nil
}

// NewWithConfig builds a container from an already-loaded config.
func NewWithConfig(cfg *config.Config) *Container {
	roadmapDir := filepath.Join(cfg.Workspace.Root, "roadmap")

	var docs domain.DocReader
	if cfg.Workspace.DocsBase != "" {
		docs = docfile.NewWithBase(cfg.Workspace.DocsBase)
	} else {
		docs = docfile.New(cfg.Workspace.Root)
	}

	return &Container{
		Config:     cfg,
		Tasks:      jsonstore.New(filepath.Join(roadmapDir, "tasks.json")),
		Docs:       docs,
		Clock:      domain.RealClock{},
		Logger:     logging.New(roadmapDir, logging.ParseLevel(cfg.Log.Level)),
		roadmapDir: roadmapDir,
	}
}

// RoadmapDir returns the directory holding the task store and logs.
func (c *Container) RoadmapDir() string {
	return c.roadmapDir
}

// ListTasksUseCase returns the list tasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// ShowTaskUseCase returns the show task use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Tasks, c.Docs)
}

// CycleStatusUseCase returns the cycle status use case.
func (c *Container) CycleStatusUseCase() *usecase.CycleStatus {
	return usecase.NewCycleStatus(c.Tasks, c.Clock)
}

// SearchTasksUseCase returns the search tasks use case.
func (c *Container) SearchTasksUseCase() *usecase.SearchTasks {
	return usecase.NewSearchTasks(c.Tasks)
}

// ExportTasksUseCase returns the export tasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Tasks)
}
