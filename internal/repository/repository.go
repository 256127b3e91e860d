package repository

import (
	"projecthub/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// List retrieves users in insertion order with offset/limit windowing
	List(skip, limit int) ([]models.User, error)

	// Update persists all fields of the user
	Update(user *models.User) error

	// Delete removes the user; their projects are left in place
	Delete(id uint64) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// List retrieves projects in insertion order with offset/limit windowing
	List(skip, limit int) ([]models.Project, error)

	// Update persists all fields of the project
	Update(project *models.Project) error

	// Delete removes the project and all of its tasks in one transaction
	Delete(id uint64) error
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	ProjectID *uint64
	Skip      int
	Limit     int
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// List retrieves tasks in insertion order, optionally filtered by project
	List(filter TaskFilter) ([]models.Task, error)

	// Update persists all fields of the task
	Update(task *models.Task) error

	// Delete removes the task
	Delete(id uint64) error
}
