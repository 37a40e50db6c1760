package projects

import (
	"context"
	"testing"

	"propnest-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProjectsTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Builder{}, &models.Project{}))
	return &Service{DB: db}
}

func seedBuilder(t *testing.T, svc *Service, name string) *models.Builder {
	t.Helper()
	b := &models.Builder{Name: name}
	require.NoError(t, svc.DB.Create(b).Error)
	return b
}

func TestCreateProject_UnknownBuilder(t *testing.T) {
	svc := setupProjectsTest(t)
	_, err := svc.CreateProject(context.Background(), CreateProjectInput{
		Name:      "Lakeview Residency",
		BuilderID: uuid.New(),
	})
	assert.ErrorIs(t, err, ErrBuilderNotFound)
}

func TestCreateProject_Defaults(t *testing.T) {
	svc := setupProjectsTest(t)
	builder := seedBuilder(t, svc, "Sunrise Developers")

	project, err := svc.CreateProject(context.Background(), CreateProjectInput{
		Name:      "Lakeview Residency",
		BuilderID: builder.BuilderID,
	})
	require.NoError(t, err)
	assert.Equal(t, "ongoing", project.Status)
	assert.Nil(t, project.City)
	assert.Equal(t, "[]", string(project.Images))
	require.NotNil(t, project.Builder)
	assert.Equal(t, "Sunrise Developers", project.Builder.Name)
}

func TestCreateProject_MissingName(t *testing.T) {
	svc := setupProjectsTest(t)
	builder := seedBuilder(t, svc, "Sunrise Developers")

	_, err := svc.CreateProject(context.Background(), CreateProjectInput{BuilderID: builder.BuilderID})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestListProjects_LoadsBuilder(t *testing.T) {
	svc := setupProjectsTest(t)
	builder := seedBuilder(t, svc, "Sunrise Developers")
	_, err := svc.CreateProject(context.Background(), CreateProjectInput{
		Name:       "Lakeview Residency",
		BuilderID:  builder.BuilderID,
		Highlights: []string{"clubhouse", "lake view"},
	})
	require.NoError(t, err)

	projects, err := svc.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.NotNil(t, projects[0].Builder)
	assert.Equal(t, "Sunrise Developers", projects[0].Builder.Name)
}
