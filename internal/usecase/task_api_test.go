package usecase

import (
	"testing"

	"github.com/runoshun/deskfolio/internal/domain"
	"github.com/runoshun/deskfolio/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	portfolioSpec = domain.TaskSpec{ID: domain.TaskPortfolio, Thumbnail: "portfolio.png", DisplayName: "My Portfolio"}
	resumeSpec    = domain.TaskSpec{ID: domain.TaskResume, Thumbnail: "resume.png", DisplayName: "My Resume"}
)

func newTaskAPI() *TaskAPI {
	return NewTaskAPI(store.New(nil))
}

func TestTaskAPI_GetTask(t *testing.T) {
	api := newTaskAPI()

	_, ok := api.GetTask(domain.TaskPortfolio)
	assert.False(t, ok, "absent task is not found, not an error")

	api.RegisterTask(portfolioSpec)
	task, ok := api.GetTask(domain.TaskPortfolio)
	require.True(t, ok)
	assert.Equal(t, domain.TaskOpen, task.State)
}

func TestTaskAPI_MutationsAreVisibleToNextRead(t *testing.T) {
	api := newTaskAPI()

	api.RegisterTask(portfolioSpec)
	assert.Equal(t, domain.TaskPortfolio, api.ActiveTask())

	api.RegisterTask(resumeSpec)
	assert.Len(t, api.Tasks(), 2)
	assert.Equal(t, domain.TaskResume, api.ActiveTask())

	api.MinimizeTask(domain.TaskResume)
	task, _ := api.GetTask(domain.TaskResume)
	assert.Equal(t, domain.TaskMinimized, task.State)

	api.SetActive(domain.TaskPortfolio)
	assert.Equal(t, domain.TaskPortfolio, api.ActiveTask())

	api.CloseTask(domain.TaskPortfolio)
	assert.Len(t, api.Tasks(), 1)
}

func TestTaskAPI_Scenario(t *testing.T) {
	api := newTaskAPI()

	api.RegisterTask(portfolioSpec)
	require.Len(t, api.Tasks(), 1)
	assert.Equal(t, domain.Coordinates{}, api.Tasks()[0].InitialCoordinates)

	api.RegisterTask(resumeSpec)
	require.Len(t, api.Tasks(), 2)
	assert.Equal(t, domain.Coordinates{X: 70, Y: 70}, api.Tasks()[1].InitialCoordinates)
	assert.Equal(t, domain.TaskResume, api.ActiveTask())

	api.MinimizeTask(domain.TaskResume)
	assert.Equal(t, domain.TaskMinimized, api.Tasks()[1].State)
	assert.Equal(t, domain.TaskResume, api.ActiveTask())

	api.MinimizeTask(domain.TaskPortfolio)
	assert.Equal(t, domain.TaskOpen, api.Tasks()[0].State)
	assert.Equal(t, domain.TaskMinimized, api.Tasks()[1].State)
	assert.Equal(t, domain.TaskPortfolio, api.ActiveTask())

	api.CloseTask(domain.TaskResume)
	require.Len(t, api.Tasks(), 1)
	assert.Equal(t, domain.TaskPortfolio, api.Tasks()[0].ID)
}

func TestTaskAPI_CloseActiveTaskLeavesDanglingReference(t *testing.T) {
	api := newTaskAPI()
	api.RegisterTask(portfolioSpec)
	api.CloseTask(domain.TaskPortfolio)

	assert.Equal(t, domain.TaskPortfolio, api.ActiveTask())
	_, ok := api.GetTask(api.ActiveTask())
	assert.False(t, ok)
}

func TestTaskAPI_Subscribe(t *testing.T) {
	api := newTaskAPI()
	var seen []domain.TaskID
	api.Subscribe(func(s domain.State) {
		seen = append(seen, s.ActiveTask)
	})

	api.RegisterTask(portfolioSpec)
	api.SetActive(domain.TaskResume)

	assert.Equal(t, []domain.TaskID{domain.TaskPortfolio, domain.TaskResume}, seen)
}
