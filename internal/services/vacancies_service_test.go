package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/vacancy-saver/internal/entities"
	"github.com/maxaizer/vacancy-saver/internal/events"
	"github.com/maxaizer/vacancy-saver/internal/normalizer"
	"github.com/maxaizer/vacancy-saver/internal/repositories"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, providers ...Provider) (*VacanciesService, EventBus.Bus) {
	bus := EventBus.New()
	store := repositories.NewVacanciesFile(filepath.Join(t.TempDir(), "saved_vacancies.json"))
	service, err := NewVacanciesService(bus, store, providers...)
	require.NoError(t, err)
	return service, bus
}

func Test_NewVacanciesService_NilDependencies_ShouldFail(t *testing.T) {
	_, err := NewVacanciesService(nil, repositories.NewVacanciesFile("x.json"))
	assert.Error(t, err)

	_, err = NewVacanciesService(EventBus.New(), nil)
	assert.Error(t, err)
}

func Test_VacanciesService_Search_PublishesEvent(t *testing.T) {
	provider := &mockProvider{name: entities.HeadHunter}
	provider.On("Search", mock.Anything, "golang", 3).Return(normalizer.Result{
		Provider:  entities.HeadHunter,
		Vacancies: entities.Batch{"1": {Name: "Go"}, "2": {Name: "Go senior"}},
		Missing:   []int{2},
	}, nil)

	service, bus := newTestService(t, provider)

	var received []events.VacanciesFound
	require.NoError(t, bus.Subscribe(events.VacanciesFoundTopic, func(event events.VacanciesFound) {
		received = append(received, event)
	}))

	result, err := service.Search(context.Background(), entities.HeadHunter, "golang", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Found())

	require.Len(t, received, 1)
	assert.Equal(t, events.VacanciesFound{Provider: entities.HeadHunter, Keyword: "golang", Found: 2, Missing: 1}, received[0])
}

func Test_VacanciesService_Search_UnknownProvider_ShouldFail(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Search(context.Background(), entities.SuperJob, "golang", 3)
	assert.ErrorIs(t, err, entities.ErrUnknownProvider)
}

func Test_VacanciesService_Search_ProviderError_IsReturned(t *testing.T) {
	provider := &mockProvider{name: entities.SuperJob}
	provider.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return(normalizer.Result{}, errors.New("unauthorized"))

	service, _ := newTestService(t, provider)

	_, err := service.Search(context.Background(), entities.SuperJob, "golang", 3)
	assert.ErrorContains(t, err, "unauthorized")
}

func Test_VacanciesService_SaveListSortDelete(t *testing.T) {
	service, _ := newTestService(t)

	require.NoError(t, service.Save(entities.Batch{
		"1": {Name: "first", PaymentFrom: lo.ToPtr(1000), PaymentTo: lo.ToPtr(2000), Town: "Москва"},
	}, Overwrite))
	require.NoError(t, service.Save(entities.Batch{
		"2": {Name: "second", PaymentFrom: lo.ToPtr(500), Town: "Москва"},
	}, Append))

	listed, err := service.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, vacancyNames(listed))

	ascending, err := service.Sorted(false)
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, vacancyNames(ascending))

	descending, err := service.Sorted(true)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, vacancyNames(descending))

	removed, err := service.Delete("first", "Москва")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	listed, err = service.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"second"}, vacancyNames(listed))
}

func Test_VacanciesService_Save_AppendWithoutDocument_CreatesIt(t *testing.T) {
	service, _ := newTestService(t)

	require.NoError(t, service.Save(entities.Batch{"1": {Name: "only"}}, Append))

	listed, err := service.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, vacancyNames(listed))
}

func Test_VacanciesService_List_WithoutDocument_ShouldFail(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.List()
	assert.ErrorIs(t, err, repositories.ErrDocumentNotFound)

	_, err = service.Delete("x", "y")
	assert.ErrorIs(t, err, repositories.ErrDocumentNotFound)
}

func vacancyNames(vacancies []entities.Vacancy) []string {
	return lo.Map(vacancies, func(v entities.Vacancy, _ int) string { return v.Name })
}
