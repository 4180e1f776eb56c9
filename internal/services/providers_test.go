package services

import (
	"context"
	"testing"
	"time"

	"github.com/maxaizer/vacancy-saver/internal/clients/hh"
	"github.com/maxaizer/vacancy-saver/internal/clients/superjob"
	"github.com/maxaizer/vacancy-saver/internal/entities"
	"github.com/maxaizer/vacancy-saver/internal/normalizer"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_HeadHunterProvider_Search_NormalizesShortBatch(t *testing.T) {
	client := &mockHHClient{}
	client.On("GetVacancies", mock.Anything, hh.SearchParameters{Text: "golang", PerPage: 5}).
		Return([]hh.Vacancy{
			{ID: "1", Name: "Go developer", Salary: &hh.Salary{From: lo.ToPtr(1000), To: lo.ToPtr(2000)}},
			{ID: "2", Name: "Go intern"},
		}, nil)

	result, err := NewHeadHunterProvider(client).Search(context.Background(), "golang", 5)
	require.NoError(t, err)

	assert.Equal(t, entities.HeadHunter, result.Provider)
	assert.LessOrEqual(t, len(result.Vacancies), 2)
	assert.Equal(t, []int{2, 3, 4}, result.Missing)
	client.AssertExpectations(t)
}

func Test_HeadHunterProvider_Search_CapsPageSize(t *testing.T) {
	client := &mockHHClient{}
	client.On("GetVacancies", mock.Anything, hh.SearchParameters{Text: "go", PerPage: hh.MaxPerPage}).
		Return([]hh.Vacancy{}, nil)

	result, err := NewHeadHunterProvider(client).Search(context.Background(), "go", 150)
	require.NoError(t, err)
	assert.Len(t, result.Missing, 150)
}

func Test_HeadHunterProvider_Search_ClientError_ShouldFail(t *testing.T) {
	client := &mockHHClient{}
	client.On("GetVacancies", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := NewHeadHunterProvider(client).Search(context.Background(), "go", 3)
	assert.ErrorContains(t, err, "HeadHunter search failed")
}

func Test_Providers_Search_InvalidQuantity_ShouldFail(t *testing.T) {
	_, err := NewHeadHunterProvider(&mockHHClient{}).Search(context.Background(), "go", 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewSuperJobProvider(&mockSuperJobClient{}, true).Search(context.Background(), "go", -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func Test_SuperJobProvider_Search_Normalizes(t *testing.T) {
	client := &mockSuperJobClient{}
	client.On("GetVacancies", mock.Anything, "golang", 2).
		Return([]superjob.Vacancy{
			{ID: 10, Profession: "Go", PaymentFrom: lo.ToPtr(500), Town: &superjob.Town{Title: "Тула"}},
		}, nil)

	result, err := NewSuperJobProvider(client, true).Search(context.Background(), "golang", 2)
	require.NoError(t, err)

	assert.Equal(t, entities.SuperJob, result.Provider)
	assert.Equal(t, "Тула", result.Vacancies["10"].Town)
	assert.Equal(t, []int{1}, result.Missing)
}

func Test_CachedProvider_RepeatedSearch_HitsProviderOnce(t *testing.T) {
	provider := &mockProvider{name: entities.HeadHunter}
	expected := normalizer.Result{Provider: entities.HeadHunter, Vacancies: entities.Batch{"1": {Name: "Go"}}}
	provider.On("Search", mock.Anything, "golang", 3).Return(expected, nil).Once()

	cached := NewCachedProvider(provider, time.Minute)

	first, err := cached.Search(context.Background(), "golang", 3)
	require.NoError(t, err)
	second, err := cached.Search(context.Background(), " golang ", 3)
	require.NoError(t, err)

	assert.Equal(t, expected, first)
	assert.Equal(t, expected, second)
	assert.Equal(t, entities.HeadHunter, cached.Name())
	provider.AssertNumberOfCalls(t, "Search", 1)
}

func Test_CachedProvider_Errors_AreNotCached(t *testing.T) {
	provider := &mockProvider{name: entities.SuperJob}
	provider.On("Search", mock.Anything, "go", 1).Return(normalizer.Result{}, errors.New("boom")).Once()
	provider.On("Search", mock.Anything, "go", 1).Return(normalizer.Result{Provider: entities.SuperJob}, nil).Once()

	cached := NewCachedProvider(provider, time.Minute)

	_, err := cached.Search(context.Background(), "go", 1)
	assert.Error(t, err)
	_, err = cached.Search(context.Background(), "go", 1)
	assert.NoError(t, err)
	provider.AssertExpectations(t)
}
