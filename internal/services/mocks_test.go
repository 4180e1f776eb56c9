package services

import (
	"context"

	"github.com/maxaizer/vacancy-saver/internal/clients/hh"
	"github.com/maxaizer/vacancy-saver/internal/clients/superjob"
	"github.com/maxaizer/vacancy-saver/internal/entities"
	"github.com/maxaizer/vacancy-saver/internal/normalizer"
	"github.com/stretchr/testify/mock"
)

type mockHHClient struct {
	mock.Mock
}

func (m *mockHHClient) GetVacancies(ctx context.Context, parameters hh.SearchParameters) ([]hh.Vacancy, error) {
	args := m.Called(ctx, parameters)
	vacancies, _ := args.Get(0).([]hh.Vacancy)
	return vacancies, args.Error(1)
}

type mockSuperJobClient struct {
	mock.Mock
}

func (m *mockSuperJobClient) GetVacancies(ctx context.Context, keyword string, count int) ([]superjob.Vacancy, error) {
	args := m.Called(ctx, keyword, count)
	vacancies, _ := args.Get(0).([]superjob.Vacancy)
	return vacancies, args.Error(1)
}

type mockProvider struct {
	mock.Mock
	name entities.Provider
}

func (m *mockProvider) Name() entities.Provider {
	return m.name
}

func (m *mockProvider) Search(ctx context.Context, keyword string, quantity int) (normalizer.Result, error) {
	args := m.Called(ctx, keyword, quantity)
	return args.Get(0).(normalizer.Result), args.Error(1)
}
