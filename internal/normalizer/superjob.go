package normalizer

import (
	"github.com/maxaizer/vacancy-saver/internal/clients/superjob"
	"github.com/maxaizer/vacancy-saver/internal/entities"
	"github.com/samber/lo"
)

func fromSuperJob(vacancy superjob.Vacancy) (string, entities.Record, bool) {

	record := entities.Record{
		Name:        vacancy.Profession,
		Requirement: lo.FromPtr(vacancy.Candidat),
	}

	if vacancy.Town != nil {
		record.Town = vacancy.Town.Title
	}

	if vacancy.PaymentFrom == nil && vacancy.PaymentTo == nil {
		record.PaymentTo, record.PaymentFrom = lo.ToPtr(0), lo.ToPtr(0)
		return vacancy.Identifier(), record, true
	}

	record.PaymentTo, record.PaymentFrom = vacancy.PaymentTo, vacancy.PaymentFrom
	return vacancy.Identifier(), record, false
}
