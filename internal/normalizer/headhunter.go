package normalizer

import (
	"github.com/maxaizer/vacancy-saver/internal/clients/hh"
	"github.com/maxaizer/vacancy-saver/internal/entities"
	"github.com/samber/lo"
)

func fromHeadHunter(vacancy hh.Vacancy) (string, entities.Record, bool) {

	record := entities.Record{Name: vacancy.Name}

	if vacancy.Area != nil {
		record.Town = vacancy.Area.Name
	}
	if vacancy.Snippet != nil {
		record.Requirement = lo.FromPtr(vacancy.Snippet.Requirement)
	}

	if vacancy.Salary == nil {
		record.PaymentTo, record.PaymentFrom = lo.ToPtr(0), lo.ToPtr(0)
		return vacancy.ID, record, true
	}

	record.PaymentTo, record.PaymentFrom = vacancy.Salary.To, vacancy.Salary.From
	return vacancy.ID, record, false
}
