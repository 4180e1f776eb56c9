package entities

import (
	"fmt"
	"slices"
)

const requirementPreviewLength = 100

type Vacancy struct {
	Name        string
	PaymentFrom *int
	PaymentTo   *int
	Town        string
	Requirement string
	Salary      float64
}

func NewVacancy(name string, paymentFrom, paymentTo *int, town, requirement string) Vacancy {
	return Vacancy{
		Name:        name,
		PaymentFrom: paymentFrom,
		PaymentTo:   paymentTo,
		Town:        town,
		Requirement: requirement,
		Salary:      averageSalary(paymentFrom, paymentTo),
	}
}

// averageSalary treats a nil or non-positive bound as absent, so the result is never negative.
func averageSalary(paymentFrom, paymentTo *int) float64 {
	hasFrom, hasTo := isPaymentSet(paymentFrom), isPaymentSet(paymentTo)

	switch {
	case !hasTo && !hasFrom:
		return 0
	case !hasFrom:
		return float64(*paymentTo)
	case !hasTo:
		return float64(*paymentFrom)
	default:
		return (float64(*paymentFrom) + float64(*paymentTo)) / 2
	}
}

func isPaymentSet(payment *int) bool {
	return payment != nil && *payment > 0
}

func (v Vacancy) Less(other Vacancy) bool {
	return v.Salary < other.Salary
}

func (v Vacancy) String() string {
	return fmt.Sprintf("Название вакансии: %s\nСредняя зарплата: %d\nГород: %s\nОписание: %s",
		v.Name, int(v.Salary), v.Town, preview(v.Requirement, requirementPreviewLength))
}

func preview(text string, length int) string {
	runes := []rune(text)
	if len(runes) <= length {
		return text
	}
	return string(runes[:length])
}

// SortBySalary sorts in place, keeping the original order of vacancies with equal salary.
func SortBySalary(vacancies []Vacancy, descending bool) {
	slices.SortStableFunc(vacancies, func(a, b Vacancy) int {
		if descending {
			a, b = b, a
		}
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
}
