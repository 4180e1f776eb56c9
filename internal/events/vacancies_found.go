package events

import "github.com/maxaizer/vacancy-saver/internal/entities"

var VacanciesFoundTopic = "VacanciesFoundEvent"

type VacanciesFound struct {
	Provider entities.Provider
	Keyword  string
	Found    int
	Missing  int
}
