package superjob

import "strconv"

// Vacancy is an item of the "objects" array of /2.0/vacancies/. Salary bounds are flat
// fields, either may be null.
type Vacancy struct {
	ID          int     `json:"id"`
	Profession  string  `json:"profession"`
	PaymentFrom *int    `json:"payment_from"`
	PaymentTo   *int    `json:"payment_to"`
	Currency    string  `json:"currency"`
	Town        *Town   `json:"town"`
	Candidat    *string `json:"candidat"`
	Link        string  `json:"link"`
}

type Town struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func (v Vacancy) Identifier() string {
	return strconv.Itoa(v.ID)
}
