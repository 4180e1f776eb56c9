package hh

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

const MaxPerPage = 100

var ErrTooDeepPagination = errors.New("too deep pagination")

type SearchParameters struct {
	Text    string
	Page    int
	PerPage int
}

func (s SearchParameters) Validate() error {

	if s.Page < 0 {
		return fmt.Errorf("page must be non-negative")
	}

	if s.PerPage <= 0 || s.PerPage > MaxPerPage {
		return fmt.Errorf("per page must be between 1 and %d", MaxPerPage)
	}

	maxResults := 2000
	if (s.Page+1)*s.PerPage > maxResults {
		return ErrTooDeepPagination
	}

	return nil
}

func (s SearchParameters) ToUrlParams() url.Values {

	params := url.Values{}
	params.Add("text", s.Text)
	params.Add("currency", "RUR")
	params.Add("host", "hh.ru")
	params.Add("page", strconv.Itoa(s.Page))
	params.Add("per_page", strconv.Itoa(s.PerPage))

	return params
}
