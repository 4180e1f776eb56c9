package entities

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownProvider = errors.New("unknown provider")

type Provider string

const (
	HeadHunter Provider = "hh"
	SuperJob   Provider = "superjob"
)

func (p Provider) Title() string {
	switch p {
	case HeadHunter:
		return "HeadHunter"
	case SuperJob:
		return "SuperJob"
	default:
		return string(p)
	}
}

// ProviderFrom accepts both names and the menu numbers ("1" for HeadHunter, "2" for SuperJob).
func ProviderFrom(value string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "hh", "headhunter":
		return HeadHunter, nil
	case "2", "sj", "superjob":
		return SuperJob, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, value)
	}
}
