package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var ErrInvalidPayment = errors.New("invalid payment value")

var validate = validator.New()

// Record is the stored shape of a vacancy, keyed by the provider identifier in a Batch.
type Record struct {
	Name        string `json:"name"`
	PaymentTo   *int   `json:"payment_to" validate:"omitempty,gte=0"`
	PaymentFrom *int   `json:"payment_from" validate:"omitempty,gte=0"`
	Town        string `json:"town"`
	Requirement string `json:"requirement"`
}

type Batch map[string]Record

func (r Record) Validate() error {
	return validate.Struct(r)
}

func (r Record) Vacancy() Vacancy {
	return NewVacancy(r.Name, r.PaymentFrom, r.PaymentTo, r.Town, r.Requirement)
}

func (r *Record) UnmarshalJSON(data []byte) error {
	type alias Record
	aux := struct {
		*alias
		PaymentTo   json.RawMessage `json:"payment_to"`
		PaymentFrom json.RawMessage `json:"payment_from"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var err error
	if r.PaymentTo, err = parsePayment(aux.PaymentTo); err != nil {
		return fmt.Errorf("payment_to: %w", err)
	}
	if r.PaymentFrom, err = parsePayment(aux.PaymentFrom); err != nil {
		return fmt.Errorf("payment_from: %w", err)
	}
	return nil
}

// parsePayment accepts a JSON number, a string holding an integer or null.
func parsePayment(raw json.RawMessage) (*int, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, errors.Wrap(ErrInvalidPayment, err.Error())
	}

	switch typed := value.(type) {
	case json.Number:
		if n, err := typed.Int64(); err == nil {
			payment := int(n)
			return &payment, nil
		}
		f, err := typed.Float64()
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidPayment, "%s", typed)
		}
		payment := int(f)
		return &payment, nil
	case string:
		payment, err := strconv.Atoi(strings.TrimSpace(typed))
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidPayment, "%q", typed)
		}
		return &payment, nil
	default:
		return nil, errors.Wrapf(ErrInvalidPayment, "%s", string(raw))
	}
}
