package repositories

import (
	"testing"

	"github.com/maxaizer/vacancy-saver/internal/entities"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Document_Set_KeepsPositionOnOverwrite(t *testing.T) {
	doc := newDocument()
	doc.Set("b", entities.Record{Name: "first"})
	doc.Set("a", entities.Record{Name: "second"})
	doc.Set("b", entities.Record{Name: "replaced"})

	assert.Equal(t, []string{"b", "a"}, doc.keys)
	assert.Equal(t, "replaced", doc.Records()[0].Name)
}

func Test_Document_MarshalIndent_MatchesStoredFormat(t *testing.T) {
	doc := newDocument()
	doc.Set("42", entities.Record{
		Name:        "Разработчик <Go> & DevOps",
		PaymentTo:   lo.ToPtr(2000),
		PaymentFrom: nil,
		Town:        "Москва",
		Requirement: "",
	})

	data, err := doc.MarshalIndent()
	require.NoError(t, err)

	expected := `{
  "42": {
    "name": "Разработчик <Go> & DevOps",
    "payment_to": 2000,
    "payment_from": null,
    "town": "Москва",
    "requirement": ""
  }
}`
	assert.Equal(t, expected, string(data))
}

func Test_Document_MarshalIndent_Empty(t *testing.T) {
	data, err := newDocument().MarshalIndent()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func Test_Document_Unmarshal_PreservesOrder(t *testing.T) {
	data := `{"z": {"name": "last"}, "a": {"name": "first", "payment_from": "100"}, "m": {"name": "mid"}}`

	doc := newDocument()
	require.NoError(t, doc.UnmarshalJSON([]byte(data)))

	assert.Equal(t, []string{"z", "a", "m"}, doc.keys)
	record, ok := doc.Get("a")
	require.True(t, ok)
	assert.Equal(t, lo.ToPtr(100), record.PaymentFrom)
}

func Test_Document_Unmarshal_Malformed_ShouldFail(t *testing.T) {
	for _, data := range []string{``, `[]`, `{"a": {"name": "x"}`, `{"a": {}} trailing`, `{"a": 5}`} {
		doc := newDocument()
		assert.Error(t, doc.UnmarshalJSON([]byte(data)), data)
	}
}

func Test_Document_Unmarshal_TrailingDelimiters_ShouldFail(t *testing.T) {
	for _, data := range []string{`{"a": {"name": "x"}}}`, `{"a": {"name": "x"}}]`, `{}}}`} {
		doc := newDocument()
		assert.ErrorIs(t, doc.UnmarshalJSON([]byte(data)), ErrMalformedDocument, data)
	}
}

func Test_Document_RemoveWhere(t *testing.T) {
	doc := newDocument()
	doc.Set("1", entities.Record{Name: "x"})
	doc.Set("2", entities.Record{Name: "y"})
	doc.Set("3", entities.Record{Name: "x"})

	removed := doc.RemoveWhere(func(r entities.Record) bool { return r.Name == "x" })

	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"2"}, doc.keys)
	assert.Equal(t, 1, doc.Len())
}
