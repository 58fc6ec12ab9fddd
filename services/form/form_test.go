package form

import (
	"testing"

	"jojocolaresbeauty/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servicesWithFields(fields ...models.FormField) []models.Service {
	return []models.Service{{ID: "svc-1", Name: "Penteado", FormFields: fields}}
}

func TestValidate_RequiredMissing(t *testing.T) {
	svcs := servicesWithFields(models.FormField{
		ID: "hair_type", Label: "Tipo de cabelo", Kind: models.FieldText, Required: true,
	})

	errs := Validate(svcs, map[string]string{})
	require.Len(t, errs, 1)
	assert.Equal(t, "hair_type", errs[0].FieldID)

	errs = Validate(svcs, map[string]string{"hair_type": ""})
	require.Len(t, errs, 1)
}

func TestValidate_OptionalMayBeEmpty(t *testing.T) {
	svcs := servicesWithFields(models.FormField{
		ID: "notes", Label: "Observações", Kind: models.FieldTextarea,
	})

	assert.Empty(t, Validate(svcs, map[string]string{}))
	assert.Empty(t, Validate(svcs, map[string]string{"notes": "chegar 10min antes"}))
}

func TestValidate_SelectOptions(t *testing.T) {
	svcs := servicesWithFields(models.FormField{
		ID: "length", Label: "Comprimento", Kind: models.FieldSelect,
		Options: []string{"curto", "medio", "longo"}, Required: true,
	})

	assert.Empty(t, Validate(svcs, map[string]string{"length": "medio"}))

	errs := Validate(svcs, map[string]string{"length": "gigante"})
	require.Len(t, errs, 1)
	assert.Equal(t, "length", errs[0].FieldID)
}

func TestValidate_UnknownField(t *testing.T) {
	svcs := servicesWithFields()

	errs := Validate(svcs, map[string]string{"surprise": "x"})
	require.Len(t, errs, 1)
	assert.Equal(t, "surprise", errs[0].FieldID)
	assert.Equal(t, "unknown field", errs[0].Message)
}

func TestValidate_FieldsAcrossServices(t *testing.T) {
	svcs := []models.Service{
		{ID: "a", FormFields: []models.FormField{{ID: "f1", Label: "F1", Kind: models.FieldText, Required: true}}},
		{ID: "b", FormFields: []models.FormField{{ID: "f2", Label: "F2", Kind: models.FieldText}}},
	}

	errs := Validate(svcs, map[string]string{"f2": "ok"})
	require.Len(t, errs, 1)
	assert.Equal(t, "f1", errs[0].FieldID)
}
