package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/validation"
)

// MaxCollectionRecords bounds each collection so that one bulk insertion
// stays well below PostgreSQL's 65535 bind parameter limit.
const MaxCollectionRecords = 100

const skillTag = "required,max=50,no_emoji"

// decodeArray splits raw into its elements. The field must be present and
// hold a JSON array; "[]" clears the collection.
func decodeArray(field, raw string) ([]json.RawMessage, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, apperror.Invalid(field, "is required (send [] to clear it)")
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		return nil, apperror.Invalid(field, "must be a JSON array")
	}
	if len(items) > MaxCollectionRecords {
		return nil, apperror.Invalid(field, fmt.Sprintf("must have at most %d items", MaxCollectionRecords))
	}
	return items, nil
}

// decodeRecords decodes and validates a JSON array of objects.
func decodeRecords[T any](field, raw string) ([]T, error) {
	items, err := decodeArray(field, raw)
	if err != nil {
		return nil, err
	}

	records := make([]T, len(items))
	for i, item := range items {
		dec := json.NewDecoder(bytes.NewReader(item))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&records[i]); err != nil {
			return nil, apperror.InvalidItem(field, i, "", "must be an object with the expected attributes")
		}
		if err := validation.Validator().Struct(records[i]); err != nil {
			return nil, validation.ItemError(field, i, err)
		}
	}
	return records, nil
}

// decodeStrings decodes a JSON array of strings, validating each with tag.
func decodeStrings(field, raw, tag string) ([]string, error) {
	items, err := decodeArray(field, raw)
	if err != nil {
		return nil, err
	}

	values := make([]string, len(items))
	for i, item := range items {
		if err := json.Unmarshal(item, &values[i]); err != nil {
			return nil, apperror.InvalidItem(field, i, "", "must be a string")
		}
		values[i] = strings.TrimSpace(values[i])
		if err := validation.Validator().Var(values[i], tag); err != nil {
			return nil, validation.ItemError(field, i, err)
		}
	}
	return values, nil
}

// validateSkills checks an already decoded skill list.
func validateSkills(field string, skills []string) error {
	if len(skills) > MaxCollectionRecords {
		return apperror.Invalid(field, fmt.Sprintf("must have at most %d items", MaxCollectionRecords))
	}
	for i, s := range skills {
		if err := validation.Validator().Var(s, skillTag); err != nil {
			return validation.ItemError(field, i, err)
		}
	}
	return nil
}

// checkPeriod rejects an end date before the start date. ISO dates compare
// correctly as strings.
func checkPeriod(field string, index int, start, end string) error {
	if end != "" && end < start {
		return apperror.InvalidItem(field, index, "end_date", "must not be before start_date")
	}
	return nil
}

func decodeExperience(raw string) ([]domain.ExperienceRecord, error) {
	records, err := decodeRecords[domain.ExperienceRecord]("experience", raw)
	if err != nil {
		return nil, err
	}
	for i, r := range records {
		if err := checkPeriod("experience", i, r.StartDate, r.EndDate); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func decodeEducation(raw string) ([]domain.EducationRecord, error) {
	records, err := decodeRecords[domain.EducationRecord]("education", raw)
	if err != nil {
		return nil, err
	}
	for i, r := range records {
		if err := checkPeriod("education", i, r.StartDate, r.EndDate); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func decodeContactLinks(raw string) ([]domain.ContactLink, error) {
	return decodeRecords[domain.ContactLink]("contact_links", raw)
}

func decodeSkills(raw string) ([]string, error) {
	return decodeStrings("skills", raw, skillTag)
}

// checkField validates one scalar form value against tag.
func checkField(field, value, tag string) error {
	if err := validation.Validator().Var(value, tag); err != nil {
		return validation.FieldError(field, err)
	}
	return nil
}
