package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	apperrors "tour-catalog/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The optional types below record whether a request field was supplied at all.
// They bind from JSON (UnmarshalJSON) and from query/form values (UnmarshalParam).
// JSON null and empty form values count as "not supplied".

// OptionalString is a string field that may be absent.
type OptionalString struct {
	Value string `form:"-"`
	Set   bool   `form:"-"`
}

// Some returns an OptionalString holding v.
func Some(v string) OptionalString {
	return OptionalString{Value: v, Set: true}
}

// Present reports whether the field was supplied with a non-empty value.
func (o OptionalString) Present() bool {
	return o.Set && o.Value != ""
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*o = OptionalString{}
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Set = true
	return nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler.
func (o *OptionalString) UnmarshalParam(param string) error {
	*o = OptionalString{Value: param, Set: param != ""}
	return nil
}

// OptionalBool is a boolean field that may be absent. Unlike strings, an explicit
// false counts as supplied.
type OptionalBool struct {
	Value bool `form:"-"`
	Set   bool `form:"-"`
}

// SomeBool returns an OptionalBool holding v.
func SomeBool(v bool) OptionalBool {
	return OptionalBool{Value: v, Set: true}
}

// UnmarshalJSON implements json.Unmarshaler. Accepts true/false and their string forms.
func (o *OptionalBool) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*o = OptionalBool{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return o.UnmarshalParam(s)
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Set = true
	return nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler.
func (o *OptionalBool) UnmarshalParam(param string) error {
	if param == "" {
		*o = OptionalBool{}
		return nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(param))
	if err != nil {
		return err
	}
	*o = OptionalBool{Value: v, Set: true}
	return nil
}

// OptionalFloat is a numeric field that may be absent.
type OptionalFloat struct {
	Value float64 `form:"-"`
	Set   bool    `form:"-"`
}

// SomeFloat returns an OptionalFloat holding v.
func SomeFloat(v float64) OptionalFloat {
	return OptionalFloat{Value: v, Set: true}
}

// Present reports whether the field was supplied with a non-zero value.
func (o OptionalFloat) Present() bool {
	return o.Set && o.Value != 0
}

// UnmarshalJSON implements json.Unmarshaler. Accepts numbers and numeric strings.
func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*o = OptionalFloat{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return o.UnmarshalParam(s)
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Set = true
	return nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler.
func (o *OptionalFloat) UnmarshalParam(param string) error {
	param = strings.TrimSpace(param)
	if param == "" {
		*o = OptionalFloat{}
		return nil
	}
	v, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return err
	}
	*o = OptionalFloat{Value: v, Set: true}
	return nil
}

// Presence only records that a non-null value was supplied for a field.
type Presence struct {
	Set bool `form:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Presence) UnmarshalJSON(data []byte) error {
	p.Set = !isJSONNull(data)
	return nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler.
func (p *Presence) UnmarshalParam(param string) error {
	p.Set = param != ""
	return nil
}

// PricingDetailList is a list of pricing rows. In multipart forms it arrives as
// a JSON-encoded string; in JSON bodies as an array or such a string.
type PricingDetailList []PricingDetailInput

// UnmarshalJSON implements json.Unmarshaler.
func (l *PricingDetailList) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return l.UnmarshalParam(s)
	}
	var rows []PricingDetailInput
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	*l = rows
	return nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler.
func (l *PricingDetailList) UnmarshalParam(param string) error {
	param = strings.TrimSpace(param)
	if param == "" {
		*l = nil
		return nil
	}
	var rows []PricingDetailInput
	if err := json.Unmarshal([]byte(param), &rows); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidPricingDetails, err)
	}
	*l = rows
	return nil
}

// Records converts the submitted rows into stored pricing details with fresh ids.
func (l PricingDetailList) Records() []PricingDetail {
	records := make([]PricingDetail, 0, len(l))
	for _, row := range l {
		records = append(records, PricingDetail{
			ID:         primitive.NewObjectID(),
			NoOfPax:    row.NoOfPax,
			Cab:        row.Cab,
			CostPerPax: row.CostPerPax,
		})
	}
	return records
}

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
