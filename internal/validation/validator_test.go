// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package validation

import (
	"strings"
	"testing"
)

type redeemPayload struct {
	Amount      int    `validate:"min=0"`
	Description string `validate:"max=10"`
}

type onboardingPayload struct {
	Answers map[string]int `validate:"required,min=1"`
}

func TestValidateStructPasses(t *testing.T) {
	t.Parallel()

	if err := ValidateStruct(&redeemPayload{Amount: 100, Description: "tree"}); err != nil {
		t.Errorf("ValidateStruct() = %v, want nil", err)
	}
}

func TestValidateStructSingleError(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&redeemPayload{Amount: -5})
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	if len(err.Errors()) != 1 {
		t.Fatalf("Errors() = %d entries, want 1", len(err.Errors()))
	}

	fe := err.Errors()[0]
	if fe.Field() != "Amount" {
		t.Errorf("Field() = %q, want Amount", fe.Field())
	}
	if fe.Tag() != "min" {
		t.Errorf("Tag() = %q, want min", fe.Tag())
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "at least 0") {
		t.Errorf("Message = %q, want min translation", apiErr.Message)
	}
	if apiErr.Details["field"] != "Amount" {
		t.Errorf("Details[field] = %v, want Amount", apiErr.Details["field"])
	}
}

func TestValidateStructMultipleErrors(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&redeemPayload{Amount: -1, Description: "far too long description"})
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("Errors() = %d entries, want 2", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details[fields] has type %T", apiErr.Details["fields"])
	}
	if len(fields) != 2 {
		t.Errorf("fields = %d entries, want 2", len(fields))
	}
	if !strings.Contains(err.Error(), ";") {
		t.Errorf("Error() = %q, want combined message", err.Error())
	}
}

func TestValidateStructRequiredMap(t *testing.T) {
	t.Parallel()

	if err := ValidateStruct(&onboardingPayload{}); err == nil {
		t.Error("ValidateStruct() passed with nil answers map")
	}
	if err := ValidateStruct(&onboardingPayload{Answers: map[string]int{}}); err == nil {
		t.Error("ValidateStruct() passed with empty answers map")
	}
	if err := ValidateStruct(&onboardingPayload{Answers: map[string]int{"1": 1}}); err != nil {
		t.Errorf("ValidateStruct() = %v, want nil", err)
	}
}

func TestStringMaxTranslation(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&redeemPayload{Description: "this is way past ten"})
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	if !strings.Contains(err.Error(), "at most 10 characters") {
		t.Errorf("Error() = %q, want string-specific max message", err.Error())
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("GetValidator() returned different instances")
	}
}
