package entity

import (
	"testing"
	"time"
)

func TestAnimal_Age(t *testing.T) {
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		daysAgo  int
		expected string
	}{
		{"born today", 0, "0 day(s)"},
		{"one day old", 1, "1 day(s)"},
		{"last day of the days bucket", 29, "29 day(s)"},
		{"first day of the months bucket", 30, "1 month(s)"},
		{"mid months bucket", 95, "3 month(s)"},
		{"last day of the months bucket", 364, "12 month(s)"},
		{"first day of the years bucket", 365, "1 year(s)"},
		{"two years by truncation", 800, "2 year(s)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			birth := today.AddDate(0, 0, -tc.daysAgo)
			animal := NewAnimal("T001", "Saanen", SexDoe)
			animal.BirthDate = &birth

			age := animal.Age(today)
			if age == nil {
				t.Fatal("expected non-nil age")
			}
			if *age != tc.expected {
				t.Errorf("expected age %q, got %q", tc.expected, *age)
			}
		})
	}

	t.Run("no birth date", func(t *testing.T) {
		animal := NewAnimal("T002", "Boer", SexBuck)
		if animal.Age(today) != nil {
			t.Error("expected nil age without a birth date")
		}
	})
}

func TestParseAnimalStatus(t *testing.T) {
	cases := []struct {
		raw      string
		expected AnimalStatus
		ok       bool
	}{
		{"Active", AnimalStatusActive, true},
		{"active", AnimalStatusActive, true},
		{"SOLD", AnimalStatusSold, true},
		{"  deceased ", AnimalStatusDeceased, true},
		{"archived", AnimalStatusArchived, true},
		{"retired", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		status, ok := ParseAnimalStatus(tc.raw)
		if ok != tc.ok || status != tc.expected {
			t.Errorf("ParseAnimalStatus(%q) = (%q, %v), expected (%q, %v)", tc.raw, status, ok, tc.expected, tc.ok)
		}
	}
}

func TestParseSex(t *testing.T) {
	cases := []struct {
		raw      string
		expected Sex
		ok       bool
	}{
		{"Doe", SexDoe, true},
		{"female", SexDoe, true},
		{"BUCK", SexBuck, true},
		{"male", SexBuck, true},
		{"unknown", "", false},
	}

	for _, tc := range cases {
		sex, ok := ParseSex(tc.raw)
		if ok != tc.ok || sex != tc.expected {
			t.Errorf("ParseSex(%q) = (%q, %v), expected (%q, %v)", tc.raw, sex, ok, tc.expected, tc.ok)
		}
	}
}
