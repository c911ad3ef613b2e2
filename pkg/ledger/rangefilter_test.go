package ledger

import (
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func intp(n int) *int { return &n }

func TestBuildRangeFilterNoParams(t *testing.T) {
	scope := ForUser(uuid.New())
	f, err := BuildRangeFilter(scope, RangeInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.kind != rangeNone {
		t.Fatalf("expected no date restriction, got kind %d", f.kind)
	}
}

func TestBuildRangeFilterPartialInputNamesFirstMissing(t *testing.T) {
	cases := []struct {
		name    string
		in      RangeInput
		missing string
	}{
		{"all but startMonth", RangeInput{StartYear: intp(2024), EndMonth: intp(3), EndYear: intp(2024)}, "startMonth"},
		{"only endYear", RangeInput{EndYear: intp(2024)}, "startMonth"},
		{"missing startYear", RangeInput{StartMonth: intp(1), EndMonth: intp(3), EndYear: intp(2024)}, "startYear"},
		{"only start pair", RangeInput{StartMonth: intp(1), StartYear: intp(2024)}, "endMonth"},
		{"missing endYear", RangeInput{StartMonth: intp(1), StartYear: intp(2024), EndMonth: intp(3)}, "endYear"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildRangeFilter(ForUser(uuid.New()), tc.in)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !IsKind(err, KindValidation) {
				t.Fatalf("expected validation kind, got %v", err)
			}
			if !strings.HasPrefix(err.Error(), tc.missing+" is missing") {
				t.Fatalf("error %q does not name %q", err.Error(), tc.missing)
			}
		})
	}
}

func TestBuildRangeFilterSameYear(t *testing.T) {
	f, err := BuildRangeFilter(ForUser(uuid.New()), RangeInput{
		StartMonth: intp(2), StartYear: intp(2024),
		EndMonth: intp(11), EndYear: intp(2024),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.kind != rangeSameYear {
		t.Fatalf("expected same-year kind, got %d", f.kind)
	}
}

func TestBuildRangeFilterSameYearStartAfterEnd(t *testing.T) {
	_, err := BuildRangeFilter(ForUser(uuid.New()), RangeInput{
		StartMonth: intp(3), StartYear: intp(2024),
		EndMonth: intp(1), EndYear: intp(2024),
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !IsKind(err, KindValidation) {
		t.Fatalf("expected validation kind, got %v", err)
	}
}

func TestBuildRangeFilterCrossYearBoundaryForm(t *testing.T) {
	f, err := BuildRangeFilter(ForGroup(uuid.New()), RangeInput{
		StartMonth: intp(11), StartYear: intp(2022),
		EndMonth: intp(2), EndYear: intp(2024),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.kind != rangeYearSpan {
		t.Fatalf("expected year-span kind, got %d", f.kind)
	}
	if f.startYear != 2022 || f.endYear != 2024 || f.startMonth != 11 || f.endMonth != 2 {
		t.Fatalf("unexpected bounds: %+v", f)
	}
}

// startYear > endYear historically resolves to no restriction at all.
func TestBuildRangeFilterStartYearAfterEndYearIsNoop(t *testing.T) {
	f, err := BuildRangeFilter(ForUser(uuid.New()), RangeInput{
		StartMonth: intp(1), StartYear: intp(2025),
		EndMonth: intp(12), EndYear: intp(2024),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.kind != rangeNone {
		t.Fatalf("expected no restriction, got kind %d", f.kind)
	}
}

func TestBuildRangeFilterIsDeterministic(t *testing.T) {
	scope := ForUser(uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	in := RangeInput{
		StartMonth: intp(4), StartYear: intp(2023),
		EndMonth: intp(9), EndYear: intp(2024),
	}
	a, err := BuildRangeFilter(scope, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := BuildRangeFilter(scope, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs produced different filters: %+v vs %+v", a, b)
	}
}
