package ledger

import (
	"reflect"
	"testing"
)

func presentNone(string) bool { return false }

func presentOnly(fields ...string) func(string) bool {
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return func(f string) bool { return set[f] }
}

func TestMissingFieldsKeepsRegistryOrder(t *testing.T) {
	got := MissingFields(EntityUser, presentOnly("password", "email"))
	want := []string{"username", "firstName", "phone"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestMissingFieldsNoneMissing(t *testing.T) {
	if got := MissingFields(EntityBudget, presentOnly("amount", "date")); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestMissingFieldsUnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown entity kind")
		}
	}()
	MissingFields(EntityKind("upload"), presentNone)
}

func TestRequireFieldsMessagePhrasing(t *testing.T) {
	cases := []struct {
		name    string
		kind    EntityKind
		present func(string) bool
		want    string
	}{
		{"single", EntityGroup, presentOnly("name"), "members is missing. Please fill all the mandatory fields"},
		{"multiple", EntityGroup, presentNone, "name,members are missing. Please fill all the mandatory fields"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := RequireFields(tc.kind, tc.present)
			if err == nil {
				t.Fatal("expected error")
			}
			if !IsKind(err, KindValidation) {
				t.Fatalf("expected validation kind, got %v", err)
			}
			if err.Error() != tc.want {
				t.Fatalf("got %q, want %q", err.Error(), tc.want)
			}
		})
	}
	if err := RequireFields(EntityExpense, presentOnly("categoryId", "name", "amount")); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
