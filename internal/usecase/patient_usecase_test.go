package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"patients-care-api/internal/domain/entity"
	"patients-care-api/pkg/paginate"

	"github.com/google/uuid"
)

func TestPatientList(t *testing.T) {
	patients := newFakePatientRepo()
	for _, p := range []entity.Patient{
		{Name: "Ewa", Surname: "Lis", Email: "ewa@example.com", PhoneNumber: "500100200"},
		{Name: "adam", Surname: "Zajac", Email: "adam@example.com", PhoneNumber: "600100200"},
		{Name: "Marta", Surname: "Bak", Email: "marta@example.com", PhoneNumber: "700100200"},
	} {
		p := p
		if err := patients.Create(context.Background(), &p); err != nil {
			t.Fatal(err)
		}
	}
	uc := NewPatientUsecase(newTestLogger(), patients)

	tests := []struct {
		name      string
		query     paginate.Query
		want      []string
		wantTotal int
		wantPages int
	}{
		{
			name:      "sort by name ignores case",
			query:     paginate.Query{SortBy: "name", PageSize: 10, Page: 1},
			want:      []string{"adam", "Ewa", "Marta"},
			wantTotal: 3,
			wantPages: 1,
		},
		{
			name:      "sort by surname descending",
			query:     paginate.Query{SortBy: "surname", Direction: paginate.Desc, PageSize: 10, Page: 1},
			want:      []string{"adam", "Ewa", "Marta"},
			wantTotal: 3,
			wantPages: 1,
		},
		{
			name:      "search full name prefix",
			query:     paginate.Query{Search: "ewa l", PageSize: 10, Page: 1},
			want:      []string{"Ewa"},
			wantTotal: 1,
			wantPages: 1,
		},
		{
			name:      "search email prefix",
			query:     paginate.Query{Search: "MARTA@", PageSize: 10, Page: 1},
			want:      []string{"Marta"},
			wantTotal: 1,
			wantPages: 1,
		},
		{
			name:      "search phone prefix",
			query:     paginate.Query{Search: "600", PageSize: 10, Page: 1},
			want:      []string{"adam"},
			wantTotal: 1,
			wantPages: 1,
		},
		{
			name:      "second page",
			query:     paginate.Query{SortBy: "name", PageSize: 2, Page: 2},
			want:      []string{"Marta"},
			wantTotal: 3,
			wantPages: 2,
		},
		{
			name:      "no match",
			query:     paginate.Query{Search: "zz", PageSize: 10, Page: 1},
			want:      []string{},
			wantTotal: 0,
			wantPages: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.List(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			names := make([]string, 0, len(got.Data))
			for _, p := range got.Data {
				names = append(names, p.Name)
			}
			if strings.Join(names, ",") != strings.Join(tt.want, ",") {
				t.Errorf("names = %v, want %v", names, tt.want)
			}
			if got.TotalItems != tt.wantTotal {
				t.Errorf("TotalItems = %d, want %d", got.TotalItems, tt.wantTotal)
			}
			if got.NumOfPages != tt.wantPages {
				t.Errorf("NumOfPages = %d, want %d", got.NumOfPages, tt.wantPages)
			}
		})
	}
}

func TestPatientGet(t *testing.T) {
	patients := newFakePatientRepo()
	p := &entity.Patient{Name: "Ewa", Surname: "Lis", Email: "ewa@example.com"}
	if err := patients.Create(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	uc := NewPatientUsecase(newTestLogger(), patients)

	got, err := uc.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != p.ID || got.Email != "ewa@example.com" {
		t.Errorf("Get() = %+v, want patient %s", got, p.ID)
	}

	if _, err := uc.Get(context.Background(), uuid.New()); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("Get() unknown error = %v, want %v", err, ErrPatientNotFound)
	}
}
