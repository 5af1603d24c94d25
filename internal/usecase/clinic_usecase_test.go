package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/domain/entity"
	"patients-care-api/pkg/paginate"

	"github.com/google/uuid"
)

func clinicRequest(name, city string) *dto.ClinicRequest {
	return &dto.ClinicRequest{
		ClinicName:  name,
		Address:     dto.AddressRequest{Street: "Main 1", City: city, PostalCode: "00-001"},
		PhoneNumber: "123456789",
		WorkingTime: []dto.WorkingTimeRequest{{WeekDay: "monday", StartTime: "08:00", StopTime: "16:00"}},
	}
}

func TestClinicPhotoLifecycle(t *testing.T) {
	clinics := newFakeClinicRepo()
	photos := &fakePhotoStorage{}
	audit := &fakeAuditService{}
	uc := NewClinicUsecase(newTestLogger(), clinics, photos, audit)
	ctx := context.Background()
	actor := entity.Identity{UserID: uuid.New(), Role: entity.RoleDoctor}

	created, err := uc.Create(ctx, actor, clinicRequest("Smith Clinic", "Warsaw"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := uc.RemovePhoto(ctx, actor, created.ID); !errors.Is(err, ErrNoPhoto) {
		t.Errorf("RemovePhoto() without photo error = %v, want %v", err, ErrNoPhoto)
	}

	if err := uc.UploadPhoto(ctx, actor, created.ID, strings.NewReader("png")); err != nil {
		t.Fatalf("UploadPhoto() error = %v", err)
	}
	first, _ := uc.Get(ctx, created.ID)
	if first.Photo == nil {
		t.Fatal("Photo = nil after upload")
	}

	if err := uc.UploadPhoto(ctx, actor, created.ID, strings.NewReader("png")); err != nil {
		t.Fatalf("second UploadPhoto() error = %v", err)
	}
	if len(photos.removed) != 1 || photos.removed[0] != *first.Photo {
		t.Errorf("removed = %v, want the replaced photo %q", photos.removed, *first.Photo)
	}

	if err := uc.Update(ctx, actor, created.ID, clinicRequest("Renamed", "Warsaw")); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	updated, _ := uc.Get(ctx, created.ID)
	if updated.ClinicName != "Renamed" || updated.Photo == nil {
		t.Errorf("after Update() got name %q photo %v, want Renamed with photo kept", updated.ClinicName, updated.Photo)
	}

	if err := uc.Delete(ctx, actor, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(photos.removed) != 2 {
		t.Errorf("removed %d photos, want 2 after delete", len(photos.removed))
	}
	if err := uc.Delete(ctx, actor, created.ID); !errors.Is(err, ErrClinicNotFound) {
		t.Errorf("second Delete() error = %v, want %v", err, ErrClinicNotFound)
	}

	want := []string{
		entity.AuditActionClinicCreate,
		entity.AuditActionClinicUpdate,
		entity.AuditActionClinicUpdate,
		entity.AuditActionClinicUpdate,
		entity.AuditActionClinicDelete,
	}
	actions := audit.actions()
	if strings.Join(actions, ",") != strings.Join(want, ",") {
		t.Errorf("audit actions = %v, want %v", actions, want)
	}
}

func TestClinicList(t *testing.T) {
	clinics := newFakeClinicRepo(
		&entity.Clinic{ID: uuid.New(), ClinicName: "Beta", Address: entity.Address{City: "Krakow"}},
		&entity.Clinic{ID: uuid.New(), ClinicName: "alpha", Address: entity.Address{City: "Warsaw"}},
		&entity.Clinic{ID: uuid.New(), ClinicName: "Gamma", Address: entity.Address{City: "Gdansk"}},
	)
	uc := NewClinicUsecase(newTestLogger(), clinics, &fakePhotoStorage{}, &fakeAuditService{})

	tests := []struct {
		name      string
		query     paginate.Query
		wantNames []string
		wantPages int
	}{
		{
			name:      "sort by name ascending ignores case",
			query:     paginate.Query{SortBy: "clinicName", PageSize: 10, Page: 1},
			wantNames: []string{"alpha", "Beta", "Gamma"},
			wantPages: 1,
		},
		{
			name:      "sort by city descending",
			query:     paginate.Query{SortBy: "city", Direction: paginate.Desc, PageSize: 10, Page: 1},
			wantNames: []string{"alpha", "Beta", "Gamma"},
			wantPages: 1,
		},
		{
			name:      "search matches city prefix",
			query:     paginate.Query{Search: "war", PageSize: 10, Page: 1},
			wantNames: []string{"alpha"},
			wantPages: 1,
		},
		{
			name:      "second page",
			query:     paginate.Query{SortBy: "clinicName", PageSize: 2, Page: 2},
			wantNames: []string{"Gamma"},
			wantPages: 2,
		},
		{
			name:      "page out of range",
			query:     paginate.Query{SortBy: "clinicName", PageSize: 2, Page: 5},
			wantNames: []string{},
			wantPages: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.List(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			names := make([]string, 0, len(got.Data))
			for _, c := range got.Data {
				names = append(names, c.ClinicName)
			}
			if strings.Join(names, ",") != strings.Join(tt.wantNames, ",") {
				t.Errorf("names = %v, want %v", names, tt.wantNames)
			}
			if got.NumOfPages != tt.wantPages {
				t.Errorf("NumOfPages = %d, want %d", got.NumOfPages, tt.wantPages)
			}
		})
	}
}
