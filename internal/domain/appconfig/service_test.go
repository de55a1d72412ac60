package appconfig

import (
	"context"
	"testing"
	"time"
)

type mockConfigRepo struct {
	cfg      *AppConfig
	getCalls int
}

func (m *mockConfigRepo) Get(ctx context.Context) (*AppConfig, error) {
	m.getCalls++
	cp := *m.cfg
	return &cp, nil
}

func (m *mockConfigRepo) Save(ctx context.Context, cfg *AppConfig) error {
	cp := *cfg
	m.cfg = &cp
	return nil
}

func TestGetConfigServesFromCache(t *testing.T) {
	repo := &mockConfigRepo{cfg: &AppConfig{ClinicName: "Green Clinic"}}
	svc := NewService(repo, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		cfg, err := svc.GetConfig(ctx)
		if err != nil {
			t.Fatalf("GetConfig() error = %v", err)
		}
		if cfg.ClinicName != "Green Clinic" {
			t.Errorf("clinic name = %q", cfg.ClinicName)
		}
	}
	if repo.getCalls != 1 {
		t.Errorf("repository hit %d times for 3 reads, want 1", repo.getCalls)
	}
}

func TestUpdateConfigEvictsCache(t *testing.T) {
	repo := &mockConfigRepo{cfg: &AppConfig{ClinicName: "Green Clinic"}}
	svc := NewService(repo, time.Minute)
	ctx := context.Background()

	if _, err := svc.GetConfig(ctx); err != nil {
		t.Fatal(err)
	}

	if err := svc.UpdateConfig(ctx, &AppConfig{ClinicName: "Blue Clinic", AppointmentFee: 500}); err != nil {
		t.Fatalf("UpdateConfig() error = %v", err)
	}

	cfg, err := svc.GetConfig(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ClinicName != "Blue Clinic" {
		t.Errorf("clinic name after update = %q, want the new value", cfg.ClinicName)
	}
	if repo.getCalls != 2 {
		t.Errorf("repository hit %d times, want 2 (cache evicted on update)", repo.getCalls)
	}
}

func TestUpdateConfigValidation(t *testing.T) {
	svc := NewService(&mockConfigRepo{cfg: &AppConfig{}}, time.Minute)
	ctx := context.Background()

	if err := svc.UpdateConfig(ctx, &AppConfig{ClinicName: "  "}); err == nil {
		t.Error("blank clinic name should be rejected")
	}
	if err := svc.UpdateConfig(ctx, &AppConfig{ClinicName: "Clinic", AppointmentFee: -1}); err == nil {
		t.Error("negative fee should be rejected")
	}
}
