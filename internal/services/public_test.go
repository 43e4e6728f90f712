package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/darkred-portfolio/backend/internal/cache"
	"gorm.io/gorm"
)

func TestPublicService_CachesUntilInvalidated(t *testing.T) {
	db := testDB(t)
	mem := cache.NewMemoryCache(time.Minute, time.Minute)
	svc := NewPublicService(db, nil, mem, time.Minute)
	ctx := context.Background()

	site, err := svc.Site(ctx)
	if err != nil {
		t.Fatalf("Site() error = %v", err)
	}
	if site.Profile.FullName != "Your Name" {
		t.Fatalf("FullName = %q", site.Profile.FullName)
	}
	if site.Palette["primary"] == "" {
		t.Error("palette not resolved")
	}

	NewProfileService(db).Update(&UpdateProfileRequest{FullName: "Ada", Headline: "h", Email: "a@example.com", About: "x"})

	site, _ = svc.Site(ctx)
	if site.Profile.FullName != "Your Name" {
		t.Errorf("expected cached profile, got %q", site.Profile.FullName)
	}

	if err := svc.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}
	site, _ = svc.Site(ctx)
	if site.Profile.FullName != "Ada" {
		t.Errorf("FullName after Invalidate() = %q", site.Profile.FullName)
	}
}

func TestPublicService_Pages(t *testing.T) {
	db := testDB(t)
	svc := NewPublicService(db, nil, nil, time.Minute)
	ctx := context.Background()

	featured := newProject("Shiny Thing")
	featured.IsFeatured = true
	NewProjectService(db).Create(featured)
	NewProjectService(db).Create(newProject("Quiet Thing"))

	home, err := svc.Home(ctx)
	if err != nil {
		t.Fatalf("Home() error = %v", err)
	}
	if len(home.Featured) != 1 {
		t.Errorf("Featured = %d, expected 1", len(home.Featured))
	}

	projects, _ := svc.Projects(ctx)
	if len(projects) != 2 {
		t.Errorf("Projects() = %d, expected 2", len(projects))
	}

	p, err := svc.Project(ctx, "shiny-thing")
	if err != nil || p.Title != "Shiny Thing" {
		t.Errorf("Project() = %+v, %v", p, err)
	}
	if _, err := svc.Project(ctx, "missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Project(missing) error = %v", err)
	}

	page, err := svc.Experience(ctx)
	if err != nil {
		t.Fatalf("Experience() error = %v", err)
	}
	if len(page.Experiences) != 0 || len(page.Educations) != 0 {
		t.Errorf("Experience() = %+v", page)
	}
}
