package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/darkred-portfolio/backend/internal/config"
	"github.com/darkred-portfolio/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := models.Open(&config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    "file:svc_" + name + "?mode=memory&cache=shared",
	}, logger.Silent)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func expectValidation(t *testing.T, err error, field, reason string) {
	t.Helper()
	ve, ok := models.AsValidationError(err)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if ve.Field != field {
		t.Errorf("Field = %q, expected %q", ve.Field, field)
	}
	if reason != "" && ve.Reason != reason {
		t.Errorf("Reason = %q, expected %q", ve.Reason, reason)
	}
}

func TestProfileService_GetCreatesSingleton(t *testing.T) {
	db := testDB(t)
	svc := NewProfileService(db)

	first, err := svc.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	second, err := svc.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if first.ID != models.ProfileID || second.ID != models.ProfileID {
		t.Errorf("IDs = %d, %d, expected %d", first.ID, second.ID, models.ProfileID)
	}
	if first.FullName != "Your Name" {
		t.Errorf("FullName = %q, expected placeholder", first.FullName)
	}

	var count int64
	db.Model(&models.Profile{}).Count(&count)
	if count != 1 {
		t.Errorf("profile rows = %d, expected 1", count)
	}
}

func TestProfileService_UpdateNormalizesSkills(t *testing.T) {
	svc := NewProfileService(testDB(t))

	profile, err := svc.Update(&UpdateProfileRequest{
		FullName: "Ada Lovelace",
		Headline: "Engineer",
		Email:    "ada@example.com",
		About:    "Hi",
		Skills:   " Go,, SQL ,Docker ",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if profile.SkillList != "Go, SQL, Docker" {
		t.Errorf("SkillList = %q", profile.SkillList)
	}
	if got := profile.Skills(); len(got) != 3 || got[2] != "Docker" {
		t.Errorf("Skills() = %v", got)
	}
}

func TestSiteSettingsService_Singleton(t *testing.T) {
	db := testDB(t)
	svc := NewSiteSettingsService(db, nil)

	for i := 0; i < 2; i++ {
		settings, err := svc.Get()
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if settings.ID != models.SiteSettingsID {
			t.Errorf("ID = %d, expected %d", settings.ID, models.SiteSettingsID)
		}
		if settings.Theme != models.DefaultThemeID {
			t.Errorf("Theme = %q, expected %q", settings.Theme, models.DefaultThemeID)
		}
	}

	var count int64
	db.Model(&models.SiteSettings{}).Count(&count)
	if count != 1 {
		t.Errorf("site_settings rows = %d, expected 1", count)
	}
}

func TestSiteSettingsService_UpdateRejectsUnknownTheme(t *testing.T) {
	svc := NewSiteSettingsService(testDB(t), nil)

	_, err := svc.Update(&UpdateSiteSettingsRequest{SiteTitle: "Site", Theme: "neon"})
	expectValidation(t, err, "theme", "")
}

func TestSiteSettingsService_PaletteOverrides(t *testing.T) {
	svc := NewSiteSettingsService(testDB(t), nil)

	if _, err := svc.Update(&UpdateSiteSettingsRequest{
		SiteTitle:    "Site",
		Theme:        "cyberpunk",
		PrimaryColor: "#ABCDEF",
	}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	palette, err := svc.Palette()
	if err != nil {
		t.Fatalf("Palette() error = %v", err)
	}
	if palette["primary"] != "#abcdef" {
		t.Errorf("primary = %q, expected override", palette["primary"])
	}
	if palette["bg0"] != "#0a0a0a" {
		t.Errorf("bg0 = %q, expected cyberpunk value", palette["bg0"])
	}

	raw := svc.ThemePalette("cyberpunk")
	if raw["primary"] != "#00ff88" {
		t.Errorf("ThemePalette primary = %q, expected unmodified", raw["primary"])
	}
}

func newProject(title string) *ProjectRequest {
	return &ProjectRequest{
		Title:            title,
		ShortDescription: "short",
		TechStack:        "Go, Gin",
	}
}

func TestProjectService_SlugProbing(t *testing.T) {
	svc := NewProjectService(testDB(t))

	expected := []string{"my-project", "my-project-2", "my-project-3"}
	for _, want := range expected {
		p, err := svc.Create(newProject("My Project"))
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if p.Slug != want {
			t.Errorf("Slug = %q, expected %q", p.Slug, want)
		}
	}
}

func TestProjectService_SymbolTitleUsesFallback(t *testing.T) {
	svc := NewProjectService(testDB(t))

	p, err := svc.Create(newProject("???"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p.Slug != "project" {
		t.Errorf("Slug = %q, expected %q", p.Slug, "project")
	}
}

func TestProjectService_ExplicitSlug(t *testing.T) {
	svc := NewProjectService(testDB(t))

	req := newProject("Anything")
	req.Slug = "Custom-Slug"
	p, err := svc.Create(req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p.Slug != "custom-slug" {
		t.Errorf("Slug = %q, expected lowercased", p.Slug)
	}

	dup := newProject("Other")
	dup.Slug = "custom-slug"
	if _, err := svc.Create(dup); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("expected ErrDuplicatedKey, got %v", err)
	}

	bad := newProject("Bad")
	bad.Slug = "not a slug"
	_, err = svc.Create(bad)
	expectValidation(t, err, "slug", models.ReasonInvalidSlug)
}

func TestProjectService_UpdateKeepsOwnSlug(t *testing.T) {
	svc := NewProjectService(testDB(t))

	p, err := svc.Create(newProject("My Project"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	req := newProject("My Project")
	req.LongDescription = "more"
	updated, err := svc.Update(p.ID, req)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Slug != "my-project" {
		t.Errorf("Slug = %q, expected unchanged", updated.Slug)
	}

	found, err := svc.GetBySlug("my-project")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if found.LongDescription != "more" {
		t.Errorf("LongDescription = %q", found.LongDescription)
	}
}

func TestProjectService_FeaturedAndDelete(t *testing.T) {
	svc := NewProjectService(testDB(t))

	featured := newProject("Featured")
	featured.IsFeatured = true
	if _, err := svc.Create(featured); err != nil {
		t.Fatal(err)
	}
	plain, err := svc.Create(newProject("Plain"))
	if err != nil {
		t.Fatal(err)
	}

	list, err := svc.ListFeatured()
	if err != nil {
		t.Fatalf("ListFeatured() error = %v", err)
	}
	if len(list) != 1 || list[0].Slug != "featured" {
		t.Errorf("ListFeatured() = %+v", list)
	}

	if err := svc.Delete(plain.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := svc.Delete(plain.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("second Delete() = %v, expected ErrRecordNotFound", err)
	}
}

func TestExperienceService_Validation(t *testing.T) {
	svc := NewExperienceService(testDB(t))

	tests := []struct {
		name   string
		req    ExperienceRequest
		field  string
		reason string
	}{
		{
			name:   "current with end date",
			req:    ExperienceRequest{Role: "Dev", Organization: "Acme", StartDate: "2020-01-01", EndDate: "2021-01-01", IsCurrent: true},
			field:  "end_date",
			reason: models.ReasonCurrentWithEndDate,
		},
		{
			name:   "end before start",
			req:    ExperienceRequest{Role: "Dev", Organization: "Acme", StartDate: "2021-01-01", EndDate: "2020-01-01"},
			field:  "end_date",
			reason: models.ReasonEndBeforeStart,
		},
		{
			name:  "malformed date",
			req:   ExperienceRequest{Role: "Dev", Organization: "Acme", StartDate: "01/02/2020"},
			field: "start_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(&tt.req)
			expectValidation(t, err, tt.field, tt.reason)
		})
	}
}

func TestExperienceService_CRUD(t *testing.T) {
	svc := NewExperienceService(testDB(t))

	older, err := svc.Create(&ExperienceRequest{Role: "Junior", Organization: "Acme", StartDate: "2018-03-01", EndDate: "2020-02-01"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	current, err := svc.Create(&ExperienceRequest{Role: "Senior", Organization: "Acme", StartDate: "2020-03-01", IsCurrent: true})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	list, err := svc.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 2 || list[0].ID != current.ID {
		t.Errorf("List() order wrong: %+v", list)
	}

	updated, err := svc.Update(older.ID, &ExperienceRequest{Role: "Junior Dev", Organization: "Acme", StartDate: "2018-03-01", EndDate: "2020-02-01"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Role != "Junior Dev" {
		t.Errorf("Role = %q", updated.Role)
	}

	if err := svc.Delete(older.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.GetByID(older.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("GetByID() after delete = %v", err)
	}
}

func TestEducationService_Validation(t *testing.T) {
	svc := NewEducationService(testDB(t))
	end := 2010

	_, err := svc.Create(&EducationRequest{Institution: "MIT", Degree: "BSc", StartYear: 2012, EndYear: &end})
	expectValidation(t, err, "end_year", models.ReasonEndYearBeforeStart)

	ongoing, err := svc.Create(&EducationRequest{Institution: "MIT", Degree: "PhD", StartYear: 2020})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if ongoing.EndYear != nil {
		t.Errorf("EndYear = %v, expected nil", *ongoing.EndYear)
	}
}
