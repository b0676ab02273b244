package prospect

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/leadscout/linkedin-mcp/internal/errors"
	"github.com/leadscout/linkedin-mcp/internal/linkedin"
)

func TestGenerateLeadRecommendations(t *testing.T) {
	fake := &fakeAPI{
		companies: []linkedin.Company{
			{ID: "1", Name: "SmallCo", StaffCount: 20, Industries: []string{"IT Services"}},
			{ID: "2", Name: "BigCo", StaffCount: 5000, Industries: []string{"IT Services"}},
		},
		updates: map[string][]linkedin.Update{
			"1": {{Text: "Our new Kubernetes platform is live"}},
		},
	}
	svc := NewService(fake)

	leads, err := svc.GenerateLeadRecommendations(context.Background(), LeadRecommendationsParams{
		CompanySize:  "small",
		Technologies: []string{"Kubernetes"},
		Limit:        5,
	})
	if err != nil {
		t.Fatalf("GenerateLeadRecommendations() failed: %v", err)
	}

	if len(leads) != 1 {
		t.Fatalf("got %d leads, want 1 (size class filters BigCo)", len(leads))
	}
	lead := leads[0]
	if lead.CompanyName != "SmallCo" {
		t.Errorf("CompanyName = %q", lead.CompanyName)
	}
	if !strings.HasPrefix(lead.TechnologyFit, "High") {
		t.Errorf("TechnologyFit = %q, want High on an update mention", lead.TechnologyFit)
	}

	// The industry default seeds the company search.
	if fake.companiesCalls[0].Keywords != "Information Technology" {
		t.Errorf("search keywords = %q, want the default industry", fake.companiesCalls[0].Keywords)
	}
	if fake.companiesCalls[0].Limit != 10 {
		t.Errorf("search limit = %d, want limit*2", fake.companiesCalls[0].Limit)
	}
}

func TestGenerateLeadRecommendations_FitGrades(t *testing.T) {
	t.Run("medium on job postings", func(t *testing.T) {
		fake := &fakeAPI{
			companies: []linkedin.Company{{ID: "1", Name: "Acme", StaffCount: 100}},
			jobs:      []linkedin.Job{{ID: "555", Title: "K8s Engineer"}},
		}
		svc := NewService(fake)

		leads, err := svc.GenerateLeadRecommendations(context.Background(), LeadRecommendationsParams{
			Technologies: []string{"Kubernetes"},
		})
		if err != nil {
			t.Fatalf("GenerateLeadRecommendations() failed: %v", err)
		}
		if !strings.HasPrefix(leads[0].TechnologyFit, "Medium") {
			t.Errorf("TechnologyFit = %q, want Medium", leads[0].TechnologyFit)
		}
	})

	t.Run("low without signals", func(t *testing.T) {
		fake := &fakeAPI{
			companies: []linkedin.Company{{ID: "1", Name: "Acme", StaffCount: 100}},
		}
		svc := NewService(fake)

		leads, err := svc.GenerateLeadRecommendations(context.Background(), LeadRecommendationsParams{
			Technologies: []string{"Kubernetes"},
		})
		if err != nil {
			t.Fatalf("GenerateLeadRecommendations() failed: %v", err)
		}
		if !strings.HasPrefix(leads[0].TechnologyFit, "Low") {
			t.Errorf("TechnologyFit = %q, want Low", leads[0].TechnologyFit)
		}
	})

	t.Run("unknown without technologies", func(t *testing.T) {
		fake := &fakeAPI{
			companies: []linkedin.Company{{ID: "1", Name: "Acme", StaffCount: 100}},
		}
		svc := NewService(fake)

		leads, err := svc.GenerateLeadRecommendations(context.Background(), LeadRecommendationsParams{})
		if err != nil {
			t.Fatalf("GenerateLeadRecommendations() failed: %v", err)
		}
		if leads[0].TechnologyFit != "Unknown" {
			t.Errorf("TechnologyFit = %q, want Unknown", leads[0].TechnologyFit)
		}
	})
}

func TestFilterBySizeClass(t *testing.T) {
	companies := []linkedin.Company{
		{Name: "Tiny", StaffCount: 5},
		{Name: "Mid", StaffCount: 200},
		{Name: "Huge", StaffCount: 10000},
	}

	tests := []struct {
		class string
		want  string
	}{
		{"small", "Tiny"},
		{"medium", "Mid"},
		{"large", "Huge"},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			got := filterBySizeClass(companies, tt.class)
			if len(got) != 1 || got[0].Name != tt.want {
				t.Errorf("filterBySizeClass(%q) = %+v, want only %s", tt.class, got, tt.want)
			}
		})
	}

	t.Run("unknown class keeps all", func(t *testing.T) {
		if got := filterBySizeClass(companies, "enormous"); len(got) != 3 {
			t.Errorf("got %d companies, want all 3", len(got))
		}
	})
}

func TestIdentifyTargetAccounts(t *testing.T) {
	longDescription := strings.Repeat("We build cloud software. ", 20)
	fake := &fakeAPI{
		companies: []linkedin.Company{
			{ID: "1", Name: "CloudCo", StaffCount: 100, Description: longDescription},
			{ID: "2", Name: "TooSmall", StaffCount: 3, Description: "cloud things"},
			{ID: "3", Name: "OffTopic", StaffCount: 100, Description: "We sell flowers"},
		},
	}
	svc := NewService(fake)

	accounts, err := svc.IdentifyTargetAccounts(context.Background(), TargetAccountsParams{
		Industry:            "Information Technology",
		Keywords:            []string{"cloud"},
		MinSize:             10,
		TechnologyInterests: []string{"cloud", "kubernetes"},
		Limit:               10,
	})
	if err != nil {
		t.Fatalf("IdentifyTargetAccounts() failed: %v", err)
	}

	if len(accounts) != 1 {
		t.Fatalf("got %d accounts, want 1", len(accounts))
	}
	account := accounts[0]
	if account.CompanyName != "CloudCo" {
		t.Errorf("CompanyName = %q", account.CompanyName)
	}
	if !strings.HasSuffix(account.Description, "...") {
		t.Errorf("Description = %q, want truncation ellipsis", account.Description)
	}
	if got := len([]rune(account.Description)); got != 203 {
		t.Errorf("description length = %d, want 203", got)
	}
	if account.TechScore != 1 {
		t.Errorf("TechScore = %d, want 1 (only cloud mentioned)", account.TechScore)
	}
	if len(account.TechMentions) != 1 || account.TechMentions[0] != "cloud" {
		t.Errorf("TechMentions = %v", account.TechMentions)
	}

	// Over-fetch factor
	if fake.companiesCalls[0].Limit != 30 {
		t.Errorf("search limit = %d, want limit*3", fake.companiesCalls[0].Limit)
	}
}

func TestIdentifyTargetAccounts_RequiresIndustry(t *testing.T) {
	svc := NewService(&fakeAPI{})

	_, err := svc.IdentifyTargetAccounts(context.Background(), TargetAccountsParams{})
	if errors.Code(err) != errors.CodeInvalidParams {
		t.Errorf("error code = %q, want %q", errors.Code(err), errors.CodeInvalidParams)
	}
}

func TestFindCompaniesUsingTechnologies_DescriptionMatch(t *testing.T) {
	fake := &fakeAPI{
		companies: []linkedin.Company{
			{ID: "1", Name: "CloudCo", Description: "Kubernetes experts"},
			{ID: "2", Name: "Unrelated", Description: "We sell flowers"},
		},
	}
	svc := NewService(fake)

	results, err := svc.FindCompaniesUsingTechnologies(context.Background(), FindCompaniesUsingTechnologiesParams{
		Technologies: []string{"kubernetes", "terraform", "go"},
		Limit:        1,
	})
	if err != nil {
		t.Fatalf("FindCompaniesUsingTechnologies() failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Name != "CloudCo" {
		t.Errorf("Name = %q", results[0].Name)
	}
	if results[0].Source != "" {
		t.Errorf("Source = %q, want empty for a description match", results[0].Source)
	}

	// Only the first two technologies seed the keyword search.
	if fake.companiesCalls[0].Keywords != "kubernetes terraform" {
		t.Errorf("search keywords = %q", fake.companiesCalls[0].Keywords)
	}
}

func TestFindCompaniesUsingTechnologies_JobPostingFallback(t *testing.T) {
	fake := &fakeAPI{
		companies: []linkedin.Company{
			{ID: "1", Name: "Silent", Description: "We do things"},
		},
		jobs: []linkedin.Job{
			{ID: "555", Title: "K8s Engineer"},
			{ID: "556", Title: "Another K8s Engineer"},
		},
		jobPostings: map[string]*linkedin.JobPosting{
			"555": {ID: "555", CompanyID: "77", CompanyName: "HiringCo"},
			"556": {ID: "556", CompanyID: "77", CompanyName: "HiringCo"},
		},
	}
	svc := NewService(fake)

	results, err := svc.FindCompaniesUsingTechnologies(context.Background(), FindCompaniesUsingTechnologiesParams{
		Technologies: []string{"kubernetes"},
		Limit:        5,
	})
	if err != nil {
		t.Fatalf("FindCompaniesUsingTechnologies() failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1 (same company deduplicated)", len(results))
	}
	r := results[0]
	if r.Name != "HiringCo" {
		t.Errorf("Name = %q", r.Name)
	}
	if r.Source != "job_posting" {
		t.Errorf("Source = %q, want job_posting", r.Source)
	}
	if len(r.TechnologiesMentioned) != 1 || r.TechnologiesMentioned[0] != "kubernetes" {
		t.Errorf("TechnologiesMentioned = %v", r.TechnologiesMentioned)
	}
}

func TestFindCompaniesUsingTechnologies_RequiresTechnologies(t *testing.T) {
	svc := NewService(&fakeAPI{})

	_, err := svc.FindCompaniesUsingTechnologies(context.Background(), FindCompaniesUsingTechnologiesParams{})
	if errors.Code(err) != errors.CodeInvalidParams {
		t.Errorf("error code = %q, want %q", errors.Code(err), errors.CodeInvalidParams)
	}
}

func TestFindRecentJobChanges(t *testing.T) {
	now := time.Now().UTC()
	recent := &linkedin.Date{Year: now.Year(), Month: int(now.Month())}

	mover := &linkedin.Profile{
		FirstName: "Jane", LastName: "Smith", LocationName: "London",
		Experience: []linkedin.Position{
			{CompanyName: "NewCo", Title: "CTO", TimePeriod: linkedin.TimePeriod{StartDate: recent}},
			{CompanyName: "OldCo", Title: "VP Engineering", TimePeriod: linkedin.TimePeriod{
				StartDate: &linkedin.Date{Year: 2019, Month: 1},
				EndDate:   &linkedin.Date{Year: now.Year(), Month: 1},
			}},
		},
	}
	internalMover := &linkedin.Profile{
		FirstName: "Bob", LastName: "Jones",
		Experience: []linkedin.Position{
			{CompanyName: "SameCo", Title: "CTO", TimePeriod: linkedin.TimePeriod{StartDate: recent}},
			{CompanyName: "sameco", Title: "VP", TimePeriod: linkedin.TimePeriod{
				StartDate: &linkedin.Date{Year: 2019, Month: 1},
				EndDate:   &linkedin.Date{Year: now.Year(), Month: 1},
			}},
		},
	}
	longTenured := &linkedin.Profile{
		FirstName: "Eve", LastName: "Adams",
		Experience: []linkedin.Position{
			{CompanyName: "StableCo", Title: "CTO", TimePeriod: linkedin.TimePeriod{
				StartDate: &linkedin.Date{Year: 2015, Month: 1},
			}},
			{CompanyName: "Ancient Inc", Title: "Engineer", TimePeriod: linkedin.TimePeriod{
				StartDate: &linkedin.Date{Year: 2010, Month: 1},
				EndDate:   &linkedin.Date{Year: 2014, Month: 12},
			}},
		},
	}

	fake := &fakeAPI{
		people: []linkedin.Person{
			{PublicID: "mover"},
			{PublicID: "internal"},
			{PublicID: "stable"},
			{PublicID: "broken"},
		},
		profiles: map[string]*linkedin.Profile{
			"mover":    mover,
			"internal": internalMover,
			"stable":   longTenured,
		},
	}
	svc := NewService(fake)

	changes, err := svc.FindRecentJobChanges(context.Background(), FindRecentJobChangesParams{
		TitleKeywords: []string{"CTO"},
		Limit:         10,
	})
	if err != nil {
		t.Fatalf("FindRecentJobChanges() failed: %v", err)
	}

	if len(changes) != 1 {
		t.Fatalf("got %d changes, want 1", len(changes))
	}
	change := changes[0]
	if change.Name != "Jane Smith" {
		t.Errorf("Name = %q", change.Name)
	}
	if change.CurrentCompany != "NewCo" || change.PreviousCompany != "OldCo" {
		t.Errorf("companies = %q <- %q", change.CurrentCompany, change.PreviousCompany)
	}

	// The first title keyword seeds the search, over-fetched.
	if fake.peopleCalls[0].Title != "CTO" {
		t.Errorf("search title = %q", fake.peopleCalls[0].Title)
	}
	if fake.peopleCalls[0].Limit != 30 {
		t.Errorf("search limit = %d, want limit*3", fake.peopleCalls[0].Limit)
	}
}

func TestStartedSince(t *testing.T) {
	cutoff := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    *linkedin.Date
		expected bool
	}{
		{"nil date", nil, false},
		{"zero year", &linkedin.Date{}, false},
		{"after cutoff", &linkedin.Date{Year: 2025, Month: 9}, true},
		{"month of cutoff", &linkedin.Date{Year: 2025, Month: 6}, true},
		{"month before cutoff", &linkedin.Date{Year: 2025, Month: 5}, false},
		{"missing month counts as january", &linkedin.Date{Year: 2025}, false},
		{"five years earlier", &linkedin.Date{Year: 2020, Month: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := startedSince(tt.start, cutoff); got != tt.expected {
				t.Errorf("startedSince() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFindRecentJobChanges_TwelveMonthCutoff(t *testing.T) {
	now := time.Now().UTC()
	justInside := now.AddDate(0, -11, 0)
	justOutside := now.AddDate(0, -13, 0)

	profileAt := func(start time.Time, company string) *linkedin.Profile {
		return &linkedin.Profile{
			FirstName: company, LastName: "Mover",
			Experience: []linkedin.Position{
				{CompanyName: company, Title: "CTO", TimePeriod: linkedin.TimePeriod{
					StartDate: &linkedin.Date{Year: start.Year(), Month: int(start.Month())},
				}},
				{CompanyName: "OldCo", Title: "VP", TimePeriod: linkedin.TimePeriod{
					StartDate: &linkedin.Date{Year: 2015, Month: 1},
					EndDate:   &linkedin.Date{Year: start.Year() - 1, Month: 1},
				}},
			},
		}
	}

	fake := &fakeAPI{
		people: []linkedin.Person{{PublicID: "inside"}, {PublicID: "outside"}},
		profiles: map[string]*linkedin.Profile{
			"inside":  profileAt(justInside, "FreshCo"),
			"outside": profileAt(justOutside, "StaleCo"),
		},
	}
	svc := NewService(fake)

	changes, err := svc.FindRecentJobChanges(context.Background(), FindRecentJobChangesParams{Limit: 10})
	if err != nil {
		t.Fatalf("FindRecentJobChanges() failed: %v", err)
	}

	if len(changes) != 1 {
		t.Fatalf("got %d changes, want 1", len(changes))
	}
	if changes[0].CurrentCompany != "FreshCo" {
		t.Errorf("CurrentCompany = %q, want the move inside the last twelve months", changes[0].CurrentCompany)
	}
}
