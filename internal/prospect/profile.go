package prospect

import (
	"context"
	"fmt"
	"strings"

	"github.com/leadscout/linkedin-mcp/internal/errors"
	"github.com/leadscout/linkedin-mcp/internal/linkedin"
)

// GetProfileDetails fetches the detail view of a member profile,
// combining the profile and skills lookups.
func (s *Service) GetProfileDetails(ctx context.Context, profileID string) (*ProfileDetails, error) {
	if profileID == "" {
		return nil, errors.InvalidParams("profile_id is required")
	}

	profile, err := s.li.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	skills, err := s.li.GetProfileSkills(ctx, profileID)
	if err != nil {
		return nil, err
	}

	experience := make([]ExperienceEntry, 0, len(profile.Experience))
	for _, exp := range profile.Experience {
		experience = append(experience, ExperienceEntry{
			Company:     exp.CompanyName,
			Title:       exp.Title,
			Description: exp.Description,
			DateRange:   dateRange(exp.TimePeriod),
		})
	}

	education := make([]EducationEntry, 0, len(profile.Education))
	for _, edu := range profile.Education {
		education = append(education, EducationEntry{
			School:    edu.SchoolName,
			Degree:    edu.DegreeName,
			Field:     edu.FieldOfStudy,
			DateRange: dateRange(edu.TimePeriod),
		})
	}

	return &ProfileDetails{
		ID:         profileID,
		Name:       fullName(profile.FirstName, profile.LastName),
		Headline:   profile.Headline,
		Location:   profile.LocationName,
		Industry:   profile.IndustryName,
		Experience: experience,
		Education:  education,
		Skills:     skillNames(skills),
		URL:        profileURL(profileID),
	}, nil
}

func skillNames(skills []linkedin.Skill) []string {
	names := make([]string, 0, len(skills))
	for _, skill := range skills {
		names = append(names, skill.Name)
	}
	return names
}

// AnalyzeProspectProfile scores a profile against a set of service
// keywords: decision-making authority from the current title, service
// interest from headline, experience, and skills.
func (s *Service) AnalyzeProspectProfile(ctx context.Context, profileID string, serviceKeywords []string) (*ProspectAnalysis, error) {
	if profileID == "" {
		return nil, errors.InvalidParams("profile_id is required")
	}
	if len(serviceKeywords) == 0 {
		serviceKeywords = defaultServiceKeywords
	}

	profile, err := s.li.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	skills, err := s.li.GetProfileSkills(ctx, profileID)
	if err != nil {
		return nil, err
	}

	currentCompany, currentTitle := currentPosition(profile)

	decisionMakerScore := 0
	for _, word := range decisionMakerTitleWords {
		if containsFold(currentTitle, word) {
			decisionMakerScore++
		}
	}
	isDecisionMaker := decisionMakerScore > 0

	// Headline mentions weigh double; experience and skills add one each.
	serviceScore := 0
	var serviceMentions []string
	seen := map[string]bool{}
	for _, keyword := range serviceKeywords {
		if containsFold(profile.Headline, keyword) {
			serviceMentions = append(serviceMentions, keyword)
			seen[keyword] = true
			serviceScore += 2
		}
	}
	for _, exp := range profile.Experience {
		for _, keyword := range serviceKeywords {
			if !seen[keyword] && containsFold(exp.Description, keyword) {
				serviceMentions = append(serviceMentions, keyword)
				seen[keyword] = true
				serviceScore++
			}
		}
	}
	for _, skill := range skills {
		for _, keyword := range serviceKeywords {
			if !seen[keyword] && containsFold(skill.Name, keyword) {
				serviceMentions = append(serviceMentions, keyword)
				seen[keyword] = true
				serviceScore++
			}
		}
	}

	opportunityScore := 0
	if isDecisionMaker {
		opportunityScore += 30
	}
	interestPoints := serviceScore * 5
	if interestPoints > 50 {
		interestPoints = 50
	}
	opportunityScore += interestPoints

	opportunityLevel := "Low"
	switch {
	case opportunityScore >= 70:
		opportunityLevel = "High"
	case opportunityScore >= 40:
		opportunityLevel = "Medium"
	}

	topSkills := skillNames(skills)
	if len(topSkills) > 10 {
		topSkills = topSkills[:10]
	}

	return &ProspectAnalysis{
		Name:             fullName(profile.FirstName, profile.LastName),
		Headline:         profile.Headline,
		CurrentTitle:     currentTitle,
		CurrentCompany:   currentCompany,
		Location:         profile.LocationName,
		Industry:         profile.IndustryName,
		IsDecisionMaker:  isDecisionMaker,
		ServiceInterests: serviceMentions,
		ServiceScore:     serviceScore,
		OpportunityScore: opportunityScore,
		OpportunityLevel: opportunityLevel,
		ProfileURL:       profileURL(profileID),
		Skills:           topSkills,
	}, nil
}

// FindCommonConnections compares two profiles for shared companies,
// schools, and skills.
func (s *Service) FindCommonConnections(ctx context.Context, profileID1, profileID2 string, limit int) (*CommonConnections, error) {
	if profileID1 == "" || profileID2 == "" {
		return nil, errors.InvalidParams("both profile ids are required")
	}
	limit = normalizeLimit(limit, 5)

	profile1, err := s.li.GetProfile(ctx, profileID1)
	if err != nil {
		return nil, err
	}
	profile2, err := s.li.GetProfile(ctx, profileID2)
	if err != nil {
		return nil, err
	}
	skills1, err := s.li.GetProfileSkills(ctx, profileID1)
	if err != nil {
		return nil, err
	}
	skills2, err := s.li.GetProfileSkills(ctx, profileID2)
	if err != nil {
		return nil, err
	}

	companies1 := make([]string, 0, len(profile1.Experience))
	for _, exp := range profile1.Experience {
		companies1 = append(companies1, strings.ToLower(exp.CompanyName))
	}
	companies2 := make(map[string]bool, len(profile2.Experience))
	for _, exp := range profile2.Experience {
		companies2[strings.ToLower(exp.CompanyName)] = true
	}
	commonCompanies := intersect(companies1, companies2)

	schools1 := make([]string, 0, len(profile1.Education))
	for _, edu := range profile1.Education {
		schools1 = append(schools1, strings.ToLower(edu.SchoolName))
	}
	schools2 := make(map[string]bool, len(profile2.Education))
	for _, edu := range profile2.Education {
		schools2[strings.ToLower(edu.SchoolName)] = true
	}
	commonSchools := intersect(schools1, schools2)

	names1 := make([]string, 0, len(skills1))
	for _, skill := range skills1 {
		names1 = append(names1, strings.ToLower(skill.Name))
	}
	names2 := make(map[string]bool, len(skills2))
	for _, skill := range skills2 {
		names2[strings.ToLower(skill.Name)] = true
	}
	commonSkills := intersect(names1, names2)

	skillOverlap := len(commonSkills)
	if skillOverlap > 5 {
		skillOverlap = 5
	}
	strength := len(commonCompanies) + len(commonSchools) + skillOverlap

	if len(commonSkills) > limit {
		commonSkills = commonSkills[:limit]
	}

	return &CommonConnections{
		Profile1: ProfileRef{
			ID:   profileID1,
			Name: fullName(profile1.FirstName, profile1.LastName),
			URL:  profileURL(profileID1),
		},
		Profile2: ProfileRef{
			ID:   profileID2,
			Name: fullName(profile2.FirstName, profile2.LastName),
			URL:  profileURL(profileID2),
		},
		CommonCompanies:    commonCompanies,
		CommonSchools:      commonSchools,
		CommonSkills:       commonSkills,
		ConnectionStrength: strength,
	}, nil
}

// intersect returns elements of ordered that appear in set, deduplicated,
// preserving order.
func intersect(ordered []string, set map[string]bool) []string {
	var out []string
	seen := map[string]bool{}
	for _, item := range ordered {
		if item == "" || seen[item] || !set[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

// GenerateOutreachContext assembles the personalization package for
// contacting a prospect about a service offering. Activity and company
// lookups are best-effort; their failure does not fail the tool.
func (s *Service) GenerateOutreachContext(ctx context.Context, profileID, companyService string) (*OutreachContext, error) {
	if profileID == "" {
		return nil, errors.InvalidParams("profile_id is required")
	}
	if companyService == "" {
		return nil, errors.InvalidParams("company_service is required")
	}

	profile, err := s.li.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	skills, err := s.li.GetProfileSkills(ctx, profileID)
	if err != nil {
		return nil, err
	}

	currentCompany, currentTitle := currentPosition(profile)

	experience := make([]ExperienceEntry, 0, len(profile.Experience))
	for _, exp := range profile.Experience {
		experience = append(experience, ExperienceEntry{
			Company: exp.CompanyName,
			Title:   exp.Title,
		})
	}
	if len(experience) > 3 {
		experience = experience[:3]
	}

	education := make([]EducationEntry, 0, len(profile.Education))
	for _, edu := range profile.Education {
		education = append(education, EducationEntry{
			School: edu.SchoolName,
			Degree: edu.DegreeName,
			Field:  edu.FieldOfStudy,
		})
	}

	allSkills := skillNames(skills)
	topSkills := allSkills
	if len(topSkills) > 5 {
		topSkills = topSkills[:5]
	}

	var activity []Activity
	if posts, err := s.li.GetProfilePosts(ctx, profileID, 3); err == nil {
		for _, post := range posts {
			activity = append(activity, Activity{
				Type:    "post",
				Content: truncateText(post.Text, 100),
			})
		}
	}

	var companyBrief *CompanyBrief
	if currentCompany != "" {
		if companies, err := s.li.SearchCompanies(ctx, linkedin.CompanySearchParams{
			Keywords: currentCompany,
			Limit:    1,
		}); err == nil && len(companies) > 0 {
			companyBrief = &CompanyBrief{
				ID:       companies[0].ID,
				Name:     currentCompany,
				Size:     companies[0].StaffCount,
				Industry: firstIndustry(companies[0]),
			}
		}
	}

	var serviceSkills []string
	for _, skill := range allSkills {
		for _, keyword := range strings.Fields(strings.ToLower(companyService)) {
			if containsFold(skill, keyword) {
				serviceSkills = append(serviceSkills, skill)
				break
			}
		}
	}

	var points []PersonalizationPoint
	if currentTitle != "" {
		points = append(points, PersonalizationPoint{
			Type:    "role",
			Context: fmt.Sprintf("Current role as %s at %s", currentTitle, currentCompany),
		})
	}
	if len(serviceSkills) > 0 {
		points = append(points, PersonalizationPoint{
			Type:    "skills",
			Context: "Skills related to your services: " + strings.Join(serviceSkills, ", "),
		})
	}
	if len(education) > 0 && education[0].School != "" {
		points = append(points, PersonalizationPoint{
			Type:    "education",
			Context: fmt.Sprintf("Educational background: %s in %s from %s", education[0].Degree, education[0].Field, education[0].School),
		})
	}
	if len(experience) >= 2 {
		var progression []string
		for _, exp := range experience {
			progression = append(progression, fmt.Sprintf("%s at %s", exp.Title, exp.Company))
		}
		points = append(points, PersonalizationPoint{
			Type:    "career",
			Context: "Career progression: " + strings.Join(progression, " -> "),
		})
	}

	var starters []string
	starters = append(starters,
		fmt.Sprintf("I noticed you've been at %s as %s. How has your experience been so far?", currentCompany, currentTitle))
	if len(topSkills) >= 2 {
		starters = append(starters,
			fmt.Sprintf("I saw you have expertise in %s. What projects are you currently focused on?", strings.Join(topSkills[:2], ", ")))
	}
	if len(serviceSkills) > 0 {
		starters = append(starters,
			fmt.Sprintf("Your experience with %s caught my attention. Have you been working on any initiatives related to this recently?", serviceSkills[0]))
	}
	if len(education) > 0 && education[0].Field != "" {
		starters = append(starters,
			fmt.Sprintf("I see we share an interest in %s. What drew you to that field?", education[0].Field))
	}

	return &OutreachContext{
		Prospect: ProspectRef{
			Name:     fullName(profile.FirstName, profile.LastName),
			Title:    currentTitle,
			Company:  currentCompany,
			Headline: profile.Headline,
			URL:      profileURL(profileID),
		},
		CompanyDetails:        companyBrief,
		TopSkills:             topSkills,
		EducationBackground:   education,
		ExperienceSummary:     experience,
		RecentActivity:        activity,
		PersonalizationPoints: points,
		ConversationStarters:  starters,
	}, nil
}
