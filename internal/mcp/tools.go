package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/leadscout/linkedin-mcp/internal/errors"
	"github.com/leadscout/linkedin-mcp/internal/prospect"
	"github.com/mark3labs/mcp-go/mcp"
)

// handleGetFeedPosts implements linkedin_get_feed_posts.
func (s *Server) handleGetFeedPosts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 0)
	offset := request.GetInt("offset", 0)

	posts, err := s.svc.FeedPosts(ctx, limit, offset)
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(posts), nil
}

// handleSearchJobs implements linkedin_search_jobs.
func (s *Server) handleSearchJobs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keywords, err := request.RequireString("keywords")
	if err != nil {
		return errorResult("INVALID_PARAMS", "keywords is required"), nil
	}

	jobs, err := s.svc.SearchJobs(ctx, prospect.SearchJobsParams{
		Keywords: keywords,
		Location: request.GetString("location", ""),
		Limit:    request.GetInt("limit", 0),
		Offset:   request.GetInt("offset", 0),
	})
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(jobs), nil
}

// handleSearchCompanies implements linkedin_search_companies.
func (s *Server) handleSearchCompanies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keywords, err := request.RequireString("keywords")
	if err != nil {
		return errorResult("INVALID_PARAMS", "keywords is required"), nil
	}

	companies, err := s.svc.SearchCompanies(ctx, prospect.SearchCompaniesParams{
		Keywords: keywords,
		Industry: request.GetString("industry", ""),
		Location: request.GetString("location", ""),
		Limit:    request.GetInt("limit", 0),
	})
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(companies), nil
}

// handleGetCompanyDetails implements linkedin_get_company_details.
func (s *Server) handleGetCompanyDetails(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	companyID, err := request.RequireString("company_id")
	if err != nil {
		return errorResult("INVALID_PARAMS", "company_id is required"), nil
	}

	details, err := s.svc.GetCompanyDetails(ctx, companyID)
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(details), nil
}

// handleSearchPeople implements linkedin_search_people.
func (s *Server) handleSearchPeople(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	people, err := s.svc.SearchPeople(ctx, prospect.SearchPeopleParams{
		Keywords: request.GetString("keywords", ""),
		Title:    request.GetString("title", ""),
		Company:  request.GetString("company", ""),
		Industry: request.GetString("industry", ""),
		Location: request.GetString("location", ""),
		School:   request.GetString("school", ""),
		Skill:    request.GetString("skill", ""),
		Limit:    request.GetInt("limit", 0),
	})
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(people), nil
}

// handleGetProfileDetails implements linkedin_get_profile_details.
func (s *Server) handleGetProfileDetails(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profileID, err := request.RequireString("profile_id")
	if err != nil {
		return errorResult("INVALID_PARAMS", "profile_id is required"), nil
	}

	details, err := s.svc.GetProfileDetails(ctx, profileID)
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(details), nil
}

// handleSearchCompanyEmployees implements linkedin_search_company_employees.
func (s *Server) handleSearchCompanyEmployees(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	companyID, err := request.RequireString("company_id")
	if err != nil {
		return errorResult("INVALID_PARAMS", "company_id is required"), nil
	}

	title := request.GetString("title", "")
	limit := request.GetInt("limit", 0)

	people, err := s.svc.SearchCompanyEmployees(ctx, companyID, title, limit)
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(people), nil
}

// handleSearchPeopleBySkills implements linkedin_search_people_by_skills.
func (s *Server) handleSearchPeopleBySkills(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	skills := request.GetStringSlice("skills", nil)
	if len(skills) == 0 {
		return errorResult("INVALID_PARAMS", "skills is required"), nil
	}

	matches, err := s.svc.SearchPeopleBySkills(ctx, prospect.SearchPeopleBySkillsParams{
		Skills:   skills,
		Title:    request.GetString("title", ""),
		Industry: request.GetString("industry", ""),
		Location: request.GetString("location", ""),
		Limit:    request.GetInt("limit", 0),
	})
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(matches), nil
}

// handleGetCompanyUpdates implements linkedin_get_company_updates.
func (s *Server) handleGetCompanyUpdates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	companyID, err := request.RequireString("company_id")
	if err != nil {
		return errorResult("INVALID_PARAMS", "company_id is required"), nil
	}

	limit := request.GetInt("limit", 0)

	updates, err := s.svc.GetCompanyUpdates(ctx, companyID, limit)
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(updates), nil
}

// handleFindDecisionMakers implements linkedin_find_decision_makers.
func (s *Server) handleFindDecisionMakers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	companyID, err := request.RequireString("company_id")
	if err != nil {
		return errorResult("INVALID_PARAMS", "company_id is required"), nil
	}

	titles := request.GetStringSlice("titles", nil)
	limit := request.GetInt("limit", 0)

	people, err := s.svc.FindDecisionMakers(ctx, companyID, titles, limit)
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(people), nil
}

// handleGenerateLeadRecommendations implements linkedin_generate_lead_recommendations.
func (s *Server) handleGenerateLeadRecommendations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	leads, err := s.svc.GenerateLeadRecommendations(ctx, prospect.LeadRecommendationsParams{
		Industry:     request.GetString("industry", ""),
		CompanySize:  request.GetString("company_size", ""),
		Technologies: request.GetStringSlice("technologies", nil),
		Location:     request.GetString("location", ""),
		Limit:        request.GetInt("limit", 0),
	})
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(leads), nil
}

// handleIdentifyTargetAccounts implements linkedin_identify_target_accounts.
func (s *Server) handleIdentifyTargetAccounts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	industry, err := request.RequireString("industry")
	if err != nil {
		return errorResult("INVALID_PARAMS", "industry is required"), nil
	}

	accounts, err := s.svc.IdentifyTargetAccounts(ctx, prospect.TargetAccountsParams{
		Industry:            industry,
		Keywords:            request.GetStringSlice("keywords", nil),
		Location:            request.GetString("location", ""),
		MinSize:             request.GetInt("min_size", 0),
		MaxSize:             request.GetInt("max_size", 0),
		TechnologyInterests: request.GetStringSlice("technology_interests", nil),
		Limit:               request.GetInt("limit", 0),
	})
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(accounts), nil
}

// handleAnalyzeProspectProfile implements linkedin_analyze_prospect_profile.
func (s *Server) handleAnalyzeProspectProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profileID, err := request.RequireString("profile_id")
	if err != nil {
		return errorResult("INVALID_PARAMS", "profile_id is required"), nil
	}

	serviceKeywords := request.GetStringSlice("service_keywords", nil)

	analysis, err := s.svc.AnalyzeProspectProfile(ctx, profileID, serviceKeywords)
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(analysis), nil
}

// handleFindCompaniesUsingTechnologies implements linkedin_find_companies_using_technologies.
func (s *Server) handleFindCompaniesUsingTechnologies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	technologies := request.GetStringSlice("technologies", nil)
	if len(technologies) == 0 {
		return errorResult("INVALID_PARAMS", "technologies is required"), nil
	}

	companies, err := s.svc.FindCompaniesUsingTechnologies(ctx, prospect.FindCompaniesUsingTechnologiesParams{
		Technologies: technologies,
		Industry:     request.GetString("industry", ""),
		Location:     request.GetString("location", ""),
		Limit:        request.GetInt("limit", 0),
	})
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(companies), nil
}

// handleFindCommonConnections implements linkedin_find_common_connections.
func (s *Server) handleFindCommonConnections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profileID1, err := request.RequireString("profile_id_1")
	if err != nil {
		return errorResult("INVALID_PARAMS", "profile_id_1 is required"), nil
	}
	profileID2, err := request.RequireString("profile_id_2")
	if err != nil {
		return errorResult("INVALID_PARAMS", "profile_id_2 is required"), nil
	}

	limit := request.GetInt("limit", 0)

	common, err := s.svc.FindCommonConnections(ctx, profileID1, profileID2, limit)
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(common), nil
}

// handleGenerateSalesOutreachContext implements linkedin_generate_sales_outreach_context.
func (s *Server) handleGenerateSalesOutreachContext(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profileID, err := request.RequireString("profile_id")
	if err != nil {
		return errorResult("INVALID_PARAMS", "profile_id is required"), nil
	}
	companyService, err := request.RequireString("company_service")
	if err != nil {
		return errorResult("INVALID_PARAMS", "company_service is required"), nil
	}

	outreach, err := s.svc.GenerateOutreachContext(ctx, profileID, companyService)
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(outreach), nil
}

// handleFindRecentJobChanges implements linkedin_find_recent_job_changes.
func (s *Server) handleFindRecentJobChanges(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	changes, err := s.svc.FindRecentJobChanges(ctx, prospect.FindRecentJobChangesParams{
		Industry:      request.GetString("industry", ""),
		TitleKeywords: request.GetStringSlice("title_keywords", nil),
		Location:      request.GetString("location", ""),
		Limit:         request.GetInt("limit", 0),
	})
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(changes), nil
}

// mcpErrorResult converts a domain error into an MCP error result,
// preserving the error code when one is present.
func mcpErrorResult(err error) *mcp.CallToolResult {
	code := errors.Code(err)
	if code == "" {
		code = "INTERNAL_ERROR"
	}

	return errorResult(code, err.Error())
}

// errorResult creates an MCP error result.
func errorResult(code, message string) *mcp.CallToolResult {
	errorData := map[string]interface{}{
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
		},
	}

	jsonBytes, err := json.Marshal(errorData)
	if err != nil {
		// Fallback to simple text
		return mcp.NewToolResultText(fmt.Sprintf("Error: %s - %s", code, message))
	}

	return mcp.NewToolResultText(string(jsonBytes))
}

// jsonResult creates an MCP success result from a JSON-serializable object.
func jsonResult(data interface{}) *mcp.CallToolResult {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return errorResult("INTERNAL_ERROR", fmt.Sprintf("failed to marshal response: %s", err))
	}

	return mcp.NewToolResultText(string(jsonBytes))
}
