package mcp

import (
	"context"
	"fmt"
	"os"

	"github.com/leadscout/linkedin-mcp/internal/config"
	"github.com/leadscout/linkedin-mcp/internal/linkedin"
	"github.com/leadscout/linkedin-mcp/internal/prospect"
	"github.com/leadscout/linkedin-mcp/internal/secrets"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "linkedin-mcp"
	serverVersion = "0.1.0"
)

// stringItems is the schema fragment for array-of-string tool params.
var stringItems = map[string]any{"type": "string"}

// Server wraps the MCP server with the prospecting service.
type Server struct {
	mcp *server.MCPServer
	svc *prospect.Service
	cfg *config.Config
}

// NewServer creates and configures the MCP server with all LinkedIn
// tools registered. Credentials come from the environment, falling back
// to the OS keyring entry created by `linkedin-mcp login`.
func NewServer() (*Server, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Auth.Password == "" && cfg.Auth.Email != "" {
		if pw, err := secrets.GetPassword(cfg.Auth.Email); err == nil {
			cfg.Auth.Password = pw
		}
	}

	client, err := linkedin.New(cfg.ClientOptions())
	if err != nil {
		return nil, err
	}

	s := &Server{
		svc: prospect.NewServiceWithDefaults(client, cfg.ServiceDefaults()),
		cfg: cfg,
	}

	s.mcp = server.NewMCPServer(serverName, serverVersion)
	s.registerTools()

	return s, nil
}

// newServerWithService wires an already-built service, used by tests.
func newServerWithService(svc *prospect.Service) *Server {
	s := &Server{
		svc: svc,
		cfg: config.DefaultConfig(),
	}
	s.mcp = server.NewMCPServer(serverName, serverVersion)
	s.registerTools()
	return s
}

// registerTools registers the prospecting tools.
func (s *Server) registerTools() {
	// linkedin_get_feed_posts
	s.mcp.AddTool(mcp.NewTool("linkedin_get_feed_posts",
		mcp.WithDescription("Retrieves recent posts from the authenticated member's LinkedIn feed"),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of posts to return (default: 10)")),
		mcp.WithNumber("offset",
			mcp.Description("Number of posts to skip")),
	), s.handleGetFeedPosts)

	// linkedin_search_jobs
	s.mcp.AddTool(mcp.NewTool("linkedin_search_jobs",
		mcp.WithDescription("Searches LinkedIn job postings by keywords and location"),
		mcp.WithString("keywords",
			mcp.Required(),
			mcp.Description("Job search keywords")),
		mcp.WithString("location",
			mcp.Description("Location filter (e.g., \"London\")")),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of job results (default: 3)")),
		mcp.WithNumber("offset",
			mcp.Description("Number of results to skip")),
	), s.handleSearchJobs)

	// linkedin_search_companies
	s.mcp.AddTool(mcp.NewTool("linkedin_search_companies",
		mcp.WithDescription("Searches LinkedIn companies by keywords, industry, and location"),
		mcp.WithString("keywords",
			mcp.Required(),
			mcp.Description("Company name or keywords")),
		mcp.WithString("industry",
			mcp.Description("Industry filter (e.g., \"Information Technology\")")),
		mcp.WithString("location",
			mcp.Description("Location filter (e.g., \"United States\")")),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of company results (default: 10)")),
	), s.handleSearchCompanies)

	// linkedin_get_company_details
	s.mcp.AddTool(mcp.NewTool("linkedin_get_company_details",
		mcp.WithDescription("Gets detailed information about a specific company"),
		mcp.WithString("company_id",
			mcp.Required(),
			mcp.Description("LinkedIn company ID or universal name")),
	), s.handleGetCompanyDetails)

	// linkedin_search_people
	s.mcp.AddTool(mcp.NewTool("linkedin_search_people",
		mcp.WithDescription("Searches LinkedIn profiles by keywords, title, company, and other criteria"),
		mcp.WithString("keywords",
			mcp.Description("General search keywords")),
		mcp.WithString("title",
			mcp.Description("Job title filter (e.g., \"CTO\")")),
		mcp.WithString("company",
			mcp.Description("Company name filter")),
		mcp.WithString("industry",
			mcp.Description("Industry filter")),
		mcp.WithString("location",
			mcp.Description("Location filter")),
		mcp.WithString("school",
			mcp.Description("Education institution filter")),
		mcp.WithString("skill",
			mcp.Description("Specific skill to require")),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default: 10)")),
	), s.handleSearchPeople)

	// linkedin_get_profile_details
	s.mcp.AddTool(mcp.NewTool("linkedin_get_profile_details",
		mcp.WithDescription("Gets detailed information about a specific profile, including experience, education, and skills"),
		mcp.WithString("profile_id",
			mcp.Required(),
			mcp.Description("LinkedIn profile public ID")),
	), s.handleGetProfileDetails)

	// linkedin_search_company_employees
	s.mcp.AddTool(mcp.NewTool("linkedin_search_company_employees",
		mcp.WithDescription("Finds employees of a company, optionally filtered by job title"),
		mcp.WithString("company_id",
			mcp.Required(),
			mcp.Description("LinkedIn company ID or universal name")),
		mcp.WithString("title",
			mcp.Description("Job title filter")),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default: 10)")),
	), s.handleSearchCompanyEmployees)

	// linkedin_search_people_by_skills
	s.mcp.AddTool(mcp.NewTool("linkedin_search_people_by_skills",
		mcp.WithDescription("Finds people who hold all of the given skills"),
		mcp.WithArray("skills",
			mcp.Required(),
			mcp.Description("Skills to search for"),
			mcp.Items(stringItems)),
		mcp.WithString("title",
			mcp.Description("Job title filter")),
		mcp.WithString("industry",
			mcp.Description("Industry filter")),
		mcp.WithString("location",
			mcp.Description("Location filter")),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default: 10)")),
	), s.handleSearchPeopleBySkills)

	// linkedin_get_company_updates
	s.mcp.AddTool(mcp.NewTool("linkedin_get_company_updates",
		mcp.WithDescription("Gets recent updates and posts from a company page"),
		mcp.WithString("company_id",
			mcp.Required(),
			mcp.Description("LinkedIn company ID or universal name")),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of updates (default: 5)")),
	), s.handleGetCompanyUpdates)

	// linkedin_find_decision_makers
	s.mcp.AddTool(mcp.NewTool("linkedin_find_decision_makers",
		mcp.WithDescription("Finds decision makers at a company based on their job titles"),
		mcp.WithString("company_id",
			mcp.Required(),
			mcp.Description("LinkedIn company ID or universal name")),
		mcp.WithArray("titles",
			mcp.Description("Job titles to search for (default: common leadership titles)"),
			mcp.Items(stringItems)),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default: 5)")),
	), s.handleFindDecisionMakers)

	// linkedin_generate_lead_recommendations
	s.mcp.AddTool(mcp.NewTool("linkedin_generate_lead_recommendations",
		mcp.WithDescription("Recommends companies as sales leads, with decision makers and a technology-fit estimate"),
		mcp.WithString("industry",
			mcp.Description("Target industry (default: \"Information Technology\")")),
		mcp.WithString("company_size",
			mcp.Description("Target size class: \"small\", \"medium\", or \"large\"")),
		mcp.WithArray("technologies",
			mcp.Description("Technologies the target may be using"),
			mcp.Items(stringItems)),
		mcp.WithString("location",
			mcp.Description("Target location")),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of recommendations (default: 5)")),
	), s.handleGenerateLeadRecommendations)

	// linkedin_identify_target_accounts
	s.mcp.AddTool(mcp.NewTool("linkedin_identify_target_accounts",
		mcp.WithDescription("Identifies target accounts matching industry, size, and keyword criteria"),
		mcp.WithString("industry",
			mcp.Required(),
			mcp.Description("Target industry")),
		mcp.WithArray("keywords",
			mcp.Description("Keywords that must appear in the company description"),
			mcp.Items(stringItems)),
		mcp.WithString("location",
			mcp.Description("Target company location")),
		mcp.WithNumber("min_size",
			mcp.Description("Minimum company size (employees)")),
		mcp.WithNumber("max_size",
			mcp.Description("Maximum company size (employees)")),
		mcp.WithArray("technology_interests",
			mcp.Description("Technologies to score the account against"),
			mcp.Items(stringItems)),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of accounts (default: 10)")),
	), s.handleIdentifyTargetAccounts)

	// linkedin_analyze_prospect_profile
	s.mcp.AddTool(mcp.NewTool("linkedin_analyze_prospect_profile",
		mcp.WithDescription("Analyzes a profile for sales fit: decision-making authority and service interest"),
		mcp.WithString("profile_id",
			mcp.Required(),
			mcp.Description("LinkedIn profile public ID")),
		mcp.WithArray("service_keywords",
			mcp.Description("Service keywords to match against the profile"),
			mcp.Items(stringItems)),
	), s.handleAnalyzeProspectProfile)

	// linkedin_find_companies_using_technologies
	s.mcp.AddTool(mcp.NewTool("linkedin_find_companies_using_technologies",
		mcp.WithDescription("Finds companies using specific technologies, via descriptions and job postings"),
		mcp.WithArray("technologies",
			mcp.Required(),
			mcp.Description("Technologies to search for"),
			mcp.Items(stringItems)),
		mcp.WithString("industry",
			mcp.Description("Industry filter")),
		mcp.WithString("location",
			mcp.Description("Location filter")),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of companies (default: 10)")),
	), s.handleFindCompaniesUsingTechnologies)

	// linkedin_find_common_connections
	s.mcp.AddTool(mcp.NewTool("linkedin_find_common_connections",
		mcp.WithDescription("Finds shared companies, schools, and skills between two profiles"),
		mcp.WithString("profile_id_1",
			mcp.Required(),
			mcp.Description("First LinkedIn profile public ID")),
		mcp.WithString("profile_id_2",
			mcp.Required(),
			mcp.Description("Second LinkedIn profile public ID")),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of common skills to return (default: 5)")),
	), s.handleFindCommonConnections)

	// linkedin_generate_sales_outreach_context
	s.mcp.AddTool(mcp.NewTool("linkedin_generate_sales_outreach_context",
		mcp.WithDescription("Builds personalized outreach context for a prospect based on their profile"),
		mcp.WithString("profile_id",
			mcp.Required(),
			mcp.Description("LinkedIn profile public ID of the prospect")),
		mcp.WithString("company_service",
			mcp.Required(),
			mcp.Description("Brief description of your company's service offering")),
	), s.handleGenerateSalesOutreachContext)

	// linkedin_find_recent_job_changes
	s.mcp.AddTool(mcp.NewTool("linkedin_find_recent_job_changes",
		mcp.WithDescription("Finds people who changed companies within the last year"),
		mcp.WithString("industry",
			mcp.Description("Industry filter")),
		mcp.WithArray("title_keywords",
			mcp.Description("Job title keywords to filter by"),
			mcp.Items(stringItems)),
		mcp.WithString("location",
			mcp.Description("Location filter")),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default: 10)")),
	), s.handleFindRecentJobChanges)
}

// Serve starts the MCP server on stdio transport. The mcp-go library
// handles stdio natively; no additional transport layer is involved.
func (s *Server) Serve() error {
	stdioServer := server.NewStdioServer(s.mcp)
	ctx := context.Background()
	if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("failed to serve MCP: %w", err)
	}
	return nil
}

// Serve creates a new MCP server and starts serving on stdio.
func Serve() error {
	srv, err := NewServer()
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if err := srv.Serve(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
