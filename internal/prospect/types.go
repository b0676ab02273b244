package prospect

// Output types for the tool surface. Field names follow the JSON the
// original tool consumers already parse.

// FeedPost is one post from the member's feed.
type FeedPost struct {
	Author   string `json:"author"`
	Content  string `json:"content"`
	PostedAt string `json:"posted_at,omitempty"`
}

// JobSummary is one job search result, enriched from the posting detail.
type JobSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// CompanySummary is one company search result.
type CompanySummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Size        int    `json:"size"`
	URL         string `json:"url"`
}

// CompanyDetails is the detail view of a single company.
type CompanyDetails struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Industry    string   `json:"industry"`
	Description string   `json:"description"`
	Website     string   `json:"website"`
	Location    string   `json:"location"`
	Size        int      `json:"size"`
	Specialties []string `json:"specialties"`
	Founded     int      `json:"founded,omitempty"`
}

// PersonSummary is one people search result.
type PersonSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	URL      string `json:"url"`
}

// SkillMatch is a people search result annotated with the skills that
// satisfied the query.
type SkillMatch struct {
	PersonSummary
	MatchedSkills []string `json:"matched_skills"`
}

// ExperienceEntry is one experience section entry of a profile.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DateRange   string `json:"date_range,omitempty"`
}

// EducationEntry is one education section entry of a profile.
type EducationEntry struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	DateRange string `json:"date_range,omitempty"`
}

// ProfileDetails is the detail view of a single member profile.
type ProfileDetails struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Headline   string            `json:"headline"`
	Location   string            `json:"location"`
	Industry   string            `json:"industry"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Skills     []string          `json:"skills"`
	URL        string            `json:"url"`
}

// CompanyUpdate is one post from a company page.
type CompanyUpdate struct {
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Contact is a lightweight person reference attached to leads.
type Contact struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Lead is one recommended company with its decision makers and an
// estimate of how well it fits the offered technologies.
type Lead struct {
	CompanyID      string    `json:"company_id"`
	CompanyName    string    `json:"company_name"`
	Industry       string    `json:"industry"`
	Location       string    `json:"location"`
	Size           int       `json:"size"`
	TechnologyFit  string    `json:"technology_fit"`
	DecisionMakers []Contact `json:"decision_makers"`
	CompanyURL     string    `json:"company_url"`
}

// TargetAccount is one company matching the target account criteria.
type TargetAccount struct {
	CompanyID      string    `json:"company_id"`
	CompanyName    string    `json:"company_name"`
	Industry       string    `json:"industry"`
	Location       string    `json:"location"`
	Size           int       `json:"size"`
	Description    string    `json:"description"`
	TechScore      int       `json:"tech_score"`
	TechMentions   []string  `json:"tech_mentions"`
	DecisionMakers []Contact `json:"decision_makers"`
	CompanyURL     string    `json:"company_url"`
}

// ProspectAnalysis scores a profile for sales fit.
type ProspectAnalysis struct {
	Name             string   `json:"name"`
	Headline         string   `json:"headline"`
	CurrentTitle     string   `json:"current_title"`
	CurrentCompany   string   `json:"current_company"`
	Location         string   `json:"location"`
	Industry         string   `json:"industry"`
	IsDecisionMaker  bool     `json:"is_decision_maker"`
	ServiceInterests []string `json:"service_interests"`
	ServiceScore     int      `json:"service_score"`
	OpportunityScore int      `json:"opportunity_score"`
	OpportunityLevel string   `json:"opportunity_level"`
	ProfileURL       string   `json:"profile_url"`
	Skills           []string `json:"skills"`
}

// TechCompany is a company associated with specific technologies, found
// either in its description or through its job postings.
type TechCompany struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Industry              string   `json:"industry"`
	Location              string   `json:"location"`
	Size                  int      `json:"size"`
	TechnologiesMentioned []string `json:"technologies_mentioned"`
	URL                   string   `json:"url"`
	Source                string   `json:"source,omitempty"`
}

// ProfileRef identifies one side of a profile comparison.
type ProfileRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// CommonConnections summarizes the overlap between two profiles.
type CommonConnections struct {
	Profile1           ProfileRef `json:"profile1"`
	Profile2           ProfileRef `json:"profile2"`
	CommonCompanies    []string   `json:"common_companies"`
	CommonSchools      []string   `json:"common_schools"`
	CommonSkills       []string   `json:"common_skills"`
	ConnectionStrength int        `json:"connection_strength"`
}

// JobChange is a person who recently moved to a new company.
type JobChange struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	CurrentTitle    string `json:"current_title"`
	CurrentCompany  string `json:"current_company"`
	PreviousCompany string `json:"previous_company"`
	Location        string `json:"location"`
	URL             string `json:"url"`
}

// ProspectRef is the header block of an outreach context.
type ProspectRef struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Headline string `json:"headline"`
	URL      string `json:"url"`
}

// CompanyBrief is the abbreviated company block of an outreach context.
type CompanyBrief struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Size     int    `json:"size"`
	Industry string `json:"industry"`
}

// Activity is one recent-activity item of an outreach context.
type Activity struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// PersonalizationPoint is one talking point of an outreach context.
type PersonalizationPoint struct {
	Type    string `json:"type"`
	Context string `json:"context"`
}

// OutreachContext is the full personalization package for contacting a
// prospect.
type OutreachContext struct {
	Prospect              ProspectRef            `json:"prospect"`
	CompanyDetails        *CompanyBrief          `json:"company_details,omitempty"`
	TopSkills             []string               `json:"top_skills"`
	EducationBackground   []EducationEntry       `json:"education_background"`
	ExperienceSummary     []ExperienceEntry      `json:"experience_summary"`
	RecentActivity        []Activity             `json:"recent_activity"`
	PersonalizationPoints []PersonalizationPoint `json:"personalization_points"`
	ConversationStarters  []string               `json:"conversation_starters"`
}
