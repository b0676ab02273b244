package linkedin

// Person is a single hit from a people search.
type Person struct {
	PublicID     string
	URNID        string
	FirstName    string
	LastName     string
	Occupation   string
	LocationName string
}

// Profile is the full profile view for a member.
type Profile struct {
	PublicID     string
	FirstName    string
	LastName     string
	Headline     string
	LocationName string
	IndustryName string
	Experience   []Position
	Education    []Education
}

// Position is one entry in a profile's experience section, most recent first.
type Position struct {
	CompanyName string     `json:"companyName"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TimePeriod  TimePeriod `json:"timePeriod"`
}

// Education is one entry in a profile's education section.
type Education struct {
	SchoolName   string     `json:"schoolName"`
	DegreeName   string     `json:"degreeName"`
	FieldOfStudy string     `json:"fieldOfStudy"`
	TimePeriod   TimePeriod `json:"timePeriod"`
}

// TimePeriod is a Voyager date range. A nil EndDate means "present".
type TimePeriod struct {
	StartDate *Date `json:"startDate"`
	EndDate   *Date `json:"endDate"`
}

// Date is a Voyager partial date. Unset components are zero.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Skill is a single profile skill.
type Skill struct {
	Name string `json:"name"`
}

// Company holds the company fields read by the prospecting layer. Search
// hits and the detail lookup share the shape; detail lookups fill more of it.
type Company struct {
	ID           string
	Name         string
	Industries   []string
	Description  string
	WebsiteURL   string
	Headquarter  *Address
	StaffCount   int
	Specialities []string
	FoundedYear  int
}

// Address is a company headquarter location.
type Address struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// Job is a single hit from a job search.
type Job struct {
	ID          string
	Title       string
	CompanyName string
	Location    string
}

// JobPosting is the detail view of a single job posting.
type JobPosting struct {
	ID                string
	Title             string
	CompanyID         string
	CompanyName       string
	Description       string
	FormattedLocation string
}

// Post is a feed or profile post, flattened to the fields tools return.
type Post struct {
	AuthorName string
	Text       string
	PostedAt   string
}

// Update is a company page update, flattened like Post.
type Update struct {
	Text     string
	PostedAt string
}

// PeopleSearchParams are the filters for SearchPeople. Zero values are
// omitted from the upstream query.
type PeopleSearchParams struct {
	Keywords     string
	Title        string
	CompanyName  string
	Industry     string
	LocationName string
	SchoolName   string
	Limit        int
	Offset       int
}

// CompanySearchParams are the filters for SearchCompanies.
type CompanySearchParams struct {
	Keywords string
	Industry string
	Location string
	Limit    int
	Offset   int
}

// JobSearchParams are the filters for SearchJobs.
type JobSearchParams struct {
	Keywords    string
	Location    string
	CompanyName string
	Limit       int
	Offset      int
}
