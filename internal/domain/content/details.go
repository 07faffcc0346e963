package content

import "time"

// Details is the per-type structured metadata variant attached to a
// record. Each content type has its own variant with typed fields;
// the engine reads them only through Category and Author.
type Details interface {
	Category() string
	Author() string
}

// JobDetails describes a job posting.
type JobDetails struct {
	Company      string
	Location     string
	SalaryRange  string
	Remote       bool
	CategoryName string // e.g. "backend", "data", "design"
}

func (d JobDetails) Category() string { return d.CategoryName }
func (d JobDetails) Author() string   { return d.Company }

// EventDetails describes a community event.
type EventDetails struct {
	Venue        string
	City         string
	StartsAt     time.Time
	Organizer    string
	CategoryName string
}

func (d EventDetails) Category() string { return d.CategoryName }
func (d EventDetails) Author() string   { return d.Organizer }

// ForumDetails describes a forum topic or post.
type ForumDetails struct {
	AuthorName   string
	Replies      int
	Views        int
	CategoryName string // forum board name
}

func (d ForumDetails) Category() string { return d.CategoryName }
func (d ForumDetails) Author() string   { return d.AuthorName }

// MemberDetails describes a member profile.
type MemberDetails struct {
	Headline string
	Skills   []string
	Location string
}

func (d MemberDetails) Category() string { return "" }
func (d MemberDetails) Author() string   { return "" }

// MentorDetails describes a mentor profile.
type MentorDetails struct {
	Expertise    []string
	Available    bool
	CategoryName string // primary expertise area
}

func (d MentorDetails) Category() string { return d.CategoryName }
func (d MentorDetails) Author() string   { return "" }

// NewsDetails describes a published article.
type NewsDetails struct {
	AuthorName   string
	Source       string
	CategoryName string
}

func (d NewsDetails) Category() string { return d.CategoryName }
func (d NewsDetails) Author() string   { return d.AuthorName }
