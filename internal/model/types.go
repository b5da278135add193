// Package model defines shared data structures.
package model

import "time"

// ProjectStatus is the delivery state of a project.
type ProjectStatus string

// Known project states.
const (
	StatusInProgress ProjectStatus = "In Progress"
	StatusCompleted  ProjectStatus = "Completed"
)

// Valid reports whether s is a known status.
func (s ProjectStatus) Valid() bool {
	return s == StatusInProgress || s == StatusCompleted
}

// CategoryAll selects every project.
const CategoryAll = "All"

// ProjectLinks holds outbound links for a project. Empty or "#" means none.
type ProjectLinks struct {
	Code string `yaml:"code" json:"code,omitempty"`
	Live string `yaml:"live" json:"live,omitempty"`
}

// ProjectRecord describes one portfolio project.
type ProjectRecord struct {
	Title       string        `yaml:"title" json:"title"`
	Year        string        `yaml:"year" json:"year"`
	Description string        `yaml:"description" json:"description"`
	Stack       []string      `yaml:"stack" json:"stack"`
	Links       ProjectLinks  `yaml:"links" json:"links"`
	Status      ProjectStatus `yaml:"status" json:"status"`
	Category    string        `yaml:"category" json:"category"`
}

// Experience is a timeline entry for a job.
type Experience struct {
	Company string   `yaml:"company" json:"company"`
	Role    string   `yaml:"role" json:"role"`
	Date    string   `yaml:"date" json:"date"`
	Details string   `yaml:"details" json:"details"`
	Tech    []string `yaml:"tech" json:"tech"`
}

// Education is a timeline entry for a school.
type Education struct {
	Institution string `yaml:"institution" json:"institution"`
	Degree      string `yaml:"degree" json:"degree"`
	Period      string `yaml:"period" json:"period"`
	Location    string `yaml:"location" json:"location"`
}

// Certification is a completed course or certificate.
type Certification struct {
	Title  string `yaml:"title" json:"title"`
	Issuer string `yaml:"issuer" json:"issuer"`
	Year   string `yaml:"year" json:"year"`
}

// Skill is a headline skill shown in the hero section.
type Skill struct {
	Label string `yaml:"label" json:"label"`
	Desc  string `yaml:"desc" json:"desc"`
}

// Link is a labelled external link.
type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// QuickStat is a label/value pair in the hero sidebar.
type QuickStat struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// Profile is the header and hero content.
type Profile struct {
	Name       string      `yaml:"name" json:"name"`
	Location   string      `yaml:"location" json:"location"`
	Title      string      `yaml:"title" json:"title"`
	Headline   []string    `yaml:"headline" json:"headline"`
	Intro      string      `yaml:"intro" json:"intro"`
	Pitch      string      `yaml:"pitch" json:"pitch"`
	Email      string      `yaml:"email" json:"email,omitempty"`
	ResumePath string      `yaml:"resume" json:"resume,omitempty"`
	Links      []Link      `yaml:"links" json:"links"`
	QuickStats []QuickStat `yaml:"quick_stats" json:"quick_stats"`
}

// ContactForm holds the three contact fields.
type ContactForm struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Message string `json:"message" form:"message" validate:"required"`
}

// Empty reports whether every field is empty.
func (f ContactForm) Empty() bool {
	return f.Name == "" && f.Email == "" && f.Message == ""
}

// OutboxEntry records one submission attempt.
type OutboxEntry struct {
	ID        string
	CreatedAt time.Time
	Name      string
	Email     string
	Message   string
	Delivered bool
	Error     string
}
