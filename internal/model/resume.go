package model

// Document is the print-ready view of a resume consumed by the export
// templates and checked against schema/document.schema.json.

type Contact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type Role struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location,omitempty"`
	Period      string   `json:"period"`
	Description string   `json:"description,omitempty"`
	Bullets     []string `json:"bullets"`
}

type Degree struct {
	Degree       string   `json:"degree"`
	FieldOfStudy string   `json:"fieldOfStudy,omitempty"`
	Institution  string   `json:"institution"`
	Period       string   `json:"period"`
	GPA          string   `json:"gpa,omitempty"`
	Bullets      []string `json:"bullets"`
}

type SkillItem struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Level    int    `json:"level"`
}

type Document struct {
	Title      string      `json:"title"`
	Name       string      `json:"name"`
	Contact    Contact     `json:"contact"`
	Links      []Link      `json:"links"`
	Summary    string      `json:"summary,omitempty"`
	Experience []Role      `json:"experience"`
	Education  []Degree    `json:"education"`
	Skills     []SkillItem `json:"skills"`
}
