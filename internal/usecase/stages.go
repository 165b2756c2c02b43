package usecase

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"golang.org/x/net/publicsuffix"
)

const (
	unknownName = "Unknown"
	notProvided = "Not provided"
	noneListed  = "None listed"
	present     = "Present"
)

// BuildDocument projects an aggregated resume onto the print view.
func BuildDocument(full *domain.FullResume) *model.Document {
	doc := &model.Document{
		Title:      full.Title,
		Name:       unknownName,
		Links:      []model.Link{},
		Experience: make([]model.Role, 0, len(full.WorkExperience)),
		Education:  make([]model.Degree, 0, len(full.Education)),
		Skills:     make([]model.SkillItem, 0, len(full.Skills)),
	}
	if info := full.PersonalInfo; info != nil {
		if n := strings.TrimSpace(info.FullName); n != "" {
			doc.Name = n
		}
		doc.Contact = model.Contact{Email: info.Email, Phone: info.Phone, Location: info.Location}
		doc.Summary = strings.TrimSpace(info.Summary)
		for _, raw := range []string{info.Website, info.LinkedIn, info.GitHub} {
			if l, ok := linkFor(raw); ok {
				doc.Links = append(doc.Links, l)
			}
		}
	}

	for _, w := range full.WorkExperience {
		end := endLabel(w.IsPresent, w.EndMonth, w.EndYear)
		doc.Experience = append(doc.Experience, model.Role{
			Title:       w.JobTitle,
			Company:     w.Company,
			Location:    w.Location,
			Period:      monthYear(w.StartMonth, w.StartYear) + " - " + end,
			Description: strings.TrimSpace(w.Description),
			Bullets:     nonEmpty(w.Achievements),
		})
	}
	for _, e := range full.Education {
		d := model.Degree{
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			Institution:  e.Institution,
			Period:       monthYear(e.StartMonth, e.StartYear) + " - " + endLabel(e.IsPresent, e.EndMonth, e.EndYear),
			Bullets:      nonEmpty(e.Achievements),
		}
		if e.GPA != nil {
			d.GPA = strconv.FormatFloat(*e.GPA, 'f', 2, 64)
		}
		doc.Education = append(doc.Education, d)
	}
	for _, s := range full.Skills {
		doc.Skills = append(doc.Skills, model.SkillItem{Name: s.Name, Category: s.Category, Level: s.Proficiency})
	}
	return doc
}

// monthYear renders "Jan 2020", or just the year for an out of range month.
func monthYear(month, year int) string {
	if month < 1 || month > 12 {
		return strconv.Itoa(year)
	}
	return fmt.Sprintf("%s %d", time.Month(month).String()[:3], year)
}

func endLabel(isPresent bool, month, year *int) string {
	if isPresent || year == nil {
		return present
	}
	m := 0
	if month != nil {
		m = *month
	}
	return monthYear(m, *year)
}

// linkFor labels a profile URL by its registrable domain plus path,
// e.g. "https://www.linkedin.com/in/ada/" becomes "linkedin.com/in/ada".
func linkFor(raw string) (model.Link, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.Link{}, false
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Hostname() == "" {
		return model.Link{Label: raw, URL: raw}, true
	}
	label := strings.TrimPrefix(parsed.Hostname(), "www.")
	if etld, err := publicsuffix.EffectiveTLDPlusOne(label); err == nil {
		label = etld
	}
	if p := strings.Trim(parsed.EscapedPath(), "/"); p != "" {
		label += "/" + p
	}
	return model.Link{Label: label, URL: candidate}, true
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// PlainText lays the document out as text for deployments without a
// browser renderer.
func PlainText(doc *model.Document) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "Resume for %s\n\n", doc.Name)
	fmt.Fprintf(&b, "Email: %s\n", orDefault(doc.Contact.Email, notProvided))
	fmt.Fprintf(&b, "Phone: %s\n\n", orDefault(doc.Contact.Phone, notProvided))

	b.WriteString("Professional Summary:\n")
	b.WriteString(orDefault(doc.Summary, notProvided))
	b.WriteString("\n\nWork Experience:\n")
	if len(doc.Experience) == 0 {
		b.WriteString(noneListed + "\n")
	}
	for _, r := range doc.Experience {
		fmt.Fprintf(&b, "- %s at %s (%s)\n", r.Title, r.Company, r.Period)
		for _, bullet := range r.Bullets {
			fmt.Fprintf(&b, "  %s\n", bullet)
		}
	}

	b.WriteString("\nEducation:\n")
	if len(doc.Education) == 0 {
		b.WriteString(noneListed + "\n")
	}
	for _, d := range doc.Education {
		if d.FieldOfStudy != "" {
			fmt.Fprintf(&b, "- %s in %s from %s (%s)\n", d.Degree, d.FieldOfStudy, d.Institution, d.Period)
		} else {
			fmt.Fprintf(&b, "- %s from %s (%s)\n", d.Degree, d.Institution, d.Period)
		}
	}

	b.WriteString("\nSkills:\n")
	if len(doc.Skills) == 0 {
		b.WriteString(noneListed + "\n")
	} else {
		parts := make([]string, 0, len(doc.Skills))
		for _, s := range doc.Skills {
			parts = append(parts, fmt.Sprintf("%s (%d)", s.Name, s.Level))
		}
		b.WriteString(strings.Join(parts, ", ") + "\n")
	}
	return []byte(b.String())
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
