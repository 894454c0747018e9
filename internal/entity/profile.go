package entity

// Profile represents the displayed person's biographical data.
type Profile struct {
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	About     string    `json:"about"`
	Skills    []string  `json:"skills"`
	Email     string    `json:"email"`
	LinkedIn  string    `json:"linkedin"`
	Twitter   string    `json:"twitter"`
	GitHub    string    `json:"github"`
	Portfolio []Project `json:"portfolio"`
}

// Project is one portfolio item.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Clone returns a copy that shares no slices with p.
func (p Profile) Clone() Profile {
	out := p
	out.Skills = append([]string(nil), p.Skills...)
	out.Portfolio = append([]Project(nil), p.Portfolio...)
	return out
}
