// Package resume holds the content model rendered by the promenade page:
// the profile, the qualification timeline, the philosophy cards, the contact
// details and the copy that surrounds them.
package resume

// ColorTag names a soft background tone from the page palette.
type ColorTag string

const (
	Pink      ColorTag = "pink"
	Yellow    ColorTag = "yellow"
	Turquoise ColorTag = "turquoise"
)

// Palette maps every known tag to its hex value.
var Palette = map[ColorTag]string{
	Pink:      "#FCE4EC",
	Yellow:    "#FFF9C4",
	Turquoise: "#B2DFDB",
}

// Valid reports whether the tag is empty or part of the [Palette].
func (c ColorTag) Valid() bool {
	if c == "" {
		return true
	}
	_, ok := Palette[c]
	return ok
}

// Resume is the whole record shown on the page.
type Resume struct {
	Profile        Profile         `json:"profile" toml:"profile" yaml:"profile"`
	Qualifications []Qualification `json:"qualifications" toml:"qualifications" yaml:"qualifications"`
	Philosophies   []Philosophy    `json:"philosophies" toml:"philosophies" yaml:"philosophies"`
	Contact        Contact         `json:"contact" toml:"contact" yaml:"contact"`
	Copy           Copy            `json:"copy" toml:"copy" yaml:"copy"`
}

// Profile identifies the person behind the page.
type Profile struct {
	Name    string `json:"name" toml:"name" yaml:"name"`
	Title   string `json:"title" toml:"title" yaml:"title"`
	Tagline string `json:"tagline" toml:"tagline" yaml:"tagline"`
}

// Qualification is one milestone on the timeline. Year is free text so
// ranges like "2019-2020" work.
type Qualification struct {
	Year        string   `json:"year" toml:"year" yaml:"year"`
	Title       string   `json:"title" toml:"title" yaml:"title"`
	Description string   `json:"description" toml:"description" yaml:"description"`
	Color       ColorTag `json:"color" toml:"color" yaml:"color"`
}

// Philosophy is one card of the philosophy grid.
type Philosophy struct {
	Title       string   `json:"title" toml:"title" yaml:"title"`
	Description string   `json:"description" toml:"description" yaml:"description"`
	Icon        string   `json:"icon" toml:"icon" yaml:"icon"`
	Color       ColorTag `json:"color" toml:"color" yaml:"color"`
}

// Contact holds the footer details. Instagram and Facebook accept a bare
// handle ("@name", "/name", "name") or an absolute URL.
type Contact struct {
	Email     string `json:"email" toml:"email" yaml:"email"`
	Location  string `json:"location" toml:"location" yaml:"location"`
	Instagram string `json:"instagram" toml:"instagram" yaml:"instagram"`
	Facebook  string `json:"facebook" toml:"facebook" yaml:"facebook"`
}

// Copy is the page text around the data.
type Copy struct {
	CallToAction        string `json:"call_to_action" toml:"call_to_action" yaml:"call_to_action"`
	JourneyHeading      string `json:"journey_heading" toml:"journey_heading" yaml:"journey_heading"`
	JourneyIntro        string `json:"journey_intro" toml:"journey_intro" yaml:"journey_intro"`
	PhilosophyHeading   string `json:"philosophy_heading" toml:"philosophy_heading" yaml:"philosophy_heading"`
	PhilosophyIntro     string `json:"philosophy_intro" toml:"philosophy_intro" yaml:"philosophy_intro"`
	ContactHeading      string `json:"contact_heading" toml:"contact_heading" yaml:"contact_heading"`
	ContactIntro        string `json:"contact_intro" toml:"contact_intro" yaml:"contact_intro"`
	ContactCallToAction string `json:"contact_call_to_action" toml:"contact_call_to_action" yaml:"contact_call_to_action"`
}

// Clone returns a deep copy so callers can keep the record immutable.
func (r Resume) Clone() Resume {
	out := r
	out.Qualifications = append([]Qualification(nil), r.Qualifications...)
	out.Philosophies = append([]Philosophy(nil), r.Philosophies...)
	return out
}
