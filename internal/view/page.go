package view

import (
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/biancatraining/promenade/internal/icons"
	"github.com/biancatraining/promenade/internal/motion"
	"github.com/biancatraining/promenade/internal/resume"
)

// Side is the half of the timeline a qualification card sits on.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// SideFor alternates sides by index, starting on the left.
func SideFor(i int) Side {
	if i%2 == 0 {
		return Left
	}
	return Right
}

// Page is everything the templates need for one render.
type Page struct {
	Assets           string
	Anchor           string
	CallToActionHref string
	Profile          resume.Profile
	Copy             resume.Copy
	Stylesheet       template.CSS
	Motion           Classes
	Timeline         []TimelineEntry
	Cards            []Card
	Contact          ContactBlock
	Year             int
}

// Classes are the CSS classes of the presets the sections use.
type Classes struct {
	FadeUp   string
	Bloom    string
	HeroFade string
	HeroRise string
	Bob      string
	Stagger  string
}

// TimelineEntry is one qualification placed on the timeline.
type TimelineEntry struct {
	Index       int
	Side        Side
	Year        string
	Title       string
	Description string
	ColorClass  string
	CardMotion  string
	TagMotion   string
}

// Card is one philosophy in the grid. Delay is the staggered start offset.
type Card struct {
	Index       int
	Title       string
	Description string
	Icon        template.HTML
	ColorClass  string
	Motion      string
	Delay       string
}

// ContactBlock is the footer content.
type ContactBlock struct {
	Email    string
	MailTo   string
	Location string
	Socials  []SocialLink
}

// SocialLink points at a profile on a social platform.
type SocialLink struct {
	Platform string
	Label    string
	Handle   string
	URL      string
	Icon     template.HTML
}

type platform struct {
	name   string
	label  string
	base   string
	handle func(resume.Contact) string
}

var platforms = []platform{
	{"instagram", "Instagram", "https://www.instagram.com/", func(c resume.Contact) string { return c.Instagram }},
	{"facebook", "Facebook", "https://www.facebook.com/", func(c resume.Contact) string { return c.Facebook }},
}

func (r *Renderer) build(now time.Time) Page {
	class := func(name string) string {
		p, _ := r.presets.Get(name)
		return p.Class()
	}

	page := Page{
		Assets:           AssetPrefix,
		Anchor:           QualificationsAnchor,
		CallToActionHref: "#" + QualificationsAnchor,
		Profile:          r.resume.Profile,
		Copy:             r.resume.Copy,
		Stylesheet:       r.css,
		Motion: Classes{
			FadeUp:   class(motion.FadeUp),
			Bloom:    class(motion.Bloom),
			HeroFade: class(motion.HeroFade),
			HeroRise: class(motion.HeroRise),
			Bob:      class(motion.Bob),
			Stagger:  class(motion.StaggerContainer),
		},
		Contact: contactBlock(r.resume.Contact),
		Year:    now.Year(),
	}

	page.Timeline = make([]TimelineEntry, len(r.resume.Qualifications))
	for i, q := range r.resume.Qualifications {
		side := SideFor(i)
		slide := motion.SlideLeft
		if side == Right {
			slide = motion.SlideRight
		}
		page.Timeline[i] = TimelineEntry{
			Index:       i,
			Side:        side,
			Year:        q.Year,
			Title:       q.Title,
			Description: q.Description,
			ColorClass:  colorClass("tag", q.Color),
			CardMotion:  class(slide),
			TagMotion:   class(motion.FadeUp),
		}
	}

	page.Cards = make([]Card, len(r.resume.Philosophies))
	for i, p := range r.resume.Philosophies {
		page.Cards[i] = Card{
			Index:       i,
			Title:       p.Title,
			Description: p.Description,
			Icon:        icons.SVG(p.Icon, strings.TrimSpace("icon icon-lg "+colorClass("tint", p.Color))),
			ColorClass:  colorClass("tag", p.Color),
			Motion:      class(motion.Bloom),
			Delay:       motion.Millis(r.presets.StaggerDelay(motion.StaggerContainer, i)),
		}
	}

	return page
}

func colorClass(prefix string, c resume.ColorTag) string {
	if c == "" {
		return ""
	}
	return prefix + "-" + string(c)
}

func contactBlock(c resume.Contact) ContactBlock {
	block := ContactBlock{
		Email:    strings.TrimSpace(c.Email),
		Location: c.Location,
	}
	if block.Email != "" {
		block.MailTo = MailTo(block.Email)
	}

	for _, p := range platforms {
		handle := strings.TrimSpace(p.handle(c))
		link := ProfileURL(p.base, handle)
		if link == "" {
			continue
		}
		block.Socials = append(block.Socials, SocialLink{
			Platform: p.name,
			Label:    p.label,
			Handle:   handle,
			URL:      link,
			Icon:     icons.SVG(p.name, "icon icon-sm"),
		})
	}
	return block
}

// MailTo formats an address as a mailto reference.
func MailTo(email string) string {
	return "mailto:" + email
}

// ProfileURL expands a handle ("@name", "/name" or "name") against base.
// Absolute URLs are returned unchanged and a host path such as
// "instagram.com/name" gets an https scheme. A handle with no name left
// after trimming yields "".
func ProfileURL(base, handle string) string {
	handle = strings.TrimSpace(handle)
	if u, err := url.Parse(handle); err == nil && u.Scheme != "" && u.Host != "" {
		return handle
	}

	name := strings.TrimRight(strings.TrimLeft(handle, "@/"), "/")
	if name == "" {
		return ""
	}
	if host, _, ok := strings.Cut(name, "/"); ok && strings.Contains(host, ".") {
		return "https://" + name
	}
	return base + url.PathEscape(name)
}
