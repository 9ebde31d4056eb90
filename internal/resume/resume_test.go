package resume

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validResume() Resume {
	return Resume{
		Profile: Profile{Name: "Ana Souza", Title: "Agility Coach"},
		Qualifications: []Qualification{
			{Year: "2022", Title: "Agility Instructor Certification", Color: Yellow},
		},
		Philosophies: []Philosophy{
			{Title: "Play First", Icon: "heart", Color: Pink},
		},
	}
}

func TestValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		if err := validResume().Validate(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("Optional Fields Missing", func(t *testing.T) {
		r := validResume()
		r.Profile.Tagline = ""
		r.Contact = Contact{}
		r.Copy = Copy{}
		r.Qualifications[0].Color = ""
		if err := r.Validate(); err != nil {
			t.Fatalf("expected optional fields to be accepted, got %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*Resume)
		want   string
	}{
		{"Missing Name", func(r *Resume) { r.Profile.Name = "  " }, "profile name is required"},
		{"No Qualifications", func(r *Resume) { r.Qualifications = nil }, "at least one qualification"},
		{"No Philosophies", func(r *Resume) { r.Philosophies = nil }, "at least one philosophy"},
		{"Qualification Without Year", func(r *Resume) { r.Qualifications[0].Year = "" }, "qualification 0: year is required"},
		{"Qualification Without Title", func(r *Resume) { r.Qualifications[0].Title = "" }, "qualification 0: title is required"},
		{"Philosophy Without Title", func(r *Resume) { r.Philosophies[0].Title = "" }, "philosophy 0: title is required"},
		{"Unknown Color", func(r *Resume) { r.Philosophies[0].Color = "mauve" }, `unknown color "mauve"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validResume()
			tt.mutate(&r)

			err := r.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidResume) {
				t.Errorf("expected ErrInvalidResume, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error to mention %q, got %q", tt.want, err.Error())
			}
		})
	}

	t.Run("Reports Every Problem", func(t *testing.T) {
		err := Resume{}.Validate()
		if err == nil {
			t.Fatal("expected validation error")
		}
		for _, want := range []string{"profile name", "qualification", "philosophy"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("expected error to mention %q, got %q", want, err.Error())
			}
		}
	})
}

func TestClone(t *testing.T) {
	r := validResume()
	c := r.Clone()
	c.Qualifications[0].Title = "changed"
	c.Philosophies[0].Title = "changed"

	if r.Qualifications[0].Title == "changed" || r.Philosophies[0].Title == "changed" {
		t.Error("clone should not share slices with the original")
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("TOML", func(t *testing.T) {
		r, err := LoadFile(filepath.Join("testdata", "resume.toml"))
		if err != nil {
			t.Fatalf("failed to load resume: %v", err)
		}

		if r.Profile.Name != "Ana Souza" {
			t.Errorf("expected name Ana Souza, got %s", r.Profile.Name)
		}
		if len(r.Qualifications) != 2 {
			t.Fatalf("expected 2 qualifications, got %d", len(r.Qualifications))
		}
		if r.Qualifications[0].Year != "2022" || r.Qualifications[1].Year != "2018" {
			t.Errorf("expected qualifications in file order, got %+v", r.Qualifications)
		}
		if r.Qualifications[0].Color != Yellow {
			t.Errorf("expected color yellow, got %s", r.Qualifications[0].Color)
		}
		if r.Contact.Instagram != "@anaagility" {
			t.Errorf("expected instagram handle @anaagility, got %s", r.Contact.Instagram)
		}
		if r.Copy.CallToAction != "Start the Run" {
			t.Errorf("expected call to action Start the Run, got %s", r.Copy.CallToAction)
		}
	})

	t.Run("YAML", func(t *testing.T) {
		r, err := LoadFile(filepath.Join("testdata", "resume.yaml"))
		if err != nil {
			t.Fatalf("failed to load resume: %v", err)
		}

		if r.Philosophies[0].Icon != "check-circle" {
			t.Errorf("expected icon check-circle, got %s", r.Philosophies[0].Icon)
		}
		if r.Contact.Facebook != "/anaagility" {
			t.Errorf("expected facebook handle /anaagility, got %s", r.Contact.Facebook)
		}
	})

	t.Run("Invalid Content", func(t *testing.T) {
		_, err := LoadFile(filepath.Join("testdata", "broken.toml"))
		if !errors.Is(err, ErrInvalidResume) {
			t.Errorf("expected ErrInvalidResume, got %v", err)
		}
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected not-exist error, got %v", err)
		}
	})

	t.Run("Unsupported Extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "resume.json")
		if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		_, err := LoadFile(path)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat, got %v", err)
		}
	})

	t.Run("Unknown TOML Field", func(t *testing.T) {
		data := "[profile]\nname = \"Ana\"\ntaglin = \"lost\"\n\n" +
			"[[qualifications]]\nyear = \"2022\"\ntitle = \"Cert\"\ndescripion = \"typo\"\n\n" +
			"[[philosophies]]\ntitle = \"Play\"\n"

		_, err := Parse([]byte(data), "toml")
		if !errors.Is(err, ErrInvalidResume) {
			t.Fatalf("expected ErrInvalidResume, got %v", err)
		}
		for _, key := range []string{"profile.taglin", "qualifications.descripion"} {
			if !strings.Contains(err.Error(), key) {
				t.Errorf("expected error to name %s, got %q", key, err.Error())
			}
		}
	})

	t.Run("Unknown YAML Field", func(t *testing.T) {
		_, err := Parse([]byte("profile:\n  nmae: typo\n"), "yml")
		if err == nil {
			t.Error("expected error for unknown field")
		}
	})
}
