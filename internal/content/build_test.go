package content

import (
	"errors"
	"testing"

	"github.com/iver-m/waytour/internal/document"
	"github.com/iver-m/waytour/internal/geom"
)

func mustParse(t *testing.T, sourceID, text string) *document.Document {
	t.Helper()
	doc, err := document.Parse(sourceID, text)
	if err != nil {
		t.Fatalf("Parse(%s) failed: %v", sourceID, err)
	}
	return doc
}

type fakeSink struct {
	values []string
}

func (s *fakeSink) Set(markup string) { s.values = append(s.values, markup) }

func TestBuild_WaypointAndPanel(t *testing.T) {
	doc := mustParse(t, "hall.md", "---\nid: hall\ntitle: Hall\nposition: [1, 2, 3]\n---\nsome body")

	model, err := Build([]*document.Document{doc}, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(model.Waypoints) != 1 {
		t.Fatalf("waypoints = %d, want 1", len(model.Waypoints))
	}
	wp := model.Waypoints[0]
	if wp.ID != "hall" || wp.Title != "Hall" {
		t.Errorf("waypoint = %+v", wp)
	}
	if wp.Position != geom.V(1, 2, 3) {
		t.Errorf("Position = %v", wp.Position)
	}
	if wp.LookAt != nil {
		t.Errorf("LookAt = %v, want nil for unspecified", wp.LookAt)
	}

	if len(model.Panels) != 1 {
		t.Fatalf("panels = %d, want 1", len(model.Panels))
	}
	p := model.Panels[0]
	if p.FallbackTarget != geom.V(1, 2, 3) {
		t.Errorf("FallbackTarget = %v, want position", p.FallbackTarget)
	}
}

func TestBuild_EmptyBodyYieldsNoPanel(t *testing.T) {
	doc := mustParse(t, "hall.md", "---\nid: hall\ntitle: Hall\nposition: [1, 2, 3]\n---\n   \n")

	model, err := Build([]*document.Document{doc}, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(model.Waypoints) != 1 || len(model.Panels) != 0 {
		t.Errorf("got %d waypoints, %d panels; want 1, 0", len(model.Waypoints), len(model.Panels))
	}
}

func TestBuild_FallbackTargetChain(t *testing.T) {
	tests := []struct {
		name string
		meta string
		want geom.Vec3
	}{
		{"position only", "", geom.V(1, 2, 3)},
		{"lookAt wins over position", "lookAt: [4, 5, 6]\n", geom.V(4, 5, 6)},
		{"pagePosition wins over lookAt", "lookAt: [4, 5, 6]\npagePosition: [7, 8, 9]\n", geom.V(7, 8, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, "a.md", "---\nid: a\ntitle: A\nposition: [1, 2, 3]\n"+tt.meta+"---\nbody")
			model, err := Build([]*document.Document{doc}, nil)
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if model.Panels[0].FallbackTarget != tt.want {
				t.Errorf("FallbackTarget = %v, want %v", model.Panels[0].FallbackTarget, tt.want)
			}
		})
	}
}

func TestBuild_Ordering(t *testing.T) {
	docs := []*document.Document{
		mustParse(t, "1.md", "---\nid: b\ntitle: B\nposition: [0,0,0]\norder: 2\n---\n"),
		mustParse(t, "2.md", "---\nid: a\ntitle: A\nposition: [0,0,0]\n---\n"),
		mustParse(t, "3.md", "---\nid: c\ntitle: C\nposition: [0,0,0]\norder: 1\n---\n"),
	}

	model, err := Build(docs, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	got := []string{model.Waypoints[0].ID, model.Waypoints[1].ID, model.Waypoints[2].ID}
	want := []string{"c", "b", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestBuild_OrderTiesBrokenByTitle(t *testing.T) {
	docs := []*document.Document{
		mustParse(t, "1.md", "---\nid: z\ntitle: Zeta\nposition: [0,0,0]\n---\n"),
		mustParse(t, "2.md", "---\nid: a\ntitle: Alpha\nposition: [0,0,0]\n---\n"),
	}

	model, err := Build(docs, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if model.Waypoints[0].ID != "a" || model.Waypoints[1].ID != "z" {
		t.Errorf("order = [%s %s], want [a z]", model.Waypoints[0].ID, model.Waypoints[1].ID)
	}
}

func TestBuild_DuplicateIDAborts(t *testing.T) {
	docs := []*document.Document{
		mustParse(t, "1.md", "---\nid: same\ntitle: A\nposition: [0,0,0]\n---\n"),
		mustParse(t, "2.md", "---\nid: same\ntitle: B\nposition: [0,0,0]\n---\n"),
	}

	model, err := Build(docs, nil)
	if model != nil {
		t.Error("expected no partial model on duplicate id")
	}
	var dup *DuplicateIDError
	if !errors.As(err, &dup) {
		t.Fatalf("err = %v, want *DuplicateIDError", err)
	}
	if dup.ID != "same" || dup.First != "1.md" || dup.Second != "2.md" {
		t.Errorf("dup = %+v", dup)
	}
}

func TestBuild_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		field string
	}{
		{"missing id", "---\ntitle: T\nposition: [0,0,0]\n---\n", "id"},
		{"numeric id", "---\nid: 7\ntitle: T\nposition: [0,0,0]\n---\n", "id"},
		{"missing title", "---\nid: x\nposition: [0,0,0]\n---\n", "title"},
		{"missing position", "---\nid: x\ntitle: T\n---\n", "position"},
		{"short position", "---\nid: x\ntitle: T\nposition: [0,0]\n---\n", "position"},
		{"string position", "---\nid: x\ntitle: T\nposition: here\n---\n", "position"},
		{"bad lookAt", "---\nid: x\ntitle: T\nposition: [0,0,0]\nlookAt: [1,2]\n---\n", "lookAt"},
		{"bad pagePosition", "---\nid: x\ntitle: T\nposition: [0,0,0]\npagePosition: 3\n---\n", "pagePosition"},
		{"bad anchorId", "---\nid: x\ntitle: T\nposition: [0,0,0]\nanchorId: 12\n---\n", "anchorId"},
		{"bad order", "---\nid: x\ntitle: T\nposition: [0,0,0]\norder: abc\n---\n", "order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, "bad.md", tt.text)
			model, err := Build([]*document.Document{doc}, nil)
			if model != nil {
				t.Error("expected no partial model")
			}
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("err = %v, want *FieldError", err)
			}
			if fe.Field != tt.field {
				t.Errorf("Field = %q, want %q", fe.Field, tt.field)
			}
		})
	}
}

func TestBuild_HUDBinding(t *testing.T) {
	docs := []*document.Document{
		mustParse(t, "1.md", "---\nid: a\ntitle: A\nposition: [0,0,0]\nhud: |\n  hello\n---\n"),
		mustParse(t, "2.md", "---\nid: b\ntitle: B\nposition: [0,0,0]\n---\n"),
	}

	sink := &fakeSink{}
	model, err := Build(docs, sink)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	model.Waypoints[0].OnEnter()
	model.Waypoints[1].OnEnter()

	if len(sink.values) != 2 {
		t.Fatalf("sink received %d values", len(sink.values))
	}
	if sink.values[0] != "<p>hello</p>" {
		t.Errorf("hud markup = %q", sink.values[0])
	}
	if sink.values[1] != "" {
		t.Errorf("waypoint without hud should clear the sink, got %q", sink.values[1])
	}
}

func TestNormalizeMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \n ", ""},
		{"tagged passthrough", "<h1>Title</h1><p>x</p>", "<h1>Title</h1><p>x</p>"},
		{"single paragraph", "one two", "<p>one two</p>"},
		{"soft break", "one\ntwo", "<p>one<br/>two</p>"},
		{"two paragraphs", "one\n\ntwo", "<p>one</p><p>two</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeMarkup(tt.in); got != tt.want {
				t.Errorf("NormalizeMarkup(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
