package content

import (
	"math"
	"sort"
	"strings"

	"github.com/iver-m/waytour/internal/document"
	"github.com/iver-m/waytour/internal/geom"
)

// Build validates all parsed documents and assembles the tour model. The
// operation is all-or-nothing: the first invalid document aborts the whole
// load and no partial model is returned.
//
// A non-nil sink is bound into each waypoint's OnEnter callback: entering a
// waypoint sets the sink to the document's normalized hud markup, or clears
// it when the document has none, so stale overlay text never survives
// navigation.
func Build(docs []*document.Document, sink HUDSink) (*Model, error) {
	type record struct {
		doc   *document.Document
		wp    WayPoint
		panel *Panel
		order float64
	}

	records := make([]record, 0, len(docs))
	seen := make(map[string]string, len(docs))

	for _, doc := range docs {
		id, err := requireString(doc, "id")
		if err != nil {
			return nil, err
		}
		if first, dup := seen[id]; dup {
			return nil, &DuplicateIDError{ID: id, First: first, Second: doc.SourceID}
		}
		seen[id] = doc.SourceID

		title, err := requireString(doc, "title")
		if err != nil {
			return nil, err
		}

		position, err := requireVec3(doc, "position")
		if err != nil {
			return nil, err
		}
		lookAt, err := optionalVec3(doc, "lookAt")
		if err != nil {
			return nil, err
		}
		pagePosition, err := optionalVec3(doc, "pagePosition")
		if err != nil {
			return nil, err
		}
		anchorID, err := optionalString(doc, "anchorId")
		if err != nil {
			return nil, err
		}
		hud, err := optionalString(doc, "hud")
		if err != nil {
			return nil, err
		}
		order, err := optionalNumber(doc, "order", math.Inf(1))
		if err != nil {
			return nil, err
		}

		wp := WayPoint{ID: id, Title: title, Position: position, LookAt: lookAt}
		if sink != nil {
			markup := NormalizeMarkup(hud)
			wp.OnEnter = func() { sink.Set(markup) }
		}

		rec := record{doc: doc, wp: wp, order: order}

		if body := strings.TrimSpace(doc.Body); body != "" {
			target := position
			if lookAt != nil {
				target = *lookAt
			}
			if pagePosition != nil {
				target = *pagePosition
			}
			rec.panel = &Panel{
				ID:             id,
				Title:          title,
				Content:        NormalizeMarkup(body),
				FallbackTarget: target,
				AnchorID:       anchorID,
			}
		}

		records = append(records, rec)
	}

	// Ascending order key, missing order sorts last; ties broken by title.
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].order != records[j].order {
			return records[i].order < records[j].order
		}
		return records[i].wp.Title < records[j].wp.Title
	})

	model := &Model{
		Waypoints: make([]WayPoint, 0, len(records)),
		Panels:    make([]Panel, 0, len(records)),
	}
	for _, rec := range records {
		model.Waypoints = append(model.Waypoints, rec.wp)
		if rec.panel != nil {
			model.Panels = append(model.Panels, *rec.panel)
		}
	}
	return model, nil
}

func requireString(doc *document.Document, field string) (string, error) {
	v, ok := doc.Meta[field]
	if !ok {
		return "", &FieldError{SourceID: doc.SourceID, Field: field, Reason: "required"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldError{SourceID: doc.SourceID, Field: field, Reason: "must be a string"}
	}
	return s, nil
}

func optionalString(doc *document.Document, field string) (string, error) {
	v, ok := doc.Meta[field]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldError{SourceID: doc.SourceID, Field: field, Reason: "must be a string"}
	}
	return s, nil
}

func optionalNumber(doc *document.Document, field string, fallback float64) (float64, error) {
	v, ok := doc.Meta[field]
	if !ok {
		return fallback, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, &FieldError{SourceID: doc.SourceID, Field: field, Reason: "must be a number"}
	}
	return f, nil
}

func requireVec3(doc *document.Document, field string) (geom.Vec3, error) {
	v, ok := doc.Meta[field]
	if !ok {
		return geom.Vec3{}, &FieldError{SourceID: doc.SourceID, Field: field, Reason: "required"}
	}
	return vec3Value(doc.SourceID, field, v)
}

func optionalVec3(doc *document.Document, field string) (*geom.Vec3, error) {
	v, ok := doc.Meta[field]
	if !ok {
		return nil, nil
	}
	vec, err := vec3Value(doc.SourceID, field, v)
	if err != nil {
		return nil, err
	}
	return &vec, nil
}

func vec3Value(sourceID, field string, v any) (geom.Vec3, error) {
	arr, ok := v.([]any)
	if !ok || len(arr) != 3 {
		return geom.Vec3{}, &FieldError{SourceID: sourceID, Field: field, Reason: "must be a numeric 3-tuple"}
	}
	var c [3]float64
	for i, e := range arr {
		f, ok := e.(float64)
		if !ok {
			return geom.Vec3{}, &FieldError{SourceID: sourceID, Field: field, Reason: "must be a numeric 3-tuple"}
		}
		c[i] = f
	}
	vec := geom.V(c[0], c[1], c[2])
	if !vec.IsFinite() {
		return geom.Vec3{}, &FieldError{SourceID: sourceID, Field: field, Reason: "components must be finite"}
	}
	return vec, nil
}
