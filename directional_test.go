package styledecl_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styledecl"
)

func TestDirectionalExpansion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledecl")
	defer teardown()
	//
	cases := []struct {
		input styledecl.Value
		want  styledecl.Tuple
	}{
		{1, styledecl.Tuple{1, 1, 1, 1}},
		{styledecl.Tuple{1}, styledecl.Tuple{1, 1, 1, 1}},
		{styledecl.Tuple{1, 2}, styledecl.Tuple{1, 2, 1, 2}},
		{styledecl.Tuple{1, 2, 3}, styledecl.Tuple{1, 2, 3, 2}},
		{styledecl.Tuple{1, 2, 3, 4}, styledecl.Tuple{1, 2, 3, 4}},
	}
	for _, c := range cases {
		s := newTestStyle(&recorder{})
		if err := s.Set("margin", c.input); err != nil {
			t.Fatalf("expected margin=%v to succeed, got %v", c.input, err)
		}
		v, err := s.Get("margin")
		if err != nil {
			t.Fatalf("expected margin to be readable, got %v", err)
		}
		if !reflect.DeepEqual(v, c.want) {
			t.Errorf("expected margin=%v to read as %v, is %v", c.input, c.want, v)
		}
	}
}

func TestDirectionalBadLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledecl")
	defer teardown()
	//
	s := newTestStyle(&recorder{})
	err := s.Set("margin", styledecl.Tuple{1, 2, 3, 4, 5})
	if err == nil {
		t.Fatal("expected a 5-tuple to be rejected, isn't")
	}
	var ise *styledecl.InvalidShorthandError
	if !errors.As(err, &ise) {
		t.Fatalf("expected an InvalidShorthandError, is %T", err)
	}
	if ise.Name != "margin" || ise.Length != 5 {
		t.Errorf("expected error to carry margin/5, carries %s/%d", ise.Name, ise.Length)
	}
}

func TestDirectionalPerEdgeNotification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledecl")
	defer teardown()
	//
	rec := &recorder{}
	s := newTestStyle(rec)
	if err := s.Set("margin", styledecl.Tuple{1, 2}); err != nil {
		t.Fatalf("expected margin=(1,2) to succeed, got %v", err)
	}
	if len(rec.calls) != 4 {
		t.Fatalf("expected 4 edge notifications, are %d", len(rec.calls))
	}
	// Changing only the right/left edges must notify exactly twice.
	rec.reset()
	if err := s.Set("margin", styledecl.Tuple{1, 7}); err != nil {
		t.Fatalf("expected margin=(1,7) to succeed, got %v", err)
	}
	if len(rec.calls) != 2 {
		t.Errorf("expected 2 edge notifications, are %d: %v", len(rec.calls), rec.calls)
	}
	rec.reset()
	if err := s.Set("margin", styledecl.Tuple{1, 7}); err != nil {
		t.Fatalf("expected redundant margin write to succeed, got %v", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("expected no notification for an unchanged write, are %v", rec.calls)
	}
}

func TestDirectionalWriteIsTransactional(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledecl")
	defer teardown()
	//
	rec := &recorder{}
	s := newTestStyle(rec)
	if err := s.Set("margin", 5); err != nil {
		t.Fatalf("expected margin=5 to succeed, got %v", err)
	}
	rec.reset()
	// The bad third element must reject the whole write, leaving every
	// edge untouched.
	err := s.Set("margin", styledecl.Tuple{1, 2, "bad", 4})
	if err == nil {
		t.Fatal("expected margin=(1,2,bad,4) to be rejected, isn't")
	}
	if len(rec.calls) != 0 {
		t.Errorf("expected no partial application, are %v", rec.calls)
	}
	v, _ := s.Get("margin")
	if !reflect.DeepEqual(v, styledecl.Tuple{5, 5, 5, 5}) {
		t.Errorf("expected margin to stay (5,5,5,5), is %v", v)
	}
}

func TestDirectionalDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledecl")
	defer teardown()
	//
	rec := &recorder{}
	s := newTestStyle(rec)
	if err := s.Set("margin", styledecl.Tuple{1, 2, 3, 4}); err != nil {
		t.Fatalf("expected margin=(1,2,3,4) to succeed, got %v", err)
	}
	rec.reset()
	if err := s.Delete("margin"); err != nil {
		t.Fatalf("expected delete margin to succeed, got %v", err)
	}
	v, _ := s.Get("margin")
	if !reflect.DeepEqual(v, styledecl.Tuple{0, 0, 0, 0}) {
		t.Errorf("expected deleted margin to revert to (0,0,0,0), is %v", v)
	}
	if len(rec.calls) != 4 {
		t.Errorf("expected 4 notifications on delete, are %d", len(rec.calls))
	}
}

func TestDirectionalProxy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledecl")
	defer teardown()
	//
	props := styledecl.NewProperties().
		Add("inset_top", styledecl.NewChoices().AllowInteger(), 0).
		Add("inset_right", styledecl.NewChoices().AllowInteger(), 0).
		Add("inset_bottom", styledecl.NewChoices().AllowInteger(), 0).
		Add("inset_left", styledecl.NewChoices().AllowInteger(), 0).
		AddDirectionalProxy("inset%s")
	s := styledecl.New(props, forward)
	if err := s.Set("inset", styledecl.Tuple{1, 2}); err != nil {
		t.Fatalf("expected inset=(1,2) to succeed, got %v", err)
	}
	v, _ := s.Get("inset_bottom")
	if v != 1 {
		t.Errorf("expected inset_bottom to be 1, is %v", v)
	}
	tup, _ := s.Get("inset")
	if !reflect.DeepEqual(tup, styledecl.Tuple{1, 2, 1, 2}) {
		t.Errorf("expected inset to read as (1,2,1,2), is %v", tup)
	}
	// Proxy mode creates no new slots.
	assertPanics(t, "proxy over undeclared edges", func() {
		styledecl.NewProperties().AddDirectionalProxy("outset%s")
	})
}
