package server

import "testing"

func TestBuildPageMeta(t *testing.T) {
	meta := buildPageMeta(1, 20, 45)
	if meta.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", meta.TotalPages)
	}
	if meta.Total != 45 || meta.Page != 1 || meta.PerPage != 20 {
		t.Fatalf("unexpected meta: %+v", meta)
	}
}

func TestBuildPageMetaClampsPage(t *testing.T) {
	meta := buildPageMeta(10, 20, 45)
	if meta.Page != 3 {
		t.Fatalf("expected page clamped to 3, got %d", meta.Page)
	}
}

func TestBuildPageMetaEmpty(t *testing.T) {
	meta := buildPageMeta(1, 20, 0)
	if meta.TotalPages != 1 {
		t.Fatalf("expected at least one page, got %d", meta.TotalPages)
	}
}
