package entities

import "testing"

func TestServiceCatalog_Resolve(t *testing.T) {
	catalog := DefaultServiceCatalog()

	s, ok := catalog.Resolve(" 2b2225ad-9d0e-45e0-85fb-378fe2b521e0 ")
	if !ok {
		t.Fatalf("expected lower-case id to resolve")
	}
	if s.Name != "lyft" || s.RideType != RideTypeLyft || s.DisplayName != "Lyft" {
		t.Fatalf("unexpected service: %+v", s)
	}

	name, ok := catalog.ResolveServiceName("52648E86-B617-44FD-B753-295D5CE9D9DC")
	if !ok || name != "lyft_line" {
		t.Fatalf("unexpected name %q (ok=%v)", name, ok)
	}

	if _, ok := catalog.Resolve("00000000-0000-0000-0000-000000000000"); ok {
		t.Fatalf("expected miss")
	}
}

func TestServiceCatalog_IsImmutable(t *testing.T) {
	features := []ServiceFeature{ServiceFeatureShared}
	catalog := NewServiceCatalog(Service{ID: "abc", Name: "x", Features: features})
	features[0] = ServiceFeatureProfessionalDriver

	s, _ := catalog.Resolve("ABC")
	if s.Features[0] != ServiceFeatureShared {
		t.Fatalf("catalog shares caller slice")
	}
	s.Features[0] = ServiceFeatureProfessionalDriver
	again, _ := catalog.Resolve("abc")
	if again.Features[0] != ServiceFeatureShared {
		t.Fatalf("catalog leaks internal slice")
	}
}

func TestServiceCatalog_Services(t *testing.T) {
	catalog := NewServiceCatalog(
		Service{ID: "a", Name: "first"},
		Service{ID: "b", Name: "second"},
		Service{ID: "A", Name: "replaced"},
	)

	all := catalog.Services()
	if len(all) != 2 {
		t.Fatalf("expected 2 services, got %d", len(all))
	}
	if all[0].Name != "replaced" || all[1].Name != "second" {
		t.Fatalf("unexpected order: %+v", all)
	}
}

func TestDefaultServiceCatalog_RideTypes(t *testing.T) {
	c := DefaultServiceCatalog()
	cases := map[string]RideType{
		"2B2225AD-9D0E-45E0-85FB-378FE2B521E0": RideTypeLyft,
		"52648E86-B617-44FD-B753-295D5CE9D9DC": RideTypeLyftLine,
		"BB331ADE-E379-4F12-9AB0-A68AF94D5813": RideTypeLyftPlus,
		"B47A0993-DE35-4F86-8DD8-C6462F16F5E8": RideTypeLyftLux,
	}
	for id, want := range cases {
		svc, ok := c.Resolve(id)
		if !ok {
			t.Fatalf("service %s not in catalog", id)
		}
		if svc.RideType != want || svc.Name != string(want) {
			t.Fatalf("service %s: got ride type %q name %q, want %q", id, svc.RideType, svc.Name, want)
		}
	}
}
