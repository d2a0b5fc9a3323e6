package entities

import "strings"

// RideType is the upstream product a booking is placed against.
type RideType string

const (
	RideTypeLyft     RideType = "lyft"
	RideTypeLyftLine RideType = "lyft_line"
	RideTypeLyftPlus RideType = "lyft_plus"
	RideTypeLyftLux  RideType = "lyft_lux"
)

type ServiceFeature string

const (
	ServiceFeatureProfessionalDriver ServiceFeature = "professional_driver"
	ServiceFeatureShared             ServiceFeature = "shared"
)

// Service is one provider product known to the internal platform.
//
// ID is the platform-wide service identifier (a UUID, stored upper-case).
// Name is the product name the upstream pricing call expects.
type Service struct {
	ID          string
	Name        string
	DisplayName string
	RideType    RideType
	Features    []ServiceFeature
}

// ServiceCatalog is an immutable lookup from service identifier to Service.
type ServiceCatalog struct {
	byID    map[string]Service
	ordered []Service
}

// NewServiceCatalog builds a catalog. Identifiers are normalized to upper case;
// a later duplicate replaces an earlier one.
func NewServiceCatalog(services ...Service) ServiceCatalog {
	c := ServiceCatalog{byID: make(map[string]Service, len(services))}
	for _, s := range services {
		s.ID = normalizeServiceID(s.ID)
		s.Features = append([]ServiceFeature(nil), s.Features...)
		if _, exists := c.byID[s.ID]; !exists {
			c.ordered = append(c.ordered, s)
		} else {
			for i := range c.ordered {
				if c.ordered[i].ID == s.ID {
					c.ordered[i] = s
				}
			}
		}
		c.byID[s.ID] = s
	}
	return c
}

// DefaultServiceCatalog is the catalog of Lyft products registered on the platform.
func DefaultServiceCatalog() ServiceCatalog {
	return NewServiceCatalog(
		Service{ID: "2B2225AD-9D0E-45E0-85FB-378FE2B521E0", Name: "lyft", DisplayName: "Lyft", RideType: RideTypeLyft, Features: []ServiceFeature{ServiceFeatureProfessionalDriver}},
		Service{ID: "52648E86-B617-44FD-B753-295D5CE9D9DC", Name: "lyft_line", DisplayName: "LyftShared", RideType: RideTypeLyftLine, Features: []ServiceFeature{ServiceFeatureShared}},
		Service{ID: "BB331ADE-E379-4F12-9AB0-A68AF94D5813", Name: "lyft_plus", DisplayName: "LyftXL", RideType: RideTypeLyftPlus, Features: []ServiceFeature{ServiceFeatureProfessionalDriver}},
		Service{ID: "B47A0993-DE35-4F86-8DD8-C6462F16F5E8", Name: "lyft_lux", DisplayName: "LyftLUX", RideType: RideTypeLyftLux, Features: []ServiceFeature{ServiceFeatureProfessionalDriver}},
	)
}

// Resolve looks a service up by identifier, ignoring case and surrounding spaces.
func (c ServiceCatalog) Resolve(serviceID string) (Service, bool) {
	s, ok := c.byID[normalizeServiceID(serviceID)]
	if !ok {
		return Service{}, false
	}
	s.Features = append([]ServiceFeature(nil), s.Features...)
	return s, true
}

// ResolveServiceName returns the upstream product name for a service identifier.
func (c ServiceCatalog) ResolveServiceName(serviceID string) (string, bool) {
	s, ok := c.Resolve(serviceID)
	return s.Name, ok
}

// Services returns every entry in registration order.
func (c ServiceCatalog) Services() []Service {
	out := make([]Service, 0, len(c.ordered))
	for _, s := range c.ordered {
		s.Features = append([]ServiceFeature(nil), s.Features...)
		out = append(out, s)
	}
	return out
}

func normalizeServiceID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
